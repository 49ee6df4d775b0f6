package events

import "bibtui/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Created(kind, citeKey string) {
	logging.Trace("store.create", map[string]interface{}{"kind": kind, "cite_key": citeKey})
}

func (StoreTracer) Updated(kind, citeKey string) {
	logging.Trace("store.update", map[string]interface{}{"kind": kind, "cite_key": citeKey})
}

func (StoreTracer) Deleted(kind, citeKey string) {
	logging.Trace("store.delete", map[string]interface{}{"kind": kind, "cite_key": citeKey})
}

func (StoreTracer) Error(op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("store.error", map[string]interface{}{"op": op, "error": err.Error()})
}
