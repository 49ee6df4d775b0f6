package events

import "bibtui/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Screen(name string) {
	logging.Trace("ui.screen", map[string]interface{}{"screen": name})
}

func (UITracer) Mode(mode string) {
	logging.Trace("ui.mode", map[string]interface{}{"mode": mode})
}

func (UITracer) Cursor(list string, index int) {
	logging.Trace("ui.cursor", map[string]interface{}{"list": list, "index": index})
}

func (UITracer) Save(kind string, updating bool) {
	logging.Trace("ui.save", map[string]interface{}{"kind": kind, "updating": updating})
}

func (UITracer) Delete(kind, citeKey string) {
	logging.Trace("ui.delete", map[string]interface{}{"kind": kind, "cite_key": citeKey})
}

func (UITracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("ui.error", map[string]interface{}{"error": err.Error()})
}
