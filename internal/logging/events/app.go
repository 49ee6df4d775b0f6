// Package events exposes typed trace emitters per subsystem. Each emitter
// is a zero-size struct so call sites read events.Store.Created(...) and the
// event names stay in one place.
package events

import "bibtui/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop() {
	logging.Trace("app.stop", nil)
}
