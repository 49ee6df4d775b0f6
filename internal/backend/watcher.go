// Package backend feeds the UI with fresh catalog snapshots. A poller
// goroutine per list re-reads the store on a fixed tick and publishes the
// result through a bounded channel; the UI consumes one event per frame.
package backend

import (
	"context"
	"sync"
	"time"

	"bibtui/internal/catalog"
)

// Kind identifies the list carried by an event.
type Kind int

const (
	KindBooks Kind = iota
	KindArticles
)

// Event conveys an updated list snapshot or an error from a store poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Source is the read side of the store the watcher polls.
type Source interface {
	Books() ([]catalog.Book, error)
	Articles() ([]catalog.Article, error)
}

// Watcher polls the store at a fixed interval and publishes events. A slow
// consumer blocks the pollers once the channel buffer fills; there is no
// frame dropping.
type Watcher struct {
	source   Source
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that re-reads both lists every interval and
// emits an initial snapshot of each immediately.
func NewWatcher(source Source, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		source:   source,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.wg.Add(1)
	go w.poll(KindBooks, func() (interface{}, error) {
		return w.source.Books()
	})
	w.wg.Add(1)
	go w.poll(KindArticles, func() (interface{}, error) {
		return w.source.Articles()
	})

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns the channel of snapshot events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current fetch
// completes; use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events
// channel is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll(kind Kind, fetch func() (interface{}, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch()
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
