package events

import (
	"unicode/utf8"

	"github.com/atomicstack/locality-picker/internal/logging"
)

type LoaderTracer struct{}

var Loader = LoaderTracer{}

// maxTracedBody caps how much of a response body lands in a trace entry.
const maxTracedBody = 4096

func (LoaderTracer) Request(url string) {
	logging.Trace("loader.request", map[string]interface{}{"url": url})
}

func (LoaderTracer) Response(status int, body string) {
	body, truncated := clipBody(body, maxTracedBody)
	logging.Trace("loader.response", map[string]interface{}{
		"status":    status,
		"body":      body,
		"truncated": truncated,
	})
}

// clipBody shortens body to at most limit bytes without splitting a rune.
func clipBody(body string, limit int) (string, bool) {
	if len(body) <= limit {
		return body, false
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return body[:cut], true
}

func (LoaderTracer) Items(names []string) {
	logging.Trace("loader.items", map[string]interface{}{"count": len(names), "names": names})
}

func (LoaderTracer) Resolved(phase, message string, count int) {
	logging.Trace("loader.resolved", map[string]interface{}{
		"phase":   phase,
		"message": message,
		"items":   count,
	})
}

func (LoaderTracer) Ignored(phase string) {
	logging.Trace("loader.ignored", map[string]interface{}{"phase": phase})
}

func (LoaderTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("loader.error", map[string]interface{}{"error": err.Error()})
}
