package parser

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("parc.parser")

// SetName labels the handle in trace output. Unnamed handles emit nothing.
// Returns the handle for chaining during grammar construction.
func (d *DeferredParser) SetName(name string) *DeferredParser {
	d.name = name
	return d
}

func (d *DeferredParser) trace(op string, c *Cursor) {
	if d.name == "" {
		return
	}
	log.Debugf("%s: %s at %d, remaining %q", d.name, op, c.Pos(), clip(c.Remaining()))
}

func clip(b []byte) string {
	const max = 24
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
