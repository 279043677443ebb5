package progress

import (
	"fmt"
	"io"
)

// Renderer is a Sink that draws a two-phase status display. While objects
// are still arriving it overwrites a single line with network, index, and
// checkout percentages. Once every object has been received it emits one
// newline and switches to overwriting a delta-resolution line. The display
// advances monotonically; it never returns to phase one.
//
// Renderer is single-owner: events arrive synchronously from one fetch and
// are never delivered concurrently, so no locking is needed.
type Renderer struct {
	w io.Writer

	net           NetworkEvent
	checkoutPath  string
	checkoutDone  uint64
	checkoutTotal uint64
	newlineDone   bool
}

// NewRenderer returns a Renderer writing to w. Each render is a single
// Write call; if w also implements Flush, it is flushed after every render
// so progress stays visible under buffered redirection.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// OnNetwork implements Sink.
func (r *Renderer) OnNetwork(ev NetworkEvent) {
	r.net = ev
	r.render()
}

// OnCheckout implements Sink.
func (r *Renderer) OnCheckout(ev CheckoutEvent) {
	r.checkoutPath = ev.Path
	r.checkoutDone = ev.Completed
	r.checkoutTotal = ev.Total
	r.render()
}

func (r *Renderer) render() {
	if r.net.ObjectsTotal > 0 && r.net.ObjectsReceived >= r.net.ObjectsTotal {
		if !r.newlineDone {
			r.write("\n")
			r.newlineDone = true
		}
		r.write(fmt.Sprintf("Resolving deltas %d/%d\r", r.net.DeltasIndexed, r.net.DeltasTotal))
		return
	}

	line := fmt.Sprintf(
		"net %3d%% (%4d kb, %5d/%5d)  /  idx %3d%% (%5d/%5d)  /  chk %3d%% (%4d/%4d) %s\r",
		percent(r.net.ObjectsReceived, r.net.ObjectsTotal),
		r.net.BytesReceived/1024,
		r.net.ObjectsReceived,
		r.net.ObjectsTotal,
		percent(r.net.ObjectsIndexed, r.net.ObjectsTotal),
		r.net.ObjectsIndexed,
		r.net.ObjectsTotal,
		percent(r.checkoutDone, r.checkoutTotal),
		r.checkoutDone,
		r.checkoutTotal,
		r.checkoutPath,
	)
	r.write(line)
}

func (r *Renderer) write(s string) {
	_, _ = io.WriteString(r.w, s)
	if f, ok := r.w.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}

// percent guards against a zero total: before a transfer reports its object
// count the percentage is 0, not a division fault.
func percent(part, total uint64) uint64 {
	if total == 0 {
		return 0
	}
	p := 100 * part / total
	if p > 100 {
		return 100
	}
	return p
}
