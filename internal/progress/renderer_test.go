package progress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererZeroTotals(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	// First callbacks often arrive before totals are known; must not divide
	// by zero and must stay in phase one.
	r.OnNetwork(NetworkEvent{})
	r.OnCheckout(CheckoutEvent{})

	out := buf.String()
	assert.NotContains(t, out, "Resolving deltas")
	assert.NotContains(t, out, "\n")
	assert.Contains(t, out, "net   0%")
	assert.Contains(t, out, "chk   0%")
}

func TestRendererPhaseOneLine(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.OnNetwork(NetworkEvent{
		ObjectsReceived: 50,
		ObjectsTotal:    200,
		ObjectsIndexed:  25,
		BytesReceived:   4096,
	})
	r.OnCheckout(CheckoutEvent{Path: "src/lib.rs", Completed: 1, Total: 4})

	out := buf.String()
	assert.Contains(t, out, "net  25%")
	assert.Contains(t, out, "idx  12%")
	assert.Contains(t, out, "chk  25%")
	assert.Contains(t, out, "   4 kb")
	assert.Contains(t, out, "src/lib.rs")
	assert.True(t, strings.HasSuffix(out, "\r"))
	assert.NotContains(t, out, "\n")
}

func TestRendererPhaseTransitionSingleNewline(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.OnNetwork(NetworkEvent{ObjectsReceived: 199, ObjectsTotal: 200})
	r.OnNetwork(NetworkEvent{ObjectsReceived: 200, ObjectsTotal: 200, DeltasIndexed: 1, DeltasTotal: 10})
	r.OnNetwork(NetworkEvent{ObjectsReceived: 200, ObjectsTotal: 200, DeltasIndexed: 10, DeltasTotal: 10})

	out := buf.String()
	require.Equal(t, 1, strings.Count(out, "\n"), "exactly one phase-transition newline")

	// The newline precedes the first delta line and is never re-emitted.
	first := strings.Index(out, "Resolving deltas")
	require.Greater(t, first, -1)
	assert.Less(t, strings.Index(out, "\n"), first)
	assert.Contains(t, out, "Resolving deltas 1/10\r")
	assert.Contains(t, out, "Resolving deltas 10/10\r")
}

func TestRendererNeverRegressesToPhaseOne(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.OnNetwork(NetworkEvent{ObjectsReceived: 200, ObjectsTotal: 200, DeltasTotal: 10})
	buf.Reset()

	// Checkout events after network completion keep rendering phase two.
	r.OnCheckout(CheckoutEvent{Path: "Cargo.toml", Completed: 2, Total: 5})

	out := buf.String()
	assert.Contains(t, out, "Resolving deltas")
	assert.NotContains(t, out, "net ")
	assert.NotContains(t, out, "\n")
}

func TestRendererPercentClamped(t *testing.T) {
	assert.Equal(t, uint64(0), percent(5, 0))
	assert.Equal(t, uint64(0), percent(0, 10))
	assert.Equal(t, uint64(50), percent(5, 10))
	assert.Equal(t, uint64(100), percent(10, 10))
	assert.Equal(t, uint64(100), percent(20, 10))
}

type flushCounter struct {
	bytes.Buffer
	flushes int
}

func (f *flushCounter) Flush() error {
	f.flushes++
	return nil
}

func TestRendererFlushesEveryRender(t *testing.T) {
	f := &flushCounter{}
	r := NewRenderer(f)

	r.OnNetwork(NetworkEvent{ObjectsReceived: 1, ObjectsTotal: 2})
	r.OnCheckout(CheckoutEvent{Completed: 1, Total: 1})

	assert.GreaterOrEqual(t, f.flushes, 2)
}
