// Package progress aggregates transfer and checkout events into a terminal
// status display.
package progress

// NetworkEvent reports the state of the object transfer. Counts are
// cumulative, not deltas.
type NetworkEvent struct {
	ObjectsReceived uint64
	ObjectsTotal    uint64
	ObjectsIndexed  uint64
	DeltasIndexed   uint64
	DeltasTotal     uint64
	BytesReceived   uint64
}

// CheckoutEvent reports one step of the working-tree checkout.
type CheckoutEvent struct {
	// Path is the file most recently written, relative to the repository
	// root. May be empty when the source cannot name one.
	Path      string
	Completed uint64
	Total     uint64
}

// Sink receives progress events from a fetch. Implementations are invoked
// synchronously from within the fetch call; they are never called
// concurrently and must not block indefinitely.
type Sink interface {
	OnNetwork(NetworkEvent)
	OnCheckout(CheckoutEvent)
}

// Discard is a Sink that ignores all events.
type Discard struct{}

// OnNetwork implements Sink.
func (Discard) OnNetwork(NetworkEvent) {}

// OnCheckout implements Sink.
func (Discard) OnCheckout(CheckoutEvent) {}
