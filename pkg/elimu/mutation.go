package elimu

import (
	"context"
	"encoding/json"
	"sync"
)

// MutationState is a snapshot of a mutation's lifecycle: loading while the
// call is in flight, then exactly one of success or error, with the response
// body kept for the caller.
type MutationState struct {
	Loading  bool
	Success  bool
	Err      error
	Response json.RawMessage
}

// MutationFunc is the operation a Mutation runs
type MutationFunc func(ctx context.Context) (json.RawMessage, error)

// Mutation tracks the lifecycle of a mutating call for a single owner, such
// as one submit control. At most one call may be in flight per Mutation;
// a concurrent second call fails fast with ErrMutationInFlight instead of
// racing the shared state.
type Mutation struct {
	mu       sync.Mutex
	inflight bool
	state    MutationState
}

// Do resets the state, runs fn, and records the outcome. The returned error
// is also kept in the state for later inspection.
func (m *Mutation) Do(ctx context.Context, fn MutationFunc) (json.RawMessage, error) {
	m.mu.Lock()
	if m.inflight {
		m.mu.Unlock()
		return nil, ErrMutationInFlight
	}
	m.inflight = true
	m.state = MutationState{Loading: true}
	m.mu.Unlock()

	resp, err := fn(ctx)

	m.mu.Lock()
	m.inflight = false
	m.state = MutationState{
		Success:  err == nil,
		Err:      err,
		Response: resp,
	}
	m.mu.Unlock()

	return resp, err
}

// State returns a snapshot of the current state
func (m *Mutation) State() MutationState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Reset clears the recorded state. It does not affect an in-flight call.
func (m *Mutation) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = MutationState{Loading: m.inflight}
}
