package game

import "sync"

// Replay is a recording of a match as sequential state snapshots, walked
// forward or backward for playback. Recording is driven by the engine
// after every state-changing tick.
type Replay struct {
	mu      sync.RWMutex
	states  []*GameState
	current int
}

// NewReplay creates an empty recording.
func NewReplay() *Replay {
	return &Replay{states: make([]*GameState, 0, 64)}
}

// Record appends a snapshot. The engine hands over a deep copy, so the
// recording is immune to later mutation.
func (r *Replay) Record(state *GameState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, state)
}

// Len returns the number of recorded snapshots.
func (r *Replay) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.states)
}

// Start rewinds playback to the beginning.
func (r *Replay) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = 0
}

// Next returns the next snapshot, or nil at the end of the recording.
func (r *Replay) Next() *GameState {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current >= len(r.states) {
		return nil
	}
	state := r.states[r.current]
	r.current++
	return state
}

// Previous steps back one snapshot, or returns nil at the beginning.
func (r *Replay) Previous() *GameState {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current <= 0 {
		return nil
	}
	r.current--
	return r.states[r.current]
}

// Skip advances playback by count snapshots and returns the snapshot
// landed on, or nil if the recording ran out.
func (r *Replay) Skip(count int) *GameState {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current += count
	if r.current < 0 {
		r.current = 0
	}
	if r.current >= len(r.states) {
		r.current = len(r.states)
		return nil
	}
	state := r.states[r.current]
	r.current++
	return state
}
