package game

import "fmt"

// TargetKind identifies which collection a selection event addresses.
type TargetKind int

const (
	TargetDeck TargetKind = iota
	TargetDiscard
	TargetHand
)

var targetKindNames = map[TargetKind]string{
	TargetDeck:    "DECK",
	TargetDiscard: "DISCARD",
	TargetHand:    "HAND",
}

func (k TargetKind) String() string {
	if name, ok := targetKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TARGET_%d", int(k))
}

// Target addresses one on-screen card: the deck top, the discard top, or
// a hand slot. Player and Index are meaningful only for TargetHand.
type Target struct {
	Kind   TargetKind
	Player int
	Index  int
}

// HandTarget is shorthand for addressing a hand slot.
func HandTarget(player, index int) Target {
	return Target{Kind: TargetHand, Player: player, Index: index}
}

// InputFrame is one tick's worth of polled input, resolved by the
// presentation layer against the rectangles it tracks. At most one event
// is consumed per tick; Reset takes precedence over everything else.
type InputFrame struct {
	// Hover is the card the pointer currently resolves to, if any.
	Hover *Target

	// Click is the edge-triggered primary click for this tick.
	Click bool

	// Advance is the edge-triggered "continue" key, consumed in
	// PhaseEndRound.
	Advance bool

	// Reset abandons the match and starts over with zeroed scores.
	Reset bool
}

// ClickOn builds a frame clicking the given target.
func ClickOn(t Target) InputFrame {
	return InputFrame{Hover: &t, Click: true}
}
