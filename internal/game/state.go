package game

import "fmt"

// NumPlayers is the number of wired-up seats. The rules generalize, but
// only a two-player table is supported.
const NumPlayers = 2

// InitialFlips is how many cards each player reveals before the first
// proper turn.
const InitialFlips = 2

// Phase identifies the current state of the turn machine.
type Phase int

const (
	PhaseDeal Phase = iota
	PhaseFlipInitialTwo
	PhaseSelectFromPile
	PhaseDeckFlipped
	PhaseReplaceFromHand
	PhaseFlipFromHand
	PhaseEndRound
	PhaseEndGame
)

var phaseNames = map[Phase]string{
	PhaseDeal:            "DEAL",
	PhaseFlipInitialTwo:  "FLIP_INITIAL_TWO",
	PhaseSelectFromPile:  "SELECT_FROM_PILE",
	PhaseDeckFlipped:     "DECK_FLIPPED",
	PhaseReplaceFromHand: "REPLACE_FROM_HAND",
	PhaseFlipFromHand:    "FLIP_FROM_HAND",
	PhaseEndRound:        "END_ROUND",
	PhaseEndGame:         "END_GAME",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}

// GameState is the complete rules-side state of one match. It is owned
// exclusively by a single Engine and passed explicitly into every phase
// handler; there is no ambient global state.
type GameState struct {
	MatchID string
	Phase   Phase
	Round   int

	Deck    Deck
	Discard Deck
	Players [NumPlayers]*Player

	// Current indexes the active player.
	Current int

	// DrawnCard is the provisionally revealed deck card, held outside
	// any hand slot. It is non-nil exactly while Phase is
	// PhaseDeckFlipped.
	DrawnCard *Card

	// RoundScores holds the per-player scores applied at the most recent
	// round end, after any doubling penalty. Valid in PhaseEndRound and
	// PhaseEndGame.
	RoundScores [NumPlayers]int

	// Winner is the index of the match winner once PhaseEndGame is
	// reached; -1 before that, and on a tied final score.
	Winner int
}

// NewGameState builds a fresh match in PhaseDeal with zeroed scores.
func NewGameState(matchID string, names [NumPlayers]string) *GameState {
	s := &GameState{
		MatchID: matchID,
		Phase:   PhaseDeal,
		Winner:  -1,
	}
	for i, name := range names {
		s.Players[i] = NewPlayer(name)
	}
	return s
}

// ActivePlayer returns the player whose turn it is.
func (s *GameState) ActivePlayer() *Player { return s.Players[s.Current] }

// Opponent returns the index of the other seat.
func (s *GameState) Opponent() int { return (s.Current + 1) % NumPlayers }

// CardsInPlay counts every card slot across deck, discard and hands.
// Cleared cards keep their slots, so the total stays at TotalCards from
// the moment a round is dealt until the next deal.
func (s *GameState) CardsInPlay() int {
	total := len(s.Deck) + len(s.Discard)
	for _, p := range s.Players {
		total += len(p.Hand)
	}
	if s.DrawnCard != nil {
		total++
	}
	return total
}

// Clone deep-copies the state. Used by replay recording and snapshots.
func (s *GameState) Clone() *GameState {
	dup := *s
	dup.Deck = append(Deck(nil), s.Deck...)
	dup.Discard = append(Deck(nil), s.Discard...)
	for i, p := range s.Players {
		dup.Players[i] = p.clone()
	}
	if s.DrawnCard != nil {
		card := *s.DrawnCard
		dup.DrawnCard = &card
	}
	return &dup
}

// validateTarget checks that a target addresses a real collection slot.
// A well-formed target that is merely not selectable right now is not an
// error; the click is simply ignored.
func (s *GameState) validateTarget(t Target) error {
	switch t.Kind {
	case TargetDeck, TargetDiscard:
		return nil
	case TargetHand:
		if t.Player < 0 || t.Player >= NumPlayers {
			return fmt.Errorf("%w: player %d", ErrInvalidSelection, t.Player)
		}
		if t.Index < 0 || t.Index >= len(s.Players[t.Player].Hand) {
			return fmt.Errorf("%w: hand index %d", ErrInvalidSelection, t.Index)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown target kind %d", ErrInvalidSelection, t.Kind)
	}
}

// Selectable reports whether the active player may act on the target in
// the current phase. The same predicate drives click validation and the
// renderer's hover highlighting.
func (s *GameState) Selectable(t Target) bool {
	if s.validateTarget(t) != nil {
		return false
	}
	switch s.Phase {
	case PhaseFlipInitialTwo, PhaseFlipFromHand:
		if t.Kind != TargetHand || t.Player != s.Current {
			return false
		}
		card := s.Players[t.Player].Hand[t.Index]
		return card.Alive && !card.FaceUp
	case PhaseSelectFromPile:
		if t.Kind == TargetDeck {
			return len(s.Deck) > 0
		}
		if t.Kind == TargetDiscard {
			return len(s.Discard) > 0
		}
		return false
	case PhaseDeckFlipped:
		if t.Kind == TargetDiscard {
			return true
		}
		if t.Kind != TargetHand || t.Player != s.Current {
			return false
		}
		return s.Players[t.Player].Hand[t.Index].Alive
	case PhaseReplaceFromHand:
		if t.Kind != TargetHand || t.Player != s.Current {
			return false
		}
		return s.Players[t.Player].Hand[t.Index].Alive
	default:
		return false
	}
}
