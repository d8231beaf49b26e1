package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTargetScore ends the match once either cumulative score reaches it.
const DefaultTargetScore = 100

// Engine drives one match of Skyjo. It is single-threaded by design: the
// surrounding shell calls Tick once per input-poll cycle, each call runs
// to completion, and no other goroutine touches the state.
type Engine struct {
	logger *zap.Logger
	rng    *rand.Rand

	targetScore   int
	legacyShuffle bool

	state  *GameState
	replay *Replay
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand injects the random source; tests use a seeded source for
// deterministic deals.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithTargetScore overrides the score at which the match ends.
func WithTargetScore(score int) Option {
	return func(e *Engine) { e.targetScore = score }
}

// WithLegacyShuffle selects the original no-fixed-point shuffle instead
// of a uniform one.
func WithLegacyShuffle(enabled bool) Option {
	return func(e *Engine) { e.legacyShuffle = enabled }
}

// WithReplay attaches a replay recorder; a snapshot of the state is
// recorded after every state-changing tick.
func WithReplay(r *Replay) Option {
	return func(e *Engine) { e.replay = r }
}

// NewEngine creates an engine for a fresh two-player match in PhaseDeal.
func NewEngine(names [NumPlayers]string, logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		logger:      logger,
		targetScore: DefaultTargetScore,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.state = NewGameState(uuid.NewString(), names)
	e.logger.Info("match created",
		zap.String("match_id", e.state.MatchID),
		zap.String("player_0", names[0]),
		zap.String("player_1", names[1]),
		zap.Int("target_score", e.targetScore),
	)
	return e
}

// State exposes the underlying state. The caller must not mutate it
// concurrently with Tick.
func (e *Engine) State() *GameState { return e.state }

// Tick consumes one input-poll snapshot and advances the state machine.
// Invalid but well-formed selections are ignored (the click is refused);
// malformed selections return ErrInvalidSelection.
func (e *Engine) Tick(in InputFrame) error {
	s := e.state

	if in.Reset {
		e.reset(s)
		e.record()
		return nil
	}

	if in.Click && in.Hover != nil {
		if err := s.validateTarget(*in.Hover); err != nil {
			e.logger.Warn("rejected selection",
				zap.String("match_id", s.MatchID),
				zap.Stringer("phase", s.Phase),
				zap.Error(err),
			)
			return err
		}
	}

	changed := false
	var err error
	switch s.Phase {
	case PhaseDeal:
		e.deal(s)
		changed = true
	case PhaseFlipInitialTwo:
		changed = e.handleFlipInitialTwo(s, in)
	case PhaseSelectFromPile:
		changed, err = e.handleSelectFromPile(s, in)
	case PhaseDeckFlipped:
		changed, err = e.handleDeckFlipped(s, in)
	case PhaseReplaceFromHand:
		changed, err = e.handleReplaceFromHand(s, in)
	case PhaseFlipFromHand:
		changed = e.handleFlipFromHand(s, in)
	case PhaseEndRound:
		if in.Advance {
			s.Phase = PhaseDeal
			changed = true
		}
	case PhaseEndGame:
		// Terminal until reset.
	default:
		e.logger.DPanic("unknown phase", zap.Int("phase", int(s.Phase)))
	}
	if err != nil {
		return err
	}
	if changed {
		e.record()
	}
	return nil
}

// reset rebuilds the match from scratch with both cumulative scores
// zeroed, keeping player identities.
func (e *Engine) reset(s *GameState) {
	names := [NumPlayers]string{}
	for i, p := range s.Players {
		names[i] = p.Name
	}
	e.state = NewGameState(uuid.NewString(), names)
	e.logger.Info("match reset",
		zap.String("old_match_id", s.MatchID),
		zap.String("match_id", e.state.MatchID),
	)
}

// deal starts a round: rebuilds the full card pool, shuffles, deals both
// hands face down, and flips one card to seed the discard. If either
// cumulative score has already reached the target the match ends instead.
func (e *Engine) deal(s *GameState) {
	for _, p := range s.Players {
		if p.GameScore >= e.targetScore {
			e.finishGame(s)
			return
		}
	}

	s.Deck = NewDeck()
	if e.legacyShuffle {
		s.Deck.LegacyShuffle(e.rng)
	} else {
		s.Deck.Shuffle(e.rng)
	}
	s.Discard = s.Discard[:0]
	s.DrawnCard = nil

	for _, p := range s.Players {
		p.Hand = p.Hand[:0]
		for i := 0; i < HandSize; i++ {
			card, err := s.Deck.DrawTop()
			if err != nil {
				e.logger.DPanic("deck exhausted during deal", zap.Error(err))
				return
			}
			card.FaceUp = false
			card.Alive = true
			p.Hand = append(p.Hand, card)
		}
	}

	first, err := s.Deck.DrawTop()
	if err != nil {
		e.logger.DPanic("deck exhausted seeding discard", zap.Error(err))
		return
	}
	first.FaceUp = true
	s.Discard = append(s.Discard, first)

	s.Round++
	s.Current = 0
	s.Phase = PhaseFlipInitialTwo

	e.logger.Info("round dealt",
		zap.String("match_id", s.MatchID),
		zap.Int("round", s.Round),
		zap.Int("deck_size", len(s.Deck)),
	)
}

// handleFlipInitialTwo reveals one face-down card per click. The turn
// alternates only when a player completes their two flips; once both
// players are done the first player opens the round proper.
func (e *Engine) handleFlipInitialTwo(s *GameState, in InputFrame) bool {
	if !in.Click || in.Hover == nil || !s.Selectable(*in.Hover) {
		return false
	}
	p := s.ActivePlayer()
	if p.FaceUpCount() >= InitialFlips {
		e.logger.DPanic("player already completed initial flips",
			zap.String("player", p.Name),
			zap.Int("face_up", p.FaceUpCount()),
		)
		return false
	}

	p.Hand[in.Hover.Index].FaceUp = true

	if p.FaceUpCount() < InitialFlips {
		return true
	}
	if s.Current == 0 {
		s.Current = 1
		return true
	}
	s.Current = 0
	s.Phase = PhaseSelectFromPile
	return true
}

// handleSelectFromPile lets the active player commit to the discard top
// or turn over the deck top.
func (e *Engine) handleSelectFromPile(s *GameState, in InputFrame) (bool, error) {
	if !in.Click || in.Hover == nil || !s.Selectable(*in.Hover) {
		return false, nil
	}
	switch in.Hover.Kind {
	case TargetDiscard:
		s.Phase = PhaseReplaceFromHand
		return true, nil
	case TargetDeck:
		card, err := s.Deck.DrawTop()
		if err != nil {
			return false, fmt.Errorf("flipping deck top: %w", err)
		}
		card.FaceUp = true
		s.DrawnCard = &card
		s.Phase = PhaseDeckFlipped
		return true, nil
	}
	return false, nil
}

// handleDeckFlipped resolves the provisionally revealed deck card: either
// it is discarded (the player must then flip a hand card) or it replaces
// a hand card directly.
func (e *Engine) handleDeckFlipped(s *GameState, in InputFrame) (bool, error) {
	if s.DrawnCard == nil {
		e.logger.DPanic("no drawn card in DECK_FLIPPED")
		return false, ErrWrongPhase
	}
	if !in.Click || in.Hover == nil || !s.Selectable(*in.Hover) {
		return false, nil
	}
	switch in.Hover.Kind {
	case TargetDiscard:
		drawn := *s.DrawnCard
		s.DrawnCard = nil
		s.Discard = append(s.Discard, drawn)
		s.Phase = PhaseFlipFromHand
		return true, nil
	case TargetHand:
		drawn := *s.DrawnCard
		s.DrawnCard = nil
		e.replaceIntoHand(s, in.Hover.Index, drawn)
		return true, nil
	}
	return false, nil
}

// handleReplaceFromHand swaps the discard top into the selected hand slot.
func (e *Engine) handleReplaceFromHand(s *GameState, in InputFrame) (bool, error) {
	if !in.Click || in.Hover == nil || !s.Selectable(*in.Hover) {
		return false, nil
	}
	if in.Hover.Kind != TargetHand {
		return false, nil
	}
	if len(s.Discard) == 0 {
		e.logger.DPanic("empty discard in REPLACE_FROM_HAND")
		return false, ErrEmptyDeck
	}
	taken := s.Discard[len(s.Discard)-1]
	s.Discard = s.Discard[:len(s.Discard)-1]
	e.replaceIntoHand(s, in.Hover.Index, taken)
	return true, nil
}

// handleFlipFromHand reveals exactly one face-down card after the drawn
// deck card was discarded.
func (e *Engine) handleFlipFromHand(s *GameState, in InputFrame) bool {
	if !in.Click || in.Hover == nil || !s.Selectable(*in.Hover) {
		return false
	}
	s.ActivePlayer().Hand[in.Hover.Index].FaceUp = true
	e.advanceTurn(s)
	return true
}

// replaceIntoHand places the incoming card face up in the given slot of
// the active hand; the outgoing card becomes the new discard top. Ends
// the turn.
func (e *Engine) replaceIntoHand(s *GameState, index int, incoming Card) {
	p := s.ActivePlayer()
	outgoing := p.Hand[index]
	incoming.FaceUp = true
	incoming.Alive = true
	p.Hand[index] = incoming
	outgoing.FaceUp = true
	s.Discard = append(s.Discard, outgoing)
	e.advanceTurn(s)
}

// advanceTurn closes out the acting player's move: clears any matched
// columns, then either passes the turn or ends the round when the acting
// player has no face-down cards left.
func (e *Engine) advanceTurn(s *GameState) {
	acting := s.Current
	e.clearColumns(s.Players[acting])

	if s.Players[acting].FaceDownCount() > 0 {
		s.Current = s.Opponent()
		s.Phase = PhaseSelectFromPile
		return
	}

	for _, p := range s.Players {
		p.RevealAll()
	}

	other := s.Opponent()
	endingScore := s.Players[acting].LiveScore()
	otherScore := s.Players[other].LiveScore()

	// The ending player must be strictly lowest or their round score
	// doubles.
	if endingScore >= otherScore {
		endingScore *= 2
	}
	s.RoundScores[acting] = endingScore
	s.RoundScores[other] = otherScore
	s.Players[acting].GameScore += endingScore
	s.Players[other].GameScore += otherScore

	e.logger.Info("round ended",
		zap.String("match_id", s.MatchID),
		zap.Int("round", s.Round),
		zap.String("ending_player", s.Players[acting].Name),
		zap.Int("ending_score", endingScore),
		zap.Int("other_score", otherScore),
	)

	for _, p := range s.Players {
		if p.GameScore >= e.targetScore {
			e.finishGame(s)
			return
		}
	}
	s.Phase = PhaseEndRound
}

// finishGame enters the terminal phase. Lowest cumulative score wins; a
// tie leaves Winner at -1.
func (e *Engine) finishGame(s *GameState) {
	s.Phase = PhaseEndGame
	s.Winner = -1
	switch {
	case s.Players[0].GameScore < s.Players[1].GameScore:
		s.Winner = 0
	case s.Players[1].GameScore < s.Players[0].GameScore:
		s.Winner = 1
	}
	e.logger.Info("match ended",
		zap.String("match_id", s.MatchID),
		zap.Int("winner", s.Winner),
		zap.Int("score_0", s.Players[0].GameScore),
		zap.Int("score_1", s.Players[1].GameScore),
	)
}

// clearColumns applies the column-clear rule to every column of the
// hand: three face-up, alive cards of equal non-negative value go dead.
// Negative columns never clear.
func (e *Engine) clearColumns(p *Player) {
	if len(p.Hand) < HandSize {
		return
	}
	for col := 0; col < HandColumns; col++ {
		idx := p.Column(col)
		a, b, c := p.Hand[idx[0]], p.Hand[idx[1]], p.Hand[idx[2]]
		if !a.Alive || !b.Alive || !c.Alive {
			continue
		}
		if !a.FaceUp || !b.FaceUp || !c.FaceUp {
			continue
		}
		if a.Value != b.Value || b.Value != c.Value || a.Value < 0 {
			continue
		}
		for _, i := range idx {
			p.Hand[i].Alive = false
			p.Hand[i].FaceUp = false
		}
		e.logger.Debug("column cleared",
			zap.String("player", p.Name),
			zap.Int("column", col),
			zap.Int("value", a.Value),
		)
	}
}

// record appends a snapshot to the attached replay, if any.
func (e *Engine) record() {
	if e.replay == nil {
		return
	}
	e.replay.Record(e.state.Clone())
}
