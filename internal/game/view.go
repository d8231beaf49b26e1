package game

// Outline marks a hand at round or match end so the renderer can draw a
// winner/loser border.
type Outline int

const (
	OutlineNone Outline = iota
	OutlineFavorable
	OutlineUnfavorable
)

var outlineNames = map[Outline]string{
	OutlineNone:        "NONE",
	OutlineFavorable:   "FAVORABLE",
	OutlineUnfavorable: "UNFAVORABLE",
}

func (o Outline) String() string {
	if name, ok := outlineNames[o]; ok {
		return name
	}
	return "NONE"
}

// CardView is what the renderer is allowed to know about one card. Value
// is zeroed while the card is face down so a shared-screen renderer
// cannot leak it.
type CardView struct {
	Value      int    `json:"value"`
	FaceUp     bool   `json:"face_up"`
	Alive      bool   `json:"alive"`
	Category   string `json:"category,omitempty"`
	Selectable bool   `json:"selectable"`
	Outline    string `json:"outline"`
}

// PileView is the renderer's view of the deck or discard.
type PileView struct {
	Count      int       `json:"count"`
	Top        *CardView `json:"top,omitempty"`
	Selectable bool      `json:"selectable"`
}

// PlayerView is the renderer's view of one seat.
type PlayerView struct {
	Name      string     `json:"name"`
	GameScore int        `json:"game_score"`
	LiveScore int        `json:"live_score"`
	Active    bool       `json:"active"`
	Hand      []CardView `json:"hand"`
}

// RenderState is the full per-tick output surface: everything the
// presentation layer needs to draw the board, and nothing it must not
// see.
type RenderState struct {
	MatchID     string                 `json:"match_id"`
	Phase       string                 `json:"phase"`
	Round       int                    `json:"round"`
	Instruction string                 `json:"instruction"`
	Deck        PileView               `json:"deck"`
	Discard     PileView               `json:"discard"`
	Drawn       *CardView              `json:"drawn,omitempty"`
	Players     [NumPlayers]PlayerView `json:"players"`
	Winner      int                    `json:"winner"`
}

var instructions = map[Phase]string{
	PhaseDeal:            "dealing...",
	PhaseFlipInitialTwo:  "choose 2 cards to flip",
	PhaseSelectFromPile:  "select from a pile",
	PhaseDeckFlipped:     "keep the drawn card or discard it",
	PhaseReplaceFromHand: "choose a card to replace",
	PhaseFlipFromHand:    "choose a card to flip",
	PhaseEndRound:        "round ended, press continue",
	PhaseEndGame:         "game over",
}

// Render derives the presentation snapshot for the current state. It is
// recomputed every tick and never persisted.
func (e *Engine) Render() *RenderState {
	s := e.state
	out := &RenderState{
		MatchID:     s.MatchID,
		Phase:       s.Phase.String(),
		Round:       s.Round,
		Instruction: instructions[s.Phase],
		Winner:      s.Winner,
	}

	out.Deck = PileView{
		Count:      len(s.Deck),
		Selectable: s.Selectable(Target{Kind: TargetDeck}),
	}
	out.Discard = PileView{
		Count:      len(s.Discard),
		Selectable: s.Selectable(Target{Kind: TargetDiscard}),
	}
	if top, ok := s.Discard.Top(); ok {
		view := cardView(top, out.Discard.Selectable, OutlineNone)
		out.Discard.Top = &view
	}
	if s.DrawnCard != nil {
		view := cardView(*s.DrawnCard, false, OutlineNone)
		out.Drawn = &view
	}

	for i, p := range s.Players {
		outline := e.handOutline(s, i)
		pv := PlayerView{
			Name:      p.Name,
			GameScore: p.GameScore,
			LiveScore: p.LiveScore(),
			Active:    i == s.Current,
			Hand:      make([]CardView, len(p.Hand)),
		}
		for j, c := range p.Hand {
			pv.Hand[j] = cardView(c, s.Selectable(HandTarget(i, j)), outline)
		}
		out.Players[i] = pv
	}
	return out
}

// handOutline picks the round-end border for a seat: favorable for the
// strictly lower round score, unfavorable for the higher. At game end the
// comparison uses cumulative scores instead.
func (e *Engine) handOutline(s *GameState, player int) Outline {
	other := (player + 1) % NumPlayers
	var mine, theirs int
	switch s.Phase {
	case PhaseEndRound:
		mine, theirs = s.RoundScores[player], s.RoundScores[other]
	case PhaseEndGame:
		mine, theirs = s.Players[player].GameScore, s.Players[other].GameScore
	default:
		return OutlineNone
	}
	switch {
	case mine < theirs:
		return OutlineFavorable
	case mine > theirs:
		return OutlineUnfavorable
	default:
		return OutlineNone
	}
}

func cardView(c Card, selectable bool, outline Outline) CardView {
	view := CardView{
		FaceUp:     c.FaceUp,
		Alive:      c.Alive,
		Selectable: selectable,
		Outline:    outline.String(),
	}
	if c.FaceUp {
		view.Value = c.Value
		view.Category = CategoryOf(c.Value).String()
	}
	return view
}
