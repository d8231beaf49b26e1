package game

// Player is one seat at the table: a named 4x3 hand plus the cumulative
// score that persists across rounds. The live round score is derived from
// the hand on demand, never stored.
type Player struct {
	Name      string
	Hand      []Card
	GameScore int
}

// NewPlayer creates a player with an empty hand.
func NewPlayer(name string) *Player {
	return &Player{Name: name, Hand: make([]Card, 0, HandSize)}
}

// LiveScore sums the values of alive, face-up cards. Face-down and
// cleared cards contribute zero.
func (p *Player) LiveScore() int {
	total := 0
	for _, c := range p.Hand {
		if c.Alive && c.FaceUp {
			total += c.Value
		}
	}
	return total
}

// FaceUpCount counts alive face-up cards.
func (p *Player) FaceUpCount() int {
	n := 0
	for _, c := range p.Hand {
		if c.Alive && c.FaceUp {
			n++
		}
	}
	return n
}

// FaceDownCount counts alive face-down cards. The round ends when the
// acting player's count reaches zero.
func (p *Player) FaceDownCount() int {
	n := 0
	for _, c := range p.Hand {
		if c.Alive && !c.FaceUp {
			n++
		}
	}
	return n
}

// Column returns the hand indices of column col, top to bottom.
func (p *Player) Column(col int) [HandRows]int {
	return [HandRows]int{col, col + HandColumns, col + 2*HandColumns}
}

// RevealAll turns every alive card face up, as happens at round end.
func (p *Player) RevealAll() {
	for i := range p.Hand {
		if p.Hand[i].Alive {
			p.Hand[i].FaceUp = true
		}
	}
}

func (p *Player) clone() *Player {
	dup := &Player{Name: p.Name, GameScore: p.GameScore}
	dup.Hand = append([]Card(nil), p.Hand...)
	return dup
}
