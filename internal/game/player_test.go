package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiveScoreCountsOnlyAliveFaceUp(t *testing.T) {
	p := NewPlayer("Alice")
	p.Hand = []Card{
		{Value: 5, FaceUp: true, Alive: true},
		{Value: -2, FaceUp: true, Alive: true},
		{Value: 12, FaceUp: false, Alive: true}, // face down, ignored
		{Value: 9, FaceUp: true, Alive: false},  // cleared, ignored
	}
	assert.Equal(t, 3, p.LiveScore())
}

func TestLiveScoreInvariantUnderReordering(t *testing.T) {
	p := NewPlayer("Alice")
	for i := 0; i < HandSize; i++ {
		p.Hand = append(p.Hand, Card{Value: i - 2, FaceUp: i%2 == 0, Alive: true})
	}
	want := p.LiveScore()

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 10; trial++ {
		rng.Shuffle(len(p.Hand), func(i, j int) {
			p.Hand[i], p.Hand[j] = p.Hand[j], p.Hand[i]
		})
		assert.Equal(t, want, p.LiveScore())
	}
}

func TestFaceCounts(t *testing.T) {
	p := NewPlayer("Bob")
	p.Hand = []Card{
		{Value: 1, FaceUp: true, Alive: true},
		{Value: 2, FaceUp: false, Alive: true},
		{Value: 3, FaceUp: false, Alive: true},
		{Value: 4, FaceUp: false, Alive: false}, // dead cards count for neither
	}
	assert.Equal(t, 1, p.FaceUpCount())
	assert.Equal(t, 2, p.FaceDownCount())
}

func TestColumnIndices(t *testing.T) {
	p := NewPlayer("Bob")
	assert.Equal(t, [HandRows]int{0, 4, 8}, p.Column(0))
	assert.Equal(t, [HandRows]int{3, 7, 11}, p.Column(3))
}

func TestRevealAllSkipsDeadCards(t *testing.T) {
	p := NewPlayer("Bob")
	p.Hand = []Card{
		{Value: 1, FaceUp: false, Alive: true},
		{Value: 2, FaceUp: false, Alive: false},
	}
	p.RevealAll()
	assert.True(t, p.Hand[0].FaceUp)
	assert.False(t, p.Hand[1].FaceUp)
}
