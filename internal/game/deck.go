package game

import "math/rand"

// Deck is an ordered pile of cards. The deck proper is drawn from the
// top (index 0); the discard pile grows at the back, so its visible top
// card is the last element.
type Deck []Card

// Shuffle performs a uniform Fisher-Yates shuffle.
func (d Deck) Shuffle(rng *rand.Rand) {
	for i := len(d) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// LegacyShuffle reproduces the original shuffle for parity testing: each
// position swaps with a uniformly chosen partner, re-rolling whenever the
// partner equals the current index. Rejecting the self-swap only rules
// out the immediate fixed point; a later swap can still return a card to
// its starting index. The result is a biased, non-uniform permutation.
func (d Deck) LegacyShuffle(rng *rand.Rand) {
	if len(d) < 2 {
		return
	}
	for i := range d {
		j := i
		for j == i {
			j = rng.Intn(len(d))
		}
		d[i], d[j] = d[j], d[i]
	}
}

// DrawTop removes and returns the top card.
func (d *Deck) DrawTop() (Card, error) {
	if len(*d) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := (*d)[0]
	*d = (*d)[1:]
	return card, nil
}

// Top returns the visible top of a discard-style pile without removing it.
func (d Deck) Top() (Card, bool) {
	if len(d) == 0 {
		return Card{}, false
	}
	return d[len(d)-1], true
}

// MoveOne pops the back element of from and appends it to to.
func MoveOne(from, to *Deck) error {
	if len(*from) == 0 {
		return ErrEmptyDeck
	}
	card := (*from)[len(*from)-1]
	*from = (*from)[:len(*from)-1]
	*to = append(*to, card)
	return nil
}
