package game

import "fmt"

// Card value bounds and board geometry.
const (
	MinCardValue = -2
	MaxCardValue = 12

	HandSize    = 12
	HandColumns = 4
	HandRows    = 3

	// TotalCards is the full Skyjo multiset: -2 x5, -1 x10, 0 x15,
	// 1..12 x10 each.
	TotalCards = 150
)

// Card is a single Skyjo card. A card that is not Alive has been cleared
// via a matched column: it keeps its slot in the hand so positional
// indexing stays valid, but it contributes nothing to scoring and is not
// interactable.
type Card struct {
	Value  int
	FaceUp bool
	Alive  bool
}

// Category is the visual class of a card value. It selects a texture
// region in the renderer and carries no gameplay weight.
type Category int

const (
	CategoryNegative Category = iota
	CategoryZero
	CategoryLowPositive
	CategoryMid
	CategoryHigh
)

var categoryNames = map[Category]string{
	CategoryNegative:    "NEGATIVE",
	CategoryZero:        "ZERO",
	CategoryLowPositive: "LOW",
	CategoryMid:         "MID",
	CategoryHigh:        "HIGH",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CATEGORY_%d", int(c))
}

// CategoryOf maps a card value to its visual category.
func CategoryOf(value int) Category {
	switch {
	case value < 0:
		return CategoryNegative
	case value == 0:
		return CategoryZero
	case value <= 4:
		return CategoryLowPositive
	case value <= 8:
		return CategoryMid
	default:
		return CategoryHigh
	}
}

// deckComposition is keyed by per-value copy count; the listed values
// share that count.
var deckComposition = []struct {
	Count  int
	Values []int
}{
	{Count: 5, Values: []int{-2}},
	{Count: 15, Values: []int{0}},
	{Count: 10, Values: []int{-1, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
}

// NewDeck builds the full 150-card multiset, face down, in a fixed
// enumeration order. Callers shuffle before dealing.
func NewDeck() Deck {
	deck := make(Deck, 0, TotalCards)
	for _, group := range deckComposition {
		for _, value := range group.Values {
			for i := 0; i < group.Count; i++ {
				deck = append(deck, Card{Value: value, Alive: true})
			}
		}
	}
	return deck
}

// ColumnOf returns the column of a hand slot in the 4x3 grid.
func ColumnOf(index int) int { return index % HandColumns }

// RowOf returns the row of a hand slot in the 4x3 grid.
func RowOf(index int) int { return index / HandColumns }
