package president

import (
	"president-server/pkg/deck"
)

// Trick is the set of cards on the table that the next player has to beat
// An empty trick means the table is clear and the next player may lead with anything
type Trick struct {
	Cards   []deck.Card `json:"cards"`
	OwnerID string      `json:"ownerId,omitempty"`
}

// IsEmpty returns true if the table is clear
func (t Trick) IsEmpty() bool {
	return len(t.Cards) == 0
}

// Rank returns the strength of the trick. Only valid on a non-empty trick
func (t Trick) Rank() int {
	return RankOf(t.Cards[0])
}

func (t Trick) clone() Trick {
	return Trick{
		Cards:   append([]deck.Card{}, t.Cards...),
		OwnerID: t.OwnerID,
	}
}

// validateSelection checks the selection on its own: size, duplicates and matching ranks
func validateSelection(cards []deck.Card) error {
	switch {
	case len(cards) == 0:
		return ErrEmptySelection
	case len(cards) > 2:
		return ErrTooManyCards
	case len(cards) == 2 && cards[0].Equal(cards[1]):
		return ErrDuplicateCard
	}

	return nil
}

// validateAgainst checks the selection can be played onto the trick
func (t Trick) validateAgainst(cards []deck.Card) error {
	if len(cards) == 2 && RankOf(cards[0]) != RankOf(cards[1]) {
		return ErrRankMismatch
	}

	// leading, anything goes
	if t.IsEmpty() {
		return nil
	}

	if len(cards) != len(t.Cards) {
		return ErrQuantityMismatch
	}

	if RankOf(cards[0]) <= t.Rank() {
		return ErrRankTooLow
	}

	return nil
}
