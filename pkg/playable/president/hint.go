package president

import (
	"president-server/pkg/deck"
)

// Hint returns the weakest legal play for the hand, preferring to shed pairs when leading
// A nil result means the player can only pass
func Hint(hand []deck.Card, trick Trick) []deck.Card {
	sorted := append([]deck.Card{}, hand...)
	SortHand(sorted)

	if trick.IsEmpty() {
		if len(sorted) == 0 {
			return nil
		}

		if len(sorted) > 1 && RankOf(sorted[0]) == RankOf(sorted[1]) {
			return sorted[:2]
		}

		return sorted[:1]
	}

	for i := range sorted {
		var selection []deck.Card
		if len(trick.Cards) == 1 {
			selection = sorted[i : i+1]
		} else if i+1 < len(sorted) {
			selection = sorted[i : i+2]
		} else {
			break
		}

		if trick.validateAgainst(selection) == nil {
			return append([]deck.Card{}, selection...)
		}
	}

	return nil
}
