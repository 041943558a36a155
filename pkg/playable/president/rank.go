package president

import (
	"sort"

	"president-server/pkg/deck"
)

// rankOrder lists ranks from weakest to strongest. 3 is the lowest card, 2 the highest
var rankOrder = []int{3, 4, 5, 6, 7, 8, 9, 10, deck.Jack, deck.Queen, deck.King, deck.Ace, 2}

var rankIndex = func() map[int]int {
	m := make(map[int]int, len(rankOrder))
	for i, r := range rankOrder {
		m[r] = i
	}

	return m
}()

// openingCard is held by the player who starts the first round of a game
var openingCard = deck.Card{Rank: 3, Suit: deck.Clubs}

// RankOf returns the strength of the card, from 0 (a three) to 12 (a two)
func RankOf(card deck.Card) int {
	r, ok := rankIndex[card.Rank]
	if !ok {
		panic("unknown rank")
	}

	return r
}

// SortHand sorts the cards from weakest to strongest
// Cards of the same rank are ordered by suit so that the order is stable for display
func SortHand(cards []deck.Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		ri, rj := RankOf(cards[i]), RankOf(cards[j])
		if ri != rj {
			return ri < rj
		}

		return cards[i].Suit.Order() < cards[j].Suit.Order()
	})
}

// lowest returns the n weakest cards of a sorted hand
func lowest(hand []deck.Card, n int) []deck.Card {
	return append([]deck.Card{}, hand[:n]...)
}

// highest returns the n strongest cards of a sorted hand
func highest(hand []deck.Card, n int) []deck.Card {
	return append([]deck.Card{}, hand[len(hand)-n:]...)
}
