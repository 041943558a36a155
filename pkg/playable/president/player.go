package president

import (
	"president-server/pkg/deck"
)

// Player is an individual in the game
type Player struct {
	ID string
	// Seat is the player's position in the turn order
	Seat int

	hand     deck.Hand
	finished bool
}

func newPlayer(id string, seat int) *Player {
	return &Player{
		ID:   id,
		Seat: seat,
		hand: make(deck.Hand, 0),
	}
}

// Hand returns a shallow clone of the player's hand
func (p *Player) Hand() []deck.Card {
	return p.hand.Clone()
}

// hasCards returns true if every card is in the player's hand
func (p *Player) hasCards(cards []deck.Card) bool {
	for _, card := range cards {
		if !p.hand.HasCard(card) {
			return false
		}
	}

	return true
}

// removeCards takes the cards out of the player's hand
// The caller must have checked the cards are in the hand
func (p *Player) removeCards(cards []deck.Card) {
	for _, card := range cards {
		if !p.hand.Discard(card) {
			panic("removing a card the player does not hold")
		}
	}
}

// addCards puts the cards in the hand and keeps it sorted
func (p *Player) addCards(cards []deck.Card) {
	p.hand = append(p.hand, cards...)
	SortHand(p.hand)
}

// newRound resets the per-round values
func (p *Player) newRound() {
	p.hand = make(deck.Hand, 0, deck.Size)
	p.finished = false
}
