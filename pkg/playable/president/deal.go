package president

import (
	"president-server/pkg/deck"
	"president-server/pkg/playable"
)

func (g *Game) shuffledDeck() *deck.Deck {
	d := deck.New()
	d.Shuffle(g.gen)
	return d
}

// Deal will shuffle a new deck and deal every card to the players
// Cards are dealt one at a time starting at seat 0 until the deck runs out
func (g *Game) Deal() error {
	if g.phase != PhaseDealing {
		return ErrInvalidPhase
	}

	d := g.newDeck()

	for _, p := range g.players {
		p.newRound()
	}

	n := len(g.players)
	dealt := 0
	for i := 0; d.CanDraw(1); i++ {
		card, err := d.Draw()
		if err != nil {
			return err
		}

		p := g.players[i%n]
		p.hand = append(p.hand, card)
		dealt++
	}

	for _, p := range g.players {
		SortHand(p.hand)
	}

	g.round = &roundState{
		trick:    Trick{},
		turn:     g.startingSeat(),
		outcome:  make([]string, 0, n),
		discards: make([]deck.Card, 0, dealt),
		dealt:    dealt,
	}

	g.exchange = nil
	g.pendingDealerAction = nil
	g.phase = PhaseExchanging
	g.mutated()

	g.sendLogMessages(playable.SimpleLogMessage("", "Round %d cards are dealt", g.roundNo+1))

	return nil
}

// startingSeat returns the seat that leads the round
// The first round of a game is led by the holder of the three of clubs, later rounds by the last Slave
func (g *Game) startingSeat() int {
	if len(g.previousOutcome) > 0 {
		slave := g.previousOutcome[len(g.previousOutcome)-1]
		return g.idToPlayer[slave].Seat
	}

	for _, p := range g.players {
		if p.hand.HasCard(openingCard) {
			return p.Seat
		}
	}

	g.invariantViolated("%s was not dealt, seat 0 leads", openingCard)
	return 0
}
