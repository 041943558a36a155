package president

import (
	"strings"

	"president-server/pkg/deck"
	"president-server/pkg/playable"
)

// actingPlayer returns the player if they are allowed to act right now
func (g *Game) actingPlayer(playerID string) (*Player, error) {
	if g.phase != PhasePlaying {
		return nil, ErrInvalidPhase
	}

	p, ok := g.idToPlayer[playerID]
	if !ok {
		return nil, ErrUnknownPlayer
	}

	if g.round.turn != p.Seat {
		return nil, ErrNotYourTurn
	}

	return p, nil
}

// Play puts one card or a pair on the table
// Every check is made before the game is touched, a rejected play changes nothing
func (g *Game) Play(playerID string, cards []deck.Card) error {
	p, err := g.actingPlayer(playerID)
	if err != nil {
		return err
	}

	if err := validateSelection(cards); err != nil {
		return err
	}

	if !p.hasCards(cards) {
		return ErrCardsNotOwned
	}

	r := g.round
	if err := r.trick.validateAgainst(cards); err != nil {
		return err
	}

	selection := append([]deck.Card{}, cards...)
	SortHand(selection)

	p.removeCards(selection)
	r.discards = append(r.discards, r.trick.Cards...)
	r.trick = Trick{
		Cards:   selection,
		OwnerID: p.ID,
	}
	r.passes = 0

	logs := []*playable.LogMessage{playable.NewLogMessage([]string{p.ID}, selection, "{} played %s", cardNames(selection))}

	if len(p.hand) == 0 {
		p.finished = true
		g.appendOutcome(p)
		logs = append(logs, playable.SimpleLogMessage(p.ID, "{} is out in place %d", len(r.outcome)))
	}

	if !g.completeRoundIfDecided() {
		r.turn = g.nextActiveSeat(p.Seat)
	}

	g.mutated()
	g.sendLogMessages(logs...)
	g.checkConservation()

	return nil
}

// Pass skips the player's turn
// Once every other remaining player passed on the same trick the table is cleared
func (g *Game) Pass(playerID string) error {
	p, err := g.actingPlayer(playerID)
	if err != nil {
		return err
	}

	r := g.round
	if r.trick.IsEmpty() {
		return ErrCannotPassOnEmptyTrick
	}

	r.passes++
	logs := []*playable.LogMessage{playable.SimpleLogMessage(p.ID, "{} passed")}

	owner := g.idToPlayer[r.trick.OwnerID]
	needed := g.activeCount()
	if !owner.finished {
		needed--
	}

	if r.passes >= needed {
		r.discards = append(r.discards, r.trick.Cards...)
		r.trick = Trick{}
		r.passes = 0

		if owner.finished {
			r.turn = g.nextActiveSeat(owner.Seat)
		} else {
			r.turn = owner.Seat
		}

		logs = append(logs, playable.SimpleLogMessage(g.players[r.turn].ID, "Table is cleared, {} leads"))
	} else {
		r.turn = g.nextActiveSeat(p.Seat)
	}

	g.completeRoundIfDecided()

	g.mutated()
	g.sendLogMessages(logs...)

	return nil
}

// nextActiveSeat returns the first seat after from whose player still has cards
// from itself is only returned when it is the sole active seat, -1 if there are none
func (g *Game) nextActiveSeat(from int) int {
	n := len(g.players)
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if !g.players[seat].finished {
			return seat
		}
	}

	return -1
}

func (g *Game) activeCount() int {
	count := 0
	for _, p := range g.players {
		if !p.finished {
			count++
		}
	}

	return count
}

// completeRoundIfDecided ends the round when a single player still holds cards
func (g *Game) completeRoundIfDecided() bool {
	if g.activeCount() > 1 {
		return false
	}

	for _, p := range g.players {
		if !p.finished {
			p.finished = true
			g.appendOutcome(p)
		}
	}

	r := g.round
	r.turn = -1
	g.phase = PhaseRoundComplete
	g.history = append(g.history, &RoundResult{
		Round:    g.roundNo + 1,
		Outcome:  append([]string{}, r.outcome...),
		Exchange: g.ExchangeRecord(),
	})

	g.sendLogMessages(playable.SimpleLogMessage(r.outcome[0], "{} is the President"))

	return true
}

// checkConservation makes sure no card was created or lost
func (g *Game) checkConservation() {
	seen := make(map[deck.Card]bool, g.round.dealt)
	count := 0
	add := func(cards []deck.Card) {
		for _, c := range cards {
			seen[c] = true
			count++
		}
	}

	for _, p := range g.players {
		add(p.hand)
	}

	add(g.round.trick.Cards)
	add(g.round.discards)

	if count != g.round.dealt || len(seen) != g.round.dealt {
		g.invariantViolated("card conservation broken: %d cards, %d distinct", count, len(seen))
	}
}

func cardNames(cards []deck.Card) string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}

	return strings.Join(names, " ")
}
