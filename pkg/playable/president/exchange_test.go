package president

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"president-server/pkg/deck"
)

func setupExchange(t *testing.T, president, slave string) *Game {
	t.Helper()

	g := newTestGame(t, Options{}, "pres", "slave")
	g.idToPlayer["pres"].hand = deck.CardsFromString(president)
	g.idToPlayer["slave"].hand = deck.CardsFromString(slave)
	SortHand(g.idToPlayer["pres"].hand)
	SortHand(g.idToPlayer["slave"].hand)

	g.previousOutcome = []string{"pres", "slave"}
	g.round = &roundState{
		turn:  g.idToPlayer["slave"].Seat,
		dealt: len(g.idToPlayer["pres"].hand) + len(g.idToPlayer["slave"].hand),
	}
	g.phase = PhaseExchanging

	return g
}

func TestGame_Exchange(t *testing.T) {
	a := assert.New(t)
	g := setupExchange(t, "3d,4h,9c,10c,11c", "5s,6s,7s,14s,2c")

	a.NoError(g.Exchange())
	a.Equal(PhasePlaying, g.Phase())

	pres := g.idToPlayer["pres"].Hand()
	slave := g.idToPlayer["slave"].Hand()

	a.Len(pres, 5)
	a.Len(slave, 5)
	a.Equal(deck.CardsFromString("9c,10c,11c,14s,2c"), pres)
	a.Equal(deck.CardsFromString("3d,4h,5s,6s,7s"), slave)

	a.Equal(&ExchangeRecord{
		PresidentID: "pres",
		SlaveID:     "slave",
		ToPresident: deck.CardsFromString("14s,2c"),
		ToSlave:     deck.CardsFromString("3d,4h"),
	}, g.ExchangeRecord())

	turn, _ := g.CurrentTurn()
	a.Equal("slave", turn)

	a.Equal(ErrInvalidPhase, g.Exchange())
}

func TestGame_Exchange_MiddlePlayersKeepTheirCards(t *testing.T) {
	a := assert.New(t)
	g := setupGame(t, "3c,4c,5c", "6c,7c,8c", "9c,10c,11c")
	g.phase = PhaseExchanging
	g.previousOutcome = []string{"p3", "p2", "p1"}

	a.NoError(g.Exchange())
	a.Equal(deck.CardsFromString("6c,7c,8c"), g.idToPlayer["p2"].Hand())
	a.Equal(deck.CardsFromString("3c,9c,10c"), g.idToPlayer["p1"].Hand())
	a.Equal(deck.CardsFromString("4c,5c,11c"), g.idToPlayer["p3"].Hand())
}

func TestGame_Exchange_InsufficientHandSize(t *testing.T) {
	a := assert.New(t)
	g := setupExchange(t, "3d,4h,9c", "2c")

	before := g.Snapshot()
	a.Equal(ErrInsufficientHandSize, g.Exchange())
	a.Equal(before, g.Snapshot())
	a.Equal(PhaseExchanging, g.Phase())
}

func TestGame_Exchange_FirstRound(t *testing.T) {
	a := assert.New(t)
	g := newTestGame(t, Options{}, "a", "b")
	a.NoError(g.Deal())

	hands := [][]deck.Card{g.players[0].Hand(), g.players[1].Hand()}
	version := g.Version()

	a.NoError(g.Exchange())
	a.Equal(PhasePlaying, g.Phase())
	a.Nil(g.ExchangeRecord())
	a.Equal(hands[0], g.players[0].Hand())
	a.Equal(hands[1], g.players[1].Hand())
	a.Equal(version+1, g.Version())
}
