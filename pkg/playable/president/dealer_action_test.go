package president

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"president-server/pkg/deck"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Add(d time.Duration) {
	f.now = f.now.Add(d)
}

func TestGame_Tick(t *testing.T) {
	a := assert.New(t)
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

	g := setupGame(t, "3c", "4c,5c")
	g.options.DealerDelay = time.Second
	g.now = clock.Now

	// nothing to do while players are playing
	update, err := g.Tick()
	a.False(update)
	a.NoError(err)
	a.Nil(g.pendingDealerAction)

	require.NoError(t, g.Play("p1", deck.CardsFromString("3c")))
	require.Equal(t, PhaseRoundComplete, g.Phase())

	steps := []Phase{PhaseDealing, PhaseExchanging, PhasePlaying}
	for _, next := range steps {
		update, err = g.Tick()
		a.False(update)
		a.NoError(err)
		a.NotNil(g.pendingDealerAction)

		clock.Add(500 * time.Millisecond)
		update, err = g.Tick()
		a.False(update, "still waiting on the dealer")

		clock.Add(600 * time.Millisecond)
		update, err = g.Tick()
		a.True(update)
		a.NoError(err)
		a.Equal(next, g.Phase())
	}

	a.Equal(1, g.Round())
	turn, _ := g.CurrentTurn()
	a.Equal("p2", turn, "the Slave leads")
	a.NotNil(g.ExchangeRecord())

	update, err = g.Tick()
	a.False(update)
	a.NoError(err)
	a.Nil(g.pendingDealerAction)
}

func TestGame_Tick_FirstDealIsExplicit(t *testing.T) {
	g := newTestGame(t, Options{DealerDelay: time.Millisecond}, "a", "b")

	update, err := g.Tick()
	assert.False(t, update)
	assert.NoError(t, err)
	assert.Nil(t, g.pendingDealerAction)
}

func TestGame_Tick_Disabled(t *testing.T) {
	g := setupGame(t, "3c", "4c")
	require.NoError(t, g.Play("p1", deck.CardsFromString("3c")))

	update, err := g.Tick()
	assert.False(t, update)
	assert.NoError(t, err)
	assert.Nil(t, g.pendingDealerAction)
	assert.Equal(t, PhaseRoundComplete, g.Phase())
}

func TestGame_Tick_ManualActionWins(t *testing.T) {
	a := assert.New(t)
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

	g := newTestGame(t, Options{DealerDelay: time.Second}, "a", "b")
	g.now = clock.Now
	require.NoError(t, g.Deal())

	_, _ = g.Tick()
	require.NotNil(t, g.pendingDealerAction)

	// a player asks for the exchange before the dealer gets to it
	require.NoError(t, g.Exchange())
	version := g.Version()

	clock.Add(2 * time.Second)
	update, err := g.Tick()
	a.False(update)
	a.NoError(err)
	a.Nil(g.pendingDealerAction)
	a.Equal(PhasePlaying, g.Phase())
	a.Equal(version, g.Version())
}
