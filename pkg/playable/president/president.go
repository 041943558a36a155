package president

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"president-server/internal/rng"
	"president-server/pkg/deck"
	"president-server/pkg/playable"
)

// Phase is the stage a game is in
type Phase string

// Phase constants
const (
	PhaseDealing       Phase = "dealing"
	PhaseExchanging    Phase = "exchanging"
	PhasePlaying       Phase = "playing"
	PhaseRoundComplete Phase = "roundComplete"
	PhaseGameComplete  Phase = "gameComplete"
)

// roundState only exists between a deal and the next call to AdvanceRound
type roundState struct {
	trick    Trick
	passes   int
	turn     int // seat of the player to act, -1 once the round is decided
	outcome  []string
	discards []deck.Card
	dealt    int
}

// Stats are the cumulative results for a player over a game
type Stats struct {
	President int `json:"president"`
	Slave     int `json:"slave"`
}

// Game is a game of President
type Game struct {
	options Options
	gen     rng.Generator

	players    []*Player
	idToPlayer map[string]*Player

	phase   Phase
	version uint64

	// roundNo is the number of completed rounds
	roundNo         int
	round           *roundState
	previousOutcome []string
	exchange        *ExchangeRecord
	stats           map[string]*Stats
	standings       []Standing
	history         []*RoundResult
	startTime       time.Time
	endTime         time.Time

	logger  logrus.FieldLogger
	logChan chan []*playable.LogMessage

	pendingDealerAction *pendingDealerAction

	// newDeck returns the deck for the next deal, overridden by tests
	newDeck func() *deck.Deck
	now     func() time.Time
}

var (
	_ playable.Playable = (*Game)(nil)
	_ playable.Tickable = (*Game)(nil)
)

// NewGame returns a new game of President. Players are seated by sorted id
func NewGame(logger logrus.FieldLogger, playerIDs []string, opts Options) (*Game, error) {
	if len(playerIDs) < 2 {
		return nil, ErrInsufficientPlayers
	}

	if len(playerIDs) > playersLimit {
		return nil, PlayerCountError(len(playerIDs))
	}

	if opts.RoundLimit < 1 {
		return nil, ErrInvalidRoundLimit
	}

	ids := append([]string{}, playerIDs...)
	sort.Strings(ids)

	players := make([]*Player, len(ids))
	idToPlayer := make(map[string]*Player, len(ids))
	stats := make(map[string]*Stats, len(ids))
	for i, id := range ids {
		if _, ok := idToPlayer[id]; ok {
			return nil, ErrDuplicatePlayer
		}

		players[i] = newPlayer(id, i)
		idToPlayer[id] = players[i]
		stats[id] = &Stats{}
	}

	if opts.Generator == nil {
		opts.Generator = rng.Crypto{}
	}

	g := &Game{
		options:    opts,
		gen:        opts.Generator,
		players:    players,
		idToPlayer: idToPlayer,
		phase:      PhaseDealing,
		stats:      stats,
		logger:     logger,
		logChan:    make(chan []*playable.LogMessage, 256),
		now:        time.Now,
	}

	g.newDeck = g.shuffledDeck
	g.startTime = g.now()

	return g, nil
}

// Name returns "President"
func (g *Game) Name() string {
	return "President"
}

// LogChan returns a channel for sending log messages
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Action performs an action on behalf of the player
func (g *Game) Action(playerID string, message *playable.PayloadIn) (playerResponse *playable.Response, updateState bool, err error) {
	if _, ok := g.idToPlayer[playerID]; !ok {
		return nil, false, ErrUnknownPlayer
	}

	if message.Version != nil && *message.Version != g.version {
		return nil, false, ErrStaleState
	}

	log := g.logger.WithFields(logrus.Fields{
		"playerID": playerID,
		"action":   message.Action,
	})

	switch message.Action {
	case "play":
		log.WithField("cards", message.Cards).Debug("player plays")
		err = g.Play(playerID, message.Cards)
	case "pass":
		err = g.Pass(playerID)
	case "deal":
		err = g.Deal()
	case "exchange":
		err = g.Exchange()
	case "advanceRound":
		err = g.AdvanceRound()
	case "reset":
		err = g.Reset()
	default:
		return nil, false, fmt.Errorf("%w: %s", ErrUnknownAction, message.Action)
	}

	if err != nil {
		return nil, false, err
	}

	return playable.OK(message.Context), true, nil
}

// GetEndOfGameDetails returns the game log once every round was played
func (g *Game) GetEndOfGameDetails() (*playable.GameOverDetails, bool) {
	if g.phase != PhaseGameComplete {
		return nil, false
	}

	return &playable.GameOverDetails{
		Log: g.GameLog(),
	}, true
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.phase
}

// Version returns a counter that increases on every successful mutation
func (g *Game) Version() uint64 {
	return g.version
}

// Round returns the number of completed rounds
func (g *Game) Round() int {
	return g.roundNo
}

// TurnOrder returns the player ids in seating order
func (g *Game) TurnOrder() []string {
	ids := make([]string, len(g.players))
	for i, p := range g.players {
		ids[i] = p.ID
	}

	return ids
}

// Hand returns a copy of the player's hand
func (g *Game) Hand(playerID string) ([]deck.Card, error) {
	p, ok := g.idToPlayer[playerID]
	if !ok {
		return nil, ErrUnknownPlayer
	}

	return p.Hand(), nil
}

// Trick returns the cards on the table. The trick is empty outside of play
func (g *Game) Trick() Trick {
	if g.round == nil || g.phase != PhasePlaying {
		return Trick{}
	}

	return g.round.trick.clone()
}

// CurrentTurn returns the id of the player to act, or false if nobody is to act
func (g *Game) CurrentTurn() (string, bool) {
	if g.phase != PhasePlaying || g.round.turn < 0 {
		return "", false
	}

	return g.players[g.round.turn].ID, true
}

// Outcome returns the finishing order of the current round so far
func (g *Game) Outcome() []string {
	if g.round == nil {
		return nil
	}

	return append([]string{}, g.round.outcome...)
}

// PreviousOutcome returns the finishing order of the last completed round
func (g *Game) PreviousOutcome() []string {
	return append([]string{}, g.previousOutcome...)
}

// ExchangeRecord returns the record of the last exchange, if one happened since the last deal
func (g *Game) ExchangeRecord() *ExchangeRecord {
	if g.exchange == nil {
		return nil
	}

	return g.exchange.clone()
}

// Stats returns the number of times a player was President or Slave
func (g *Game) Stats(playerID string) Stats {
	if s, ok := g.stats[playerID]; ok {
		return *s
	}

	return Stats{}
}

func (g *Game) sendLogMessages(msg ...*playable.LogMessage) {
	select {
	case g.logChan <- msg:
	default:
		g.logger.WithField("messages", len(msg)).Warn("log channel is full, dropping messages")
	}
}

func (g *Game) invariantViolated(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	g.logger.WithField("type", "invariant").Error(msg)
	if g.options.StrictInvariants {
		panic(msg)
	}
}

// mutated is called after every successful change of state
func (g *Game) mutated() {
	g.version++
}
