package room

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"president-server/pkg/playable"
	"president-server/pkg/playable/president"
	"president-server/pkg/record"
)

type state int

const (
	stateClientEvent state = iota
	stateGameEvent
)

const recordTimeout = 5 * time.Second

// Dealer is responsible for controlling the game of a single room
// Every change to the game happens under gameLock, readers only ever see a complete copy
type Dealer struct {
	ID   string
	Code string

	pitBoss *PitBoss
	store   record.Store
	logger  logrus.FieldLogger
	created time.Time

	gameLock sync.RWMutex
	game     *president.Game

	clientLock sync.RWMutex
	clients    map[*Client]bool

	activityLock sync.Mutex
	lastActivity time.Time

	logLock     sync.RWMutex
	logMessages []*playable.LogMessage

	execInRunLoop chan func()
	stateChanged  chan state
	close         chan bool
	closeOnce     sync.Once
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(pitBoss *PitBoss, id, code string, game *president.Game, store record.Store, logger logrus.FieldLogger) *Dealer {
	now := time.Now()
	return &Dealer{
		ID:            id,
		Code:          code,
		pitBoss:       pitBoss,
		store:         store,
		logger:        logger.WithFields(logrus.Fields{"uuid": id, "code": code}),
		created:       now,
		lastActivity:  now,
		game:          game,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan state, 256),
		close:         make(chan bool),
	}
}

// Created is when the room was opened
func (d *Dealer) Created() time.Time {
	return d.created
}

// touch marks the room as in use
func (d *Dealer) touch() {
	d.activityLock.Lock()
	d.lastActivity = time.Now()
	d.activityLock.Unlock()
}

// idle returns true if nobody is connected and nothing happened in the room for timeout
func (d *Dealer) idle(now time.Time, timeout time.Duration) bool {
	d.clientLock.RLock()
	nClients := len(d.clients)
	d.clientLock.RUnlock()

	if nClients > 0 {
		return false
	}

	d.activityLock.Lock()
	defer d.activityLock.Unlock()

	return now.Sub(d.lastActivity) >= timeout
}

// Phase returns the phase the game is in
func (d *Dealer) Phase() president.Phase {
	d.gameLock.RLock()
	defer d.gameLock.RUnlock()

	return d.game.Phase()
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.clientLock.RLock()
	defer d.clientLock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")

	ticker := time.NewTicker(d.game.Interval())
	defer ticker.Stop()

	for {
		select {
		case s := <-d.stateChanged:
			switch s {
			case stateClientEvent:
				d.sendClientState()
			case stateGameEvent:
				d.sendGameData()
			}
		case fn := <-d.execInRunLoop:
			fn()
		case messages := <-d.game.LogChan():
			d.addLogMessages(messages)
			d.broadcast(&playable.Response{
				Key:  "logs",
				Data: messages,
			})
		case <-ticker.C:
			d.tick()
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		close(d.close)
	})
}

// Apply runs the action for the player as one step
// The response is what the acting player should see, the game state is pushed to everybody else
func (d *Dealer) Apply(playerID string, msg *playable.PayloadIn) (*playable.Response, error) {
	d.touch()

	d.gameLock.Lock()
	before := d.game.Phase()
	res, update, err := d.game.Action(playerID, msg)
	ended := d.endedLog(before)
	d.gameLock.Unlock()

	if err != nil {
		return nil, err
	}

	if ended != nil {
		d.recordGame(ended)
	}

	if update {
		d.notify(stateGameEvent)
	}

	return res, nil
}

// Snapshot returns a copy of the game that is safe to read at any time
func (d *Dealer) Snapshot() *president.Snapshot {
	d.gameLock.RLock()
	defer d.gameLock.RUnlock()

	return d.game.Snapshot()
}

// PlayerState returns the state of the game as the player is allowed to see it
func (d *Dealer) PlayerState(playerID string) (*playable.Response, error) {
	d.gameLock.RLock()
	defer d.gameLock.RUnlock()

	return d.game.GetPlayerState(playerID)
}

// stateFor returns the player's state, or the public state for somebody watching
func (d *Dealer) stateFor(playerID string) *playable.Response {
	res, err := d.PlayerState(playerID)
	if err == nil {
		return res
	}

	return &playable.Response{
		Key:   "game",
		Value: "president",
		Data: &president.Response{
			GameState: d.Snapshot().GameState,
		},
	}
}

// tick lets the game move itself along between rounds
func (d *Dealer) tick() {
	d.gameLock.Lock()
	before := d.game.Phase()
	update, err := d.game.Tick()
	ended := d.endedLog(before)
	d.gameLock.Unlock()

	if err != nil {
		d.logger.WithError(err).Error("could not tick the game")
	}

	if ended != nil {
		d.recordGame(ended)
	}

	if update {
		d.notify(stateGameEvent)
	}
}

// endedLog returns the game log if the game just finished
// NOTE: must be called with gameLock held
func (d *Dealer) endedLog(before president.Phase) *president.GameLog {
	if before == president.PhaseGameComplete {
		return nil
	}

	details, over := d.game.GetEndOfGameDetails()
	if !over {
		return nil
	}

	log, ok := details.Log.(*president.GameLog)
	if !ok {
		d.logger.WithField("type", "exception").Errorf("unexpected end of game log %T", details.Log)
		return nil
	}

	return log
}

func (d *Dealer) recordGame(log *president.GameLog) {
	if d.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	game := record.NewGame(d.ID, d.Code, log)
	if err := d.store.Save(ctx, game); err != nil {
		d.logger.WithError(err).Error("could not record the game")
		return
	}

	d.logger.WithField("record", game.ID).Info("game recorded")
}

func (d *Dealer) notify(s state) {
	select {
	case d.stateChanged <- s:
	default:
		d.logger.Warn("state channel is full")
	}
}

// AddClient adds a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.clientLock.Lock()
	d.clients[client] = true
	d.clientLock.Unlock()
	d.touch()

	d.notify(stateClientEvent)
	d.execInRunLoop <- func() {
		client.Send(d.stateFor(client.playerID))
		if logs := d.LogMessages(); len(logs) > 0 {
			client.Send(&playable.Response{
				Key:  "logs",
				Data: logs,
			})
		}
	}
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.clientLock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.clientLock.Unlock()
	d.touch()

	if nClients > 0 {
		d.notify(stateClientEvent)
		return false
	}

	return true
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	res, err := d.Apply(c.playerID, msg)
	if err != nil {
		d.logger.WithError(err).WithField("player", c.playerID).Debug("action rejected")
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	c.Send(res)
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameData() {
	for _, client := range d.Clients() {
		if !client.Send(d.stateFor(client.playerID)) {
			d.logger.WithField("player", client.playerID).Warn("client is not keeping up")
		}
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendClientState() {
	connected := make(map[string]bool)
	for _, client := range d.Clients() {
		connected[client.playerID] = true
	}

	seated := d.Snapshot().TurnOrder
	players := make([]*clientStatePlayer, 0, len(connected)+len(seated))
	for _, id := range seated {
		players = append(players, &clientStatePlayer{
			PlayerID:    id,
			IsConnected: connected[id],
			IsSeated:    true,
		})
		delete(connected, id)
	}

	for id := range connected {
		players = append(players, &clientStatePlayer{
			PlayerID:    id,
			IsConnected: true,
		})
	}

	d.broadcast(&playable.Response{
		Key:  "clientState",
		Data: players,
	})
}

func (d *Dealer) broadcast(msg *playable.Response) {
	for _, client := range d.Clients() {
		client.Send(msg)
	}
}
