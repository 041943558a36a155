package room

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"president-server/internal/rng"
	"president-server/pkg/playable"
	"president-server/pkg/playable/president"
	"president-server/pkg/record"
	"president-server/pkg/room/gamefactory"
	"president-server/pkg/token"
)

// ErrNoRoomCode is returned when no free room code could be found
var ErrNoRoomCode = errors.New("could not find a free room code")

// ErrRoomNotFound is returned when a room was closed or never existed
var ErrRoomNotFound = errors.New("room not found")

const roomCodeAttempts = 32

// DefaultIdleTimeout is how long a room without clients or actions stays open
const DefaultIdleTimeout = 30 * time.Minute

const reapInterval = time.Minute

// PitBoss is responsible for dispatching players to rooms
type PitBoss struct {
	logger  logrus.FieldLogger
	store   record.Store
	options president.Options
	codeGen rng.Generator

	// IdleTimeout closes rooms that had no clients or actions for this long, zero keeps them open
	// Must be set before StartShift
	IdleTimeout  time.Duration
	reapInterval time.Duration

	lock    sync.RWMutex
	dealers map[string]*Dealer
	codes   map[string]*Dealer

	connect    chan *Client
	disconnect chan *Client
}

// NewPitBoss returns a new dispatch object
// Games created by the PitBoss use opts unless the room asks otherwise
func NewPitBoss(logger logrus.FieldLogger, store record.Store, opts president.Options) *PitBoss {
	return &PitBoss{
		logger:       logger,
		store:        store,
		options:      opts,
		codeGen:      rng.Crypto{},
		IdleTimeout:  DefaultIdleTimeout,
		reapInterval: reapInterval,
		dealers:      make(map[string]*Dealer),
		codes:        make(map[string]*Dealer),
		connect:      make(chan *Client, 256),
		disconnect:   make(chan *Client, 256),
	}
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

func (p *PitBoss) runLoop() {
	reap := time.NewTicker(p.reapInterval)
	defer reap.Stop()

	for {
		select {
		case client := <-p.connect:
			p.logger.WithField("player", client.String()).Debug("client connected")
			dealer, found := p.Dealer(client.roomID())
			if !found {
				p.logger.WithField("uuid", client.roomID()).WithField("type", "exception").Error("room not found")
				go closeClient(client, ErrRoomNotFound.Error())
				continue
			}

			dealer.AddClient(client)
		case client := <-p.disconnect:
			p.logger.WithField("player", client.String()).Debug("client disconnected")
			dealer, found := p.Dealer(client.roomID())
			if !found {
				continue
			}

			if dealer.RemoveClient(client) && dealer.Phase() == president.PhaseGameComplete {
				p.logger.WithField("uuid", dealer.ID).Info("last client left a finished game")
				p.CloseRoom(dealer.ID)
			}
		case now := <-reap.C:
			p.closeIdleRooms(now)
		}
	}
}

// closeIdleRooms closes every room that nobody used for IdleTimeout
// NOTE: must only be called from the run loop, so no client can join while a room is checked
func (p *PitBoss) closeIdleRooms(now time.Time) {
	if p.IdleTimeout <= 0 {
		return
	}

	for _, dealer := range p.Dealers() {
		if dealer.idle(now, p.IdleTimeout) {
			p.logger.WithField("uuid", dealer.ID).Info("closing idle room")
			p.CloseRoom(dealer.ID)
		}
	}
}

// closeClient asks the client's writer to hang up, unless it already stopped
func closeClient(client *Client, reason string) {
	select {
	case client.Close <- reason:
	case <-time.After(time.Second):
	}
}

// CreateRoom deals a new game between the participants and opens a room for it
func (p *PitBoss) CreateRoom(participants []string, additionalData playable.AdditionalData) (*Dealer, error) {
	factory, err := gamefactory.Get("president")
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	game, err := factory.CreateGame(p.logger.WithField("uuid", id), participants, p.options, additionalData)
	if err != nil {
		return nil, err
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	code := ""
	for i := 0; i < roomCodeAttempts; i++ {
		candidate := token.RoomCode(p.codeGen)
		if _, taken := p.codes[candidate]; !taken {
			code = candidate
			break
		}
	}

	if code == "" {
		return nil, ErrNoRoomCode
	}

	dealer := NewDealer(p, id, code, game, p.store, p.logger)
	dealer.StartShift()

	p.dealers[id] = dealer
	p.codes[code] = dealer

	p.logger.WithFields(logrus.Fields{
		"uuid":    id,
		"code":    code,
		"players": len(participants),
	}).Info("room created")

	return dealer, nil
}

// Dealer returns the dealer of the room
func (p *PitBoss) Dealer(id string) (*Dealer, bool) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	d, ok := p.dealers[id]
	return d, ok
}

// DealerByCode returns the dealer of the room with the code, ignoring case
func (p *PitBoss) DealerByCode(code string) (*Dealer, bool) {
	code, valid := token.NormalizeRoomCode(code)
	if !valid {
		return nil, false
	}

	p.lock.RLock()
	defer p.lock.RUnlock()

	d, ok := p.codes[code]
	return d, ok
}

// Lookup finds a room by id or by code
func (p *PitBoss) Lookup(idOrCode string) (*Dealer, bool) {
	if d, ok := p.Dealer(idOrCode); ok {
		return d, true
	}

	return p.DealerByCode(idOrCode)
}

// Dealers returns every open room, oldest first
func (p *PitBoss) Dealers() []*Dealer {
	p.lock.RLock()
	dealers := make([]*Dealer, 0, len(p.dealers))
	for _, d := range p.dealers {
		dealers = append(dealers, d)
	}
	p.lock.RUnlock()

	sort.Slice(dealers, func(i, j int) bool {
		return dealers[i].created.Before(dealers[j].created)
	})

	return dealers
}

// CloseRoom stops the room's dealer and forgets the room
func (p *PitBoss) CloseRoom(id string) bool {
	p.lock.Lock()
	d, ok := p.dealers[id]
	if ok {
		delete(p.dealers, id)
		delete(p.codes, d.Code)
	}
	p.lock.Unlock()

	if ok {
		d.EndShift()
	}

	return ok
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) {
	p.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}
