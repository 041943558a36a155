package record

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"president-server/pkg/playable/president"
)

// ErrNotFound is returned when no game has the requested id
var ErrNotFound = errors.New("game record not found")

// Game is the permanent record of a finished game
type Game struct {
	ID        string                   `json:"id"`
	RoomID    string                   `json:"roomId"`
	RoomCode  string                   `json:"roomCode"`
	Players   []string                 `json:"players"`
	Rounds    []*president.RoundResult `json:"rounds"`
	Standings []president.Standing     `json:"standings"`
	Started   time.Time                `json:"started"`
	Ended     time.Time                `json:"ended"`
}

// NewGame builds a record from the log of a finished game
func NewGame(roomID, roomCode string, log *president.GameLog) *Game {
	return &Game{
		ID:        uuid.New().String(),
		RoomID:    roomID,
		RoomCode:  roomCode,
		Players:   log.TurnOrder,
		Rounds:    log.Rounds,
		Standings: log.Standings,
		Started:   log.StartTime.UTC(),
		Ended:     log.EndTime.UTC(),
	}
}

// Winners returns the players in first place
func (g *Game) Winners() []string {
	winners := make([]string, 0, 1)
	for _, s := range g.Standings {
		if s.Place == 1 {
			winners = append(winners, s.PlayerID)
		}
	}

	return winners
}

// Store keeps records of finished games
type Store interface {
	Save(ctx context.Context, game *Game) error
	Get(ctx context.Context, id string) (*Game, error)
	// List returns the most recently ended games first
	List(ctx context.Context, limit int) ([]*Game, error)
	Close() error
}
