package record

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"president-server/pkg/db"
)

// sqlStore is shared by the postgres and sqlite stores
// Both drivers accept $N placeholders
type sqlStore struct {
	db *sql.DB
}

const insertGame = `
INSERT INTO games (id, room_id, room_code, players, rounds, standings, started, ended)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const selectGame = `
SELECT id, room_id, room_code, players, rounds, standings, started, ended
FROM games`

// Save inserts the game
func (s *sqlStore) Save(ctx context.Context, game *Game) error {
	players, err := json.Marshal(game.Players)
	if err != nil {
		return err
	}

	rounds, err := json.Marshal(game.Rounds)
	if err != nil {
		return err
	}

	standings, err := json.Marshal(game.Standings)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, insertGame,
		game.ID,
		game.RoomID,
		game.RoomCode,
		string(players),
		string(rounds),
		string(standings),
		game.Started,
		game.Ended,
	)
	if err != nil {
		return fmt.Errorf("could not save game %s: %w", game.ID, err)
	}

	return nil
}

// Get returns the game by id
func (s *sqlStore) Get(ctx context.Context, id string) (*Game, error) {
	row := s.db.QueryRowContext(ctx, selectGame+` WHERE id = $1`, id)
	game, err := scanGame(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return game, nil
}

// List returns up to limit games, most recent first
func (s *sqlStore) List(ctx context.Context, limit int) ([]*Game, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx, selectGame+` ORDER BY ended DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]*Game, 0)
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, err
		}

		games = append(games, game)
	}

	return games, rows.Err()
}

// Close closes the database
func (s *sqlStore) Close() error {
	return s.db.Close()
}

func scanGame(row db.Scanner) (*Game, error) {
	var game Game
	var players, rounds, standings []byte
	if err := row.Scan(
		&game.ID,
		&game.RoomID,
		&game.RoomCode,
		&players,
		&rounds,
		&standings,
		&game.Started,
		&game.Ended,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(players, &game.Players); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(rounds, &game.Rounds); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(standings, &game.Standings); err != nil {
		return nil, err
	}

	game.Started = game.Started.UTC()
	game.Ended = game.Ended.UTC()

	return &game, nil
}
