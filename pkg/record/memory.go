package record

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
)

// MemoryStore keeps records for the lifetime of the process
type MemoryStore struct {
	lock  sync.RWMutex
	games map[string][]byte
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: make(map[string][]byte),
	}
}

// Save stores a copy of the game
func (m *MemoryStore) Save(ctx context.Context, game *Game) error {
	b, err := json.Marshal(game)
	if err != nil {
		return err
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	m.games[game.ID] = b

	return nil
}

// Get returns a copy of the game
func (m *MemoryStore) Get(ctx context.Context, id string) (*Game, error) {
	m.lock.RLock()
	b, ok := m.games[id]
	m.lock.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}

	var game Game
	if err := json.Unmarshal(b, &game); err != nil {
		return nil, err
	}

	return &game, nil
}

// List returns up to limit games, most recent first
func (m *MemoryStore) List(ctx context.Context, limit int) ([]*Game, error) {
	m.lock.RLock()
	ids := make([]string, 0, len(m.games))
	for id := range m.games {
		ids = append(ids, id)
	}
	m.lock.RUnlock()

	games := make([]*Game, 0, len(ids))
	for _, id := range ids {
		game, err := m.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		games = append(games, game)
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].Ended.After(games[j].Ended)
	})

	if limit > 0 && len(games) > limit {
		games = games[:limit]
	}

	return games, nil
}

// Close is a no-op
func (m *MemoryStore) Close() error {
	return nil
}
