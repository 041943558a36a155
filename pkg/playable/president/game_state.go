package president

import (
	"president-server/pkg/deck"
	"president-server/pkg/playable"
)

// GameState is the overall game state
// This is safe for all players to see
type GameState struct {
	Version         uint64             `json:"version"`
	Phase           Phase              `json:"phase"`
	Round           int                `json:"round"`
	RoundLimit      int                `json:"roundLimit"`
	TurnOrder       []string           `json:"turnOrder"`
	Players         []*GameStatePlayer `json:"players"`
	CurrentTurn     string             `json:"currentTurn,omitempty"`
	Trick           *Trick             `json:"trick,omitempty"`
	Outcome         []string           `json:"outcome,omitempty"`
	PreviousOutcome []string           `json:"previousOutcome,omitempty"`
	Exchange        *ExchangeSummary   `json:"exchange,omitempty"`
	Standings       []Standing         `json:"standings,omitempty"`
}

// GameStatePlayer is the state of an individual player
// This is safe for all players to see
type GameStatePlayer struct {
	PlayerID    string `json:"playerId"`
	Seat        int    `json:"seat"`
	CardsInHand int    `json:"cardsInHand"`
	Finished    bool   `json:"finished"`
	Stats       Stats  `json:"stats"`
}

// ExchangeSummary names the parties of the last exchange without revealing the cards
type ExchangeSummary struct {
	PresidentID string `json:"presidentId"`
	SlaveID     string `json:"slaveId"`
}

// Response is the response format for this game
type Response struct {
	GameState *GameState `json:"gameState"`
	// Data below is player specific, and must only be shown to the intended player
	Hand     []deck.Card     `json:"hand"`
	Exchange *ExchangeRecord `json:"exchange,omitempty"`
}

// Snapshot is a read-only copy of the game taken at a single version
// Nothing in a snapshot is shared with the game it came from
type Snapshot struct {
	*GameState

	hands    map[string][]deck.Card
	exchange *ExchangeRecord
}

// Snapshot returns a deep copy of the game
func (g *Game) Snapshot() *Snapshot {
	state := &GameState{
		Version:         g.version,
		Phase:           g.phase,
		Round:           g.roundNo,
		RoundLimit:      g.options.RoundLimit,
		TurnOrder:       g.TurnOrder(),
		Players:         make([]*GameStatePlayer, len(g.players)),
		Outcome:         g.Outcome(),
		PreviousOutcome: g.PreviousOutcome(),
		Standings:       g.Standings(),
	}

	hands := make(map[string][]deck.Card, len(g.players))
	for i, p := range g.players {
		hands[p.ID] = p.Hand()
		state.Players[i] = &GameStatePlayer{
			PlayerID:    p.ID,
			Seat:        p.Seat,
			CardsInHand: len(p.hand),
			Finished:    p.finished,
			Stats:       g.Stats(p.ID),
		}
	}

	if id, ok := g.CurrentTurn(); ok {
		state.CurrentTurn = id
	}

	if g.phase == PhasePlaying {
		trick := g.Trick()
		state.Trick = &trick
	}

	exchange := g.ExchangeRecord()
	if exchange != nil {
		state.Exchange = &ExchangeSummary{
			PresidentID: exchange.PresidentID,
			SlaveID:     exchange.SlaveID,
		}
	}

	return &Snapshot{
		GameState: state,
		hands:     hands,
		exchange:  exchange,
	}
}

// Hand returns the player's hand at the time of the snapshot
func (s *Snapshot) Hand(playerID string) ([]deck.Card, bool) {
	hand, ok := s.hands[playerID]
	if !ok {
		return nil, false
	}

	return append([]deck.Card{}, hand...), true
}

// ExchangeRecord returns the full record of the last exchange
func (s *Snapshot) ExchangeRecord() *ExchangeRecord {
	if s.exchange == nil {
		return nil
	}

	return s.exchange.clone()
}

// Labels maps each player of the most recent outcome to their rank label
func (s *Snapshot) Labels() map[string]string {
	outcome := s.Outcome
	if len(outcome) != len(s.TurnOrder) {
		outcome = s.PreviousOutcome
	}

	if len(outcome) == 0 {
		return map[string]string{}
	}

	labels := RankLabels(len(outcome))
	m := make(map[string]string, len(outcome))
	for i, id := range outcome {
		m[id] = labels[i]
	}

	return m
}

// ForPlayer returns what the player is allowed to see
func (s *Snapshot) ForPlayer(playerID string) (*Response, error) {
	hand, ok := s.Hand(playerID)
	if !ok {
		return nil, ErrUnknownPlayer
	}

	res := &Response{
		GameState: s.GameState,
		Hand:      hand,
	}

	if s.exchange != nil && (s.exchange.PresidentID == playerID || s.exchange.SlaveID == playerID) {
		res.Exchange = s.exchange.clone()
	}

	return res, nil
}

// GetPlayerState returns the state for the given player
func (g *Game) GetPlayerState(playerID string) (*playable.Response, error) {
	res, err := g.Snapshot().ForPlayer(playerID)
	if err != nil {
		return nil, err
	}

	return &playable.Response{
		Key:   "game",
		Value: "president",
		Data:  res,
	}, nil
}
