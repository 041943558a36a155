package president

import (
	"sort"
	"time"

	"president-server/pkg/playable"
)

// RoundResult is the summary of a completed round
type RoundResult struct {
	Round    int             `json:"round"`
	Outcome  []string        `json:"outcome"`
	Exchange *ExchangeRecord `json:"exchange,omitempty"`
}

// Standing is a player's final position in the game
// Players with the same number of President finishes share a place
type Standing struct {
	PlayerID       string `json:"playerId"`
	Place          int    `json:"place"`
	PresidentCount int    `json:"presidentCount"`
	SlaveCount     int    `json:"slaveCount"`
}

// GameLog is the record of a complete game
type GameLog struct {
	TurnOrder []string       `json:"turnOrder"`
	Rounds    []*RoundResult `json:"rounds"`
	Standings []Standing     `json:"standings"`
	StartTime time.Time      `json:"startTime"`
	EndTime   time.Time      `json:"endTime"`
}

// AdvanceRound closes the completed round and either prepares the next deal or ends the game
func (g *Game) AdvanceRound() error {
	if g.phase != PhaseRoundComplete {
		return ErrInvalidPhase
	}

	outcome := g.round.outcome
	g.stats[outcome[0]].President++
	g.stats[outcome[len(outcome)-1]].Slave++

	g.roundNo++
	g.previousOutcome = append([]string{}, outcome...)
	g.round = nil
	g.pendingDealerAction = nil

	if g.roundNo >= g.options.RoundLimit {
		g.phase = PhaseGameComplete
		g.standings = g.computeStandings()
		g.endTime = g.now()
		g.mutated()

		g.sendLogMessages(playable.SimpleLogMessage(g.standings[0].PlayerID, "{} wins the game"))
		return nil
	}

	g.phase = PhaseDealing
	g.mutated()

	return nil
}

func (g *Game) computeStandings() []Standing {
	standings := make([]Standing, len(g.players))
	for i, p := range g.players {
		s := g.stats[p.ID]
		standings[i] = Standing{
			PlayerID:       p.ID,
			PresidentCount: s.President,
			SlaveCount:     s.Slave,
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].PresidentCount > standings[j].PresidentCount
	})

	for i := range standings {
		if i > 0 && standings[i].PresidentCount == standings[i-1].PresidentCount {
			standings[i].Place = standings[i-1].Place
		} else {
			standings[i].Place = i + 1
		}
	}

	return standings
}

// Standings returns the final standings. Only available once the game is complete
func (g *Game) Standings() []Standing {
	if g.phase != PhaseGameComplete {
		return nil
	}

	return append([]Standing{}, g.standings...)
}

// Reset starts a new game with the same players
func (g *Game) Reset() error {
	if g.phase != PhaseGameComplete {
		return ErrInvalidPhase
	}

	for id := range g.stats {
		g.stats[id] = &Stats{}
	}

	for _, p := range g.players {
		p.newRound()
	}

	g.roundNo = 0
	g.round = nil
	g.previousOutcome = nil
	g.exchange = nil
	g.standings = nil
	g.history = nil
	g.pendingDealerAction = nil
	g.startTime = g.now()
	g.endTime = time.Time{}
	g.phase = PhaseDealing
	g.mutated()

	g.sendLogMessages(playable.SimpleLogMessage("", "A new game begins"))

	return nil
}

// GameLog returns the rounds played so far
func (g *Game) GameLog() *GameLog {
	rounds := make([]*RoundResult, len(g.history))
	for i, r := range g.history {
		rounds[i] = &RoundResult{
			Round:   r.Round,
			Outcome: append([]string{}, r.Outcome...),
		}

		if r.Exchange != nil {
			rounds[i].Exchange = r.Exchange.clone()
		}
	}

	return &GameLog{
		TurnOrder: g.TurnOrder(),
		Rounds:    rounds,
		Standings: g.Standings(),
		StartTime: g.startTime,
		EndTime:   g.endTime,
	}
}
