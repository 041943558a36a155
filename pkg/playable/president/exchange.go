package president

import (
	"president-server/pkg/deck"
	"president-server/pkg/playable"
)

// exchangeSize is how many cards the President and the Slave trade
const exchangeSize = 2

// ExchangeRecord is what was traded between the President and the Slave before play
type ExchangeRecord struct {
	PresidentID string      `json:"presidentId"`
	SlaveID     string      `json:"slaveId"`
	ToPresident []deck.Card `json:"toPresident"`
	ToSlave     []deck.Card `json:"toSlave"`
}

func (e *ExchangeRecord) clone() *ExchangeRecord {
	return &ExchangeRecord{
		PresidentID: e.PresidentID,
		SlaveID:     e.SlaveID,
		ToPresident: append([]deck.Card{}, e.ToPresident...),
		ToSlave:     append([]deck.Card{}, e.ToSlave...),
	}
}

// Exchange makes the previous Slave hand over their two best cards for the President's two worst
// The first round of a game has no ranks yet, so nothing is traded
func (g *Game) Exchange() error {
	if g.phase != PhaseExchanging {
		return ErrInvalidPhase
	}

	if len(g.previousOutcome) < 2 {
		g.phase = PhasePlaying
		g.mutated()
		return nil
	}

	president := g.idToPlayer[g.previousOutcome[0]]
	slave := g.idToPlayer[g.previousOutcome[len(g.previousOutcome)-1]]

	if len(president.hand) < exchangeSize || len(slave.hand) < exchangeSize {
		return ErrInsufficientHandSize
	}

	toPresident := highest(slave.hand, exchangeSize)
	toSlave := lowest(president.hand, exchangeSize)

	slave.removeCards(toPresident)
	president.removeCards(toSlave)
	president.addCards(toPresident)
	slave.addCards(toSlave)

	g.exchange = &ExchangeRecord{
		PresidentID: president.ID,
		SlaveID:     slave.ID,
		ToPresident: toPresident,
		ToSlave:     toSlave,
	}

	g.phase = PhasePlaying
	g.mutated()

	g.sendLogMessages(
		playable.NewLogMessage([]string{slave.ID, president.ID}, nil, "{} gave their two best cards to {}"),
		playable.NewLogMessage([]string{president.ID, slave.ID}, nil, "{} gave their two worst cards to {}"),
	)

	return nil
}
