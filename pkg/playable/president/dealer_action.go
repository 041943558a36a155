package president

import (
	"time"

	"github.com/sirupsen/logrus"
)

// dealerAction is an action that "dealer" would take, such as progressing the game to the next round
type dealerAction int

const (
	dealerActionAdvanceRound dealerAction = iota
	dealerActionDeal
	dealerActionExchange
)

type pendingDealerAction struct {
	Action       dealerAction
	Phase        Phase
	ExecuteAfter time.Time
}

// Interval determines how often Tick() should be called
func (g *Game) Interval() time.Duration {
	return 250 * time.Millisecond
}

// Tick will check the state of the game and possibly move the state along
// Players are never acted for, only the transitions between rounds
func (g *Game) Tick() (bool, error) {
	if g.options.DealerDelay <= 0 {
		return false, nil
	}

	if pending := g.pendingDealerAction; pending != nil {
		// somebody already moved the game along by hand
		if pending.Phase != g.phase {
			g.pendingDealerAction = nil
			return false, nil
		}

		if g.now().Before(pending.ExecuteAfter) {
			return false, nil
		}

		g.pendingDealerAction = nil

		var err error
		switch pending.Action {
		case dealerActionAdvanceRound:
			err = g.AdvanceRound()
		case dealerActionDeal:
			err = g.Deal()
		case dealerActionExchange:
			err = g.Exchange()
		}

		if err != nil {
			g.logger.WithError(err).WithFields(logrus.Fields{
				"action": pending.Action,
				"phase":  pending.Phase,
			}).Error("dealer could not move the game along")
			return false, err
		}

		return true, nil
	}

	var action dealerAction
	switch {
	case g.phase == PhaseRoundComplete:
		action = dealerActionAdvanceRound
	case g.phase == PhaseDealing && g.roundNo > 0:
		action = dealerActionDeal
	case g.phase == PhaseExchanging:
		action = dealerActionExchange
	default:
		return false, nil
	}

	g.pendingDealerAction = &pendingDealerAction{
		Action:       action,
		Phase:        g.phase,
		ExecuteAfter: g.now().Add(g.options.DealerDelay),
	}

	return false, nil
}
