package simulate

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"president-server/internal/rng"
	"president-server/pkg/playable"
	"president-server/pkg/playable/president"
)

// maxStepsPerRound is far more than any round needs, hitting it means the bots are stuck
const maxStepsPerRound = 5000

// ErrStalled is returned when a round does not finish
var ErrStalled = errors.New("simulation stalled")

// Config describes a simulated game
type Config struct {
	Players   []string
	Rounds    int
	Generator rng.Generator
}

// Hooks are called as the game progresses, any of them may be nil
type Hooks struct {
	RoundComplete func(result *president.RoundResult, snapshot *president.Snapshot)
	Log           func(msg *playable.LogMessage)
}

// Run plays a whole game with every player taking the weakest legal move
func Run(logger logrus.FieldLogger, cfg Config, hooks Hooks) (*president.GameLog, error) {
	opts := president.DefaultOptions()
	opts.RoundLimit = cfg.Rounds
	opts.DealerDelay = 0
	if cfg.Generator != nil {
		opts.Generator = cfg.Generator
	}

	game, err := president.NewGame(logger, cfg.Players, opts)
	if err != nil {
		return nil, err
	}

	steps := 0
	for game.Phase() != president.PhaseGameComplete {
		if err := step(game); err != nil {
			return nil, fmt.Errorf("round %d: %w", game.Round()+1, err)
		}

		drainLogs(game, hooks.Log)

		if game.Phase() == president.PhaseRoundComplete {
			steps = 0
			if hooks.RoundComplete != nil {
				rounds := game.GameLog().Rounds
				hooks.RoundComplete(rounds[len(rounds)-1], game.Snapshot())
			}

			if err := game.AdvanceRound(); err != nil {
				return nil, err
			}

			drainLogs(game, hooks.Log)
			continue
		}

		steps++
		if steps > maxStepsPerRound {
			return nil, fmt.Errorf("round %d: %w", game.Round()+1, ErrStalled)
		}
	}

	return game.GameLog(), nil
}

func step(game *president.Game) error {
	switch game.Phase() {
	case president.PhaseDealing:
		return game.Deal()
	case president.PhaseExchanging:
		return game.Exchange()
	case president.PhasePlaying:
		playerID, ok := game.CurrentTurn()
		if !ok {
			return ErrStalled
		}

		hand, err := game.Hand(playerID)
		if err != nil {
			return err
		}

		if cards := president.Hint(hand, game.Trick()); cards != nil {
			return game.Play(playerID, cards)
		}

		return game.Pass(playerID)
	}

	return fmt.Errorf("%w: %s", president.ErrInvalidPhase, game.Phase())
}

func drainLogs(game *president.Game, fn func(msg *playable.LogMessage)) {
	for {
		select {
		case msgs := <-game.LogChan():
			if fn == nil {
				continue
			}

			for _, msg := range msgs {
				fn(msg)
			}
		default:
			return
		}
	}
}
