package gamefactory

import (
	"github.com/sirupsen/logrus"
	"president-server/pkg/playable"
	"president-server/pkg/playable/president"
)

type presidentFactory struct{}

func (f presidentFactory) CreateGame(logger logrus.FieldLogger, playerIDs []string, opts president.Options, additionalData playable.AdditionalData) (*president.Game, error) {
	_, roundLimit, err := f.Details(opts, additionalData)
	if err != nil {
		return nil, err
	}

	opts.RoundLimit = roundLimit
	game, err := president.NewGame(logger, playerIDs, opts)
	if err != nil {
		return nil, err
	}

	if err := game.Deal(); err != nil {
		return nil, err
	}

	return game, nil
}

func (f presidentFactory) Details(opts president.Options, additionalData playable.AdditionalData) (string, int, error) {
	roundLimit := opts.RoundLimit
	if val, ok := additionalData.GetInt("roundLimit"); ok {
		roundLimit = val
	}

	if roundLimit < 1 {
		return "", 0, president.ErrInvalidRoundLimit
	}

	return "President", roundLimit, nil
}
