package gamefactory

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"president-server/pkg/playable"
	"president-server/pkg/playable/president"
)

var factories = map[string]GameFactory{
	"president": presidentFactory{},
}

// GameFactory is a factory for creating games
type GameFactory interface {
	// CreateGame returns a game that is already dealt
	CreateGame(logger logrus.FieldLogger, playerIDs []string, opts president.Options, additionalData playable.AdditionalData) (*president.Game, error)
	// Details validates the additional data and reports what kind of game would be created
	Details(opts president.Options, additionalData playable.AdditionalData) (name string, roundLimit int, err error)
}

// Get returns a factory by the given name
func Get(name string) (GameFactory, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("no factory with name: %s", name)
	}

	return factory, nil
}
