package util

import (
	"github.com/google/uuid"
)

// RandomWatcherID generates an id for a connection that did not name a player
func RandomWatcherID() string {
	return "watcher-" + uuid.New().String()[:8]
}
