package room

import (
	"president-server/pkg/playable"
)

type clientStatePlayer struct {
	PlayerID    string `json:"playerId"`
	IsConnected bool   `json:"isConnected"`
	IsSeated    bool   `json:"isSeated"`
}

func newErrorResponse(ctx string, err error) *playable.Response {
	return playable.ErrorResponse(ctx, err)
}
