package mux

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"president-server/pkg/deck"
	"president-server/pkg/playable"
	"president-server/pkg/playable/president"
	"president-server/pkg/room"
)

type postActionPayload struct {
	PlayerID string `json:"playerId"`
	Action   string `json:"action"`
	// Cards is either "3c,3d" or a list of cards
	Cards   json.RawMessage `json:"cards"`
	Version *uint64         `json:"version"`
	Context string          `json:"context"`
}

func (p postActionPayload) payloadIn() (*playable.PayloadIn, error) {
	cards, err := parseActionCards(p.Cards)
	if err != nil {
		return nil, err
	}

	return &playable.PayloadIn{
		Action:  p.Action,
		Cards:   cards,
		Version: p.Version,
		Context: p.Context,
	}, nil
}

func parseActionCards(raw json.RawMessage) ([]deck.Card, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}

		return deck.ParseCards(s)
	}

	var cards []deck.Card
	if err := json.Unmarshal(raw, &cards); err != nil {
		return nil, fmt.Errorf("%w: %s", deck.ErrInvalidCard, err.Error())
	}

	return cards, nil
}

func (m *Mux) postRoomIDAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postActionPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		if payload.PlayerID == "" {
			writeJSONError(w, http.StatusBadRequest, errors.New("playerId is required"))
			return
		}

		msg, err := payload.payloadIn()
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		dealer := dealerFromContext(r)
		if _, err := dealer.Apply(payload.PlayerID, msg); err != nil {
			writeJSONError(w, statusForError(err), err)
			return
		}

		res, err := dealer.PlayerState(payload.PlayerID)
		if err != nil {
			writeJSONError(w, statusForError(err), err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}

var badRequestErrors = []error{
	president.ErrInsufficientPlayers,
	president.ErrDuplicatePlayer,
	president.ErrInvalidRoundLimit,
	president.ErrInvalidPhase,
	president.ErrNotYourTurn,
	president.ErrEmptySelection,
	president.ErrTooManyCards,
	president.ErrDuplicateCard,
	president.ErrCardsNotOwned,
	president.ErrRankMismatch,
	president.ErrQuantityMismatch,
	president.ErrRankTooLow,
	president.ErrCannotPassOnEmptyTrick,
	president.ErrInsufficientHandSize,
	president.ErrUnknownAction,
	deck.ErrInvalidCard,
}

// statusForError maps errors from the game and the rooms to an HTTP status code
func statusForError(err error) int {
	switch {
	case errors.Is(err, president.ErrStaleState):
		return http.StatusConflict
	case errors.Is(err, president.ErrUnknownPlayer):
		return http.StatusNotFound
	case errors.Is(err, room.ErrNoRoomCode):
		return http.StatusServiceUnavailable
	}

	var countErr president.PlayerCountError
	if errors.As(err, &countErr) {
		return http.StatusBadRequest
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}
