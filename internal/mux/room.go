package mux

import (
	"net/http"
	"time"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"president-server/pkg/playable"
	"president-server/pkg/playable/president"
	"president-server/pkg/room"
)

type roomSummary struct {
	ID      string          `json:"id"`
	Code    string          `json:"code"`
	Phase   president.Phase `json:"phase"`
	Round   int             `json:"round"`
	Players []string        `json:"players"`
	Created time.Time       `json:"created"`
}

func newRoomSummary(d *room.Dealer) *roomSummary {
	s := d.Snapshot()
	return &roomSummary{
		ID:      d.ID,
		Code:    d.Code,
		Phase:   s.Phase,
		Round:   s.Round,
		Players: s.TurnOrder,
		Created: d.Created(),
	}
}

func (m *Mux) getRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := parsePage(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		dealers := m.pitBoss.Dealers()
		from, to := p.bounds(len(dealers))
		summaries := make([]*roomSummary, 0, to-from)
		for _, d := range dealers[from:to] {
			summaries = append(summaries, newRoomSummary(d))
		}

		writeJSON(w, http.StatusOK, summaries)
	}
}

type postRoomPayload struct {
	Participants []string `json:"participants"`
	RoundLimit   *int     `json:"roundLimit"`
}

type postRoomResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
}

func (m *Mux) postRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postRoomPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		additionalData := playable.AdditionalData{}
		if payload.RoundLimit != nil {
			additionalData["roundLimit"] = float64(*payload.RoundLimit)
		}

		dealer, err := m.pitBoss.CreateRoom(payload.Participants, additionalData)
		if err != nil {
			writeJSONError(w, statusForError(err), err)
			return
		}

		m.logger.WithFields(logrus.Fields{
			"uuid":   dealer.ID,
			"remote": remoteAddr(r),
		}).Debug("room requested")

		writeJSON(w, http.StatusCreated, postRoomResponse{
			ID:   dealer.ID,
			Code: dealer.Code,
		})
	}
}

func (m *Mux) getRoomID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := dealerFromContext(r)
		writeJSON(w, http.StatusOK, dealer.Snapshot().GameState)
	}
}

func (m *Mux) getRoomIDPlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := dealerFromContext(r)
		res, err := dealer.PlayerState(gmux.Vars(r)["playerId"])
		if err != nil {
			writeJSONError(w, statusForError(err), err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}
