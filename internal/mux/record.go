package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
	"president-server/pkg/record"
)

func (m *Mux) getRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := parsePage(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		games, err := m.store.List(r.Context(), p.end())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		from, to := p.bounds(len(games))
		writeJSON(w, http.StatusOK, append([]*record.Game{}, games[from:to]...))
	}
}

func (m *Mux) getRecordID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game, err := m.store.Get(r.Context(), gmux.Vars(r)["id"])
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, game)
	}
}
