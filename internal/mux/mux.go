package mux

import (
	"context"
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"president-server/pkg/record"
	"president-server/pkg/room"
)

type ctxKey int

const (
	ctxDealerKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss
	store   record.Store
	logger  logrus.FieldLogger
}

// NewMux returns a new HTTP mux
func NewMux(version string, pitBoss *room.PitBoss, store record.Store, logger logrus.FieldLogger) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
		store:   store,
		logger:  logger,
	}

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodGet).Path("/room").Handler(this.getRoom())
		r.Methods(http.MethodPost).Path("/room").Handler(this.postRoom())
		r.Methods(http.MethodGet).Path("/record").Handler(this.getRecord())
		r.Methods(http.MethodGet).Path("/record/{id}").Handler(this.getRecordID())
	}

	// {room} is either the room uuid or its four letter code
	{
		rr := this.Router.PathPrefix("/room/{room}").Subrouter()
		rr.Use(this.roomMiddleware)

		rr.Methods(http.MethodGet).Path("").Handler(this.getRoomID())
		rr.Methods(http.MethodGet).Path("/player/{playerId}").Handler(this.getRoomIDPlayer())
		rr.Methods(http.MethodPost).Path("/action").Handler(this.postRoomIDAction())
		rr.Methods(http.MethodGet).Path("/ws").Handler(this.getRoomIDWS())
	}

	return this
}

func (m *Mux) roomMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dealer, ok := m.pitBoss.Lookup(gmux.Vars(r)["room"])
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxDealerKey, dealer)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func dealerFromContext(r *http.Request) *room.Dealer {
	return r.Context().Value(ctxDealerKey).(*room.Dealer)
}
