package mux

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"president-server/pkg/playable/president"
	"president-server/pkg/record"
)

func Test_getRecord(t *testing.T) {
	m, store := newTestMux("")
	ts := httptest.NewServer(m)
	defer ts.Close()

	ended := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	for i, id := range []string{"first", "second", "third"} {
		require.NoError(t, store.Save(context.Background(), &record.Game{
			ID:        id,
			RoomID:    "room-" + id,
			RoomCode:  "ABCD",
			Players:   []string{"a", "b"},
			Standings: []president.Standing{{PlayerID: "a", Place: 1}, {PlayerID: "b", Place: 2}},
			Started:   ended.Add(-time.Hour),
			Ended:     ended.Add(time.Duration(i) * time.Minute),
		}))
	}

	var games []*record.Game
	assertGet(t, ts, "/record", &games, http.StatusOK)
	require.Len(t, games, 3)
	assert.Equal(t, "third", games[0].ID)
	assert.Equal(t, "first", games[2].ID)

	assertGet(t, ts, "/record?start=1&rows=1", &games, http.StatusOK)
	require.Len(t, games, 1)
	assert.Equal(t, "second", games[0].ID)

	assertGet(t, ts, "/record?start=5", &games, http.StatusOK)
	assert.Empty(t, games)

	var game record.Game
	assertGet(t, ts, "/record/second", &game, http.StatusOK)
	assert.Equal(t, "room-second", game.RoomID)
	assert.Equal(t, []string{"a"}, game.Winners())

	var errObj errorResponse
	assertGet(t, ts, "/record/missing", &errObj, http.StatusNotFound)
	assert.Equal(t, "Not Found", errObj.Message)
}
