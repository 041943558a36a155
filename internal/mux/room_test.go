package mux

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"president-server/pkg/deck"
	"president-server/pkg/playable/president"
)

type playerStateResponse struct {
	Key   string             `json:"key"`
	Value string             `json:"value"`
	Data  president.Response `json:"data"`
}

func createRoom(t *testing.T, ts *httptest.Server, participants ...string) postRoomResponse {
	t.Helper()

	var created postRoomResponse
	assertPost(t, ts, "/room", postRoomPayload{Participants: participants}, &created, http.StatusCreated)
	require.NotEmpty(t, created.ID)
	require.Len(t, created.Code, 4)

	return created
}

func Test_postRoom(t *testing.T) {
	m, _ := newTestMux("")
	ts := httptest.NewServer(m)
	defer ts.Close()

	limit := 3
	var created postRoomResponse
	assertPost(t, ts, "/room", postRoomPayload{Participants: []string{"bob", "alice"}, RoundLimit: &limit}, &created, http.StatusCreated)

	var state president.GameState
	assertGet(t, ts, "/room/"+created.ID, &state, http.StatusOK)
	assert.Equal(t, []string{"alice", "bob"}, state.TurnOrder)
	assert.Equal(t, president.PhaseExchanging, state.Phase)
	assert.Equal(t, 3, state.RoundLimit)
	assert.Nil(t, state.Trick)
	for _, p := range state.Players {
		assert.Equal(t, 26, p.CardsInHand)
	}

	tests := []struct {
		name    string
		payload interface{}
		status  int
		message string
	}{
		{"one player", postRoomPayload{Participants: []string{"a"}}, http.StatusBadRequest, president.ErrInsufficientPlayers.Error()},
		{"duplicates", postRoomPayload{Participants: []string{"a", "a"}}, http.StatusBadRequest, president.ErrDuplicatePlayer.Error()},
		{"too many", postRoomPayload{Participants: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}}, http.StatusBadRequest, "expected 2–8 players, got 9"},
		{"bad limit", `{"participants":["a","b"],"roundLimit":0}`, http.StatusBadRequest, president.ErrInvalidRoundLimit.Error()},
		{"bad json", `{"participants":`, http.StatusBadRequest, "unexpected EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errObj errorResponse
			assertPost(t, ts, "/room", tt.payload, &errObj, tt.status)
			assert.Equal(t, tt.message, errObj.Message)
			assert.Equal(t, tt.status, errObj.StatusCode)
		})
	}
}

func Test_postRoom_contentType(t *testing.T) {
	m, _ := newTestMux("")
	ts := httptest.NewServer(m)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/room", "text/plain", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}

func Test_getRoom(t *testing.T) {
	m, _ := newTestMux("")
	ts := httptest.NewServer(m)
	defer ts.Close()

	r1 := createRoom(t, ts, "a", "b")
	r2 := createRoom(t, ts, "c", "d", "e")

	var rooms []*roomSummary
	assertGet(t, ts, "/room", &rooms, http.StatusOK)
	require.Len(t, rooms, 2)
	assert.Equal(t, r1.ID, rooms[0].ID)
	assert.Equal(t, r2.ID, rooms[1].ID)
	assert.Equal(t, []string{"c", "d", "e"}, rooms[1].Players)
	assert.Equal(t, president.PhaseExchanging, rooms[1].Phase)

	assertGet(t, ts, "/room?start=1&rows=1", &rooms, http.StatusOK)
	require.Len(t, rooms, 1)
	assert.Equal(t, r2.Code, rooms[0].Code)

	var errObj errorResponse
	assertGet(t, ts, "/room?start=-1", &errObj, http.StatusBadRequest)
	assert.Equal(t, "start cannot be less than zero", errObj.Message)
}

func Test_getRoomID(t *testing.T) {
	m, _ := newTestMux("")
	ts := httptest.NewServer(m)
	defer ts.Close()

	created := createRoom(t, ts, "a", "b")

	var byID, byCode president.GameState
	assertGet(t, ts, "/room/"+created.ID, &byID, http.StatusOK)
	assertGet(t, ts, "/room/"+created.Code, &byCode, http.StatusOK)
	assert.Equal(t, byID, byCode)

	var errObj errorResponse
	assertGet(t, ts, "/room/not-a-room", &errObj, http.StatusNotFound)
	assert.Equal(t, "Not Found", errObj.Message)
}

func Test_getRoomIDPlayer(t *testing.T) {
	m, _ := newTestMux("")
	ts := httptest.NewServer(m)
	defer ts.Close()

	created := createRoom(t, ts, "a", "b")

	var state playerStateResponse
	assertGet(t, ts, "/room/"+created.ID+"/player/a", &state, http.StatusOK)
	assert.Equal(t, "game", state.Key)
	assert.Len(t, state.Data.Hand, 26)
	assert.Equal(t, 26, state.Data.GameState.Players[0].CardsInHand)

	var errObj errorResponse
	assertGet(t, ts, "/room/"+created.ID+"/player/zed", &errObj, http.StatusNotFound)
	assert.Equal(t, president.ErrUnknownPlayer.Error(), errObj.Message)
}

func Test_postRoomIDAction(t *testing.T) {
	m, _ := newTestMux("")
	ts := httptest.NewServer(m)
	defer ts.Close()

	created := createRoom(t, ts, "a", "b")
	path := "/room/" + created.ID + "/action"

	var state president.GameState
	assertGet(t, ts, "/room/"+created.Code, &state, http.StatusOK)
	version := state.Version

	var res playerStateResponse
	assertPost(t, ts, path, map[string]interface{}{"playerId": "a", "action": "exchange", "version": version}, &res, http.StatusOK)
	assert.Equal(t, president.PhasePlaying, res.Data.GameState.Phase)
	assert.Greater(t, res.Data.GameState.Version, version)

	var errObj errorResponse
	assertPost(t, ts, path, map[string]interface{}{"playerId": "a", "action": "pass", "version": version}, &errObj, http.StatusConflict)
	assert.Equal(t, president.ErrStaleState.Error(), errObj.Message)

	current := res.Data.GameState.CurrentTurn
	require.NotEmpty(t, current)
	other := "a"
	if current == "a" {
		other = "b"
	}

	var leader playerStateResponse
	assertGet(t, ts, "/room/"+created.ID+"/player/"+current, &leader, http.StatusOK)
	lowest := leader.Data.Hand[0]

	tests := []struct {
		name    string
		payload interface{}
		status  int
		message string
	}{
		{"unknown player", map[string]interface{}{"playerId": "zed", "action": "pass"}, http.StatusNotFound, president.ErrUnknownPlayer.Error()},
		{"missing player", map[string]interface{}{"action": "pass"}, http.StatusBadRequest, "playerId is required"},
		{"not your turn", map[string]interface{}{"playerId": other, "action": "play", "cards": "3c"}, http.StatusBadRequest, president.ErrNotYourTurn.Error()},
		{"pass on empty trick", map[string]interface{}{"playerId": current, "action": "pass"}, http.StatusBadRequest, president.ErrCannotPassOnEmptyTrick.Error()},
		{"bad card", map[string]interface{}{"playerId": current, "action": "play", "cards": "zz"}, http.StatusBadRequest, `invalid card: "zz"`},
		{"no cards", map[string]interface{}{"playerId": current, "action": "play"}, http.StatusBadRequest, president.ErrEmptySelection.Error()},
		{"unknown action", map[string]interface{}{"playerId": current, "action": "fold"}, http.StatusBadRequest, "unknown action: fold"},
		{"wrong phase", map[string]interface{}{"playerId": current, "action": "deal"}, http.StatusBadRequest, president.ErrInvalidPhase.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errObj errorResponse
			assertPost(t, ts, path, tt.payload, &errObj, tt.status)
			assert.Equal(t, tt.message, errObj.Message)
		})
	}

	assertPost(t, ts, path, map[string]interface{}{"playerId": current, "action": "play", "cards": deck.CardToString(lowest)}, &res, http.StatusOK)
	assert.Len(t, res.Data.Hand, 25)
	require.NotNil(t, res.Data.GameState.Trick)
	assert.Equal(t, []deck.Card{lowest}, res.Data.GameState.Trick.Cards)
	assert.Equal(t, other, res.Data.GameState.CurrentTurn)

	// cards may also be sent as a list
	var follower playerStateResponse
	assertGet(t, ts, "/room/"+created.ID+"/player/"+other, &follower, http.StatusOK)
	highest := follower.Data.Hand[len(follower.Data.Hand)-1]
	payload := map[string]interface{}{"playerId": other, "action": "play", "cards": []deck.Card{highest}}
	assertPost(t, ts, path, payload, &res, http.StatusOK)
	assert.Len(t, res.Data.Hand, 25)
}

func Test_parseActionCards(t *testing.T) {
	tests := []struct {
		raw     string
		want    []deck.Card
		wantErr bool
	}{
		{``, nil, false},
		{`null`, nil, false},
		{`""`, []deck.Card{}, false},
		{`"3c,3d"`, deck.CardsFromString("3c,3d"), false},
		{`["3c", {"rank": 14, "suit": "spades"}]`, deck.CardsFromString("3c,14s"), false},
		{`"3x"`, nil, true},
		{`[{"rank": 1, "suit": "spades"}]`, nil, true},
		{`42`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			cards, err := parseActionCards([]byte(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, cards)
		})
	}
}

func Test_statusForError(t *testing.T) {
	assert.Equal(t, http.StatusConflict, statusForError(president.ErrStaleState))
	assert.Equal(t, http.StatusNotFound, statusForError(president.ErrUnknownPlayer))
	assert.Equal(t, http.StatusBadRequest, statusForError(president.ErrRankTooLow))
	assert.Equal(t, http.StatusBadRequest, statusForError(president.PlayerCountError(9)))
	assert.Equal(t, http.StatusInternalServerError, statusForError(http.ErrHandlerTimeout))
}
