package mux

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"president-server/internal/util"
	"president-server/pkg/playable"
	"president-server/pkg/room"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// closeFrameWait is how long a closing session waits for the client's close frame
const closeFrameWait = time.Second

// wsSession pumps messages between one websocket connection and its room
type wsSession struct {
	client *room.Client
	logger logrus.FieldLogger

	// closed when the read side has stopped
	readDone chan bool
}

func (m *Mux) getRoomIDWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		dealer := dealerFromContext(r)
		playerID := r.FormValue("playerId")
		if playerID == "" {
			playerID = util.RandomWatcherID()
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			m.logger.WithError(err).Error("could not upgrade connection")
			return
		}

		s := &wsSession{
			client:   room.NewClient(conn, dealer, playerID),
			logger:   m.logger.WithFields(logrus.Fields{"uuid": dealer.ID, "player": playerID}),
			readDone: make(chan bool),
		}

		m.pitBoss.ClientConnected(s.client)
		defer m.pitBoss.ClientDisconnected(s.client)

		go s.writeLoop()
		s.readLoop()
	}
}

func (s *wsSession) conn() *websocket.Conn {
	return s.client.Conn
}

func (s *wsSession) write(messageType int, data []byte) error {
	_ = s.conn().SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn().WriteMessage(messageType, data)
}

func (s *wsSession) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = s.conn().Close()
	}()

	for {
		select {
		case <-ticker.C:
			if err := s.write(websocket.PingMessage, nil); err != nil {
				return
			}
		case reason := <-s.client.Close:
			_ = s.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason))

			select {
			case <-s.readDone:
			case <-time.After(closeFrameWait):
			}
			return
		case <-s.readDone:
			return
		case msg, ok := <-s.client.SendChan():
			if !ok {
				return
			}

			b, err := json.Marshal(msg)
			if err != nil {
				s.logger.WithError(err).Error("could not encode message")
				continue
			}

			s.logger.WithField("message", string(b)).Trace("sending message to client")
			if err := s.write(websocket.TextMessage, b); err != nil {
				s.logger.WithError(err).Error("could not write message")
				return
			}
		}
	}
}

func (s *wsSession) readLoop() {
	defer close(s.readDone)

	_ = s.conn().SetReadDeadline(time.Now().Add(pongWait))
	s.conn().SetPongHandler(func(string) error {
		return s.conn().SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg playable.PayloadIn
		if err := s.conn().ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.WithError(err).Error("could not read message")
			}

			s.client.CloseError = err
			return
		}

		s.client.ReceivedMessage(&msg)
	}
}
