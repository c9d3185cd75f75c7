package replay

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Server exposes a recorded solve to external replay tools: GET /events
// returns the full log as JSON, GET /ws streams it over a websocket, one
// event per tick, so a client can animate the solve.
type Server struct {
	rec      *Log
	puzzle   string
	interval time.Duration
	upgrader websocket.Upgrader
}

// NewServer wraps a recorded log. interval is the playback rate of the
// websocket stream.
func NewServer(rec *Log, puzzle string, interval time.Duration) *Server {
	return &Server{
		rec:      rec,
		puzzle:   puzzle,
		interval: interval,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler returns the HTTP routes of the replay server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/events", s.handleEvents)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// ListenAndServe blocks serving the replay on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.WithFields(logrus.Fields{
		"addr":   addr,
		"events": s.rec.Len(),
	}).Info("replay server listening")
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(struct {
		Puzzle string  `json:"puzzle"`
		Events []Event `json:"events"`
	}{s.puzzle, s.rec.Events()})
	if err != nil {
		log.WithError(err).Error("failed to encode event log")
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("websocket upgrade failed")
		return
	}

	session := uuid.NewString()
	log.WithFields(logrus.Fields{
		"session": session,
		"remote":  r.RemoteAddr,
	}).Info("replay session started")

	go s.stream(conn, session)
}

// stream plays the recorded events back over one connection at the
// configured interval, then closes normally.
func (s *Server) stream(conn *websocket.Conn, session string) {
	defer conn.Close()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for _, ev := range s.rec.Events() {
		<-ticker.C
		data, err := json.Marshal(ev)
		if err != nil {
			log.WithError(err).Error("failed to encode event")
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.WithFields(logrus.Fields{
				"session": session,
				"seq":     ev.Seq,
			}).WithError(err).Debug("client went away")
			return
		}
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "replay complete")
	if err := conn.WriteMessage(websocket.CloseMessage, msg); err != nil {
		return
	}
	log.WithField("session", session).Info("replay session finished")
}
