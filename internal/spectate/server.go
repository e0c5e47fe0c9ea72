// Package spectate streams the world's published snapshots to websocket
// viewers. The feed is observation only: nothing a viewer sends flows back
// into the simulation.
package spectate

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"battlebots/pkg/botapi"
)

// writeWait bounds how long a frame write may stall before the viewer is
// dropped.
const writeWait = 2 * time.Second

// Bot pairs an agent id with its latest snapshot.
type Bot struct {
	ID    string          `json:"id"`
	Name  string          `json:"name,omitempty"`
	State botapi.BotState `json:"state"`
}

// Frame is one feed payload: every robot's snapshot as of the same tick.
type Frame struct {
	Tick uint64 `json:"tick"`
	Bots []Bot  `json:"bots"`
}

// Source supplies frames to stream.
type Source interface {
	Frame() Frame
}

// Server pushes frames to every connected viewer at a fixed interval.
type Server struct {
	src      Source
	interval time.Duration
	log      *log.Logger
	upgrader websocket.Upgrader
}

// NewServer creates a server streaming from src every interval.
func NewServer(src Source, interval time.Duration, logger *log.Logger) *Server {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	return &Server{
		src:      src,
		interval: interval,
		log:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Handler upgrades the request and streams frames until the viewer
// disconnects or falls behind.
func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		// Drain the read side so close frames are noticed.
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-closed:
				return
			case <-ticker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(s.src.Frame()); err != nil {
					return
				}
			}
		}
	}
}

// ListenAndServe serves the feed on addr under the /spectate path. It
// blocks until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/spectate", s.Handler())
	s.log.Printf("spectate feed on ws://%s/spectate", addr)
	return http.ListenAndServe(addr, mux)
}
