package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/caarlos0/env/v11"
	"github.com/coder/websocket"
	"github.com/juneparke/civsim/internal/log"
	"github.com/juneparke/civsim/internal/sim"
)

// Config is the feed server's environment configuration.
type Config struct {
	Addr         string `env:"CIVSIM_ADDR" envDefault:":8910"`
	ScenarioFile string `env:"CIVSIM_SCENARIO" envDefault:"scenario.yaml"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// CardInfo is the JSON representation of a card for /api/cards.
type CardInfo struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Modifiers   []ModifierInfo `json:"modifiers"`
}

// ModifierInfo is one stat modifier in a CardInfo.
type ModifierInfo struct {
	Stat  string `json:"stat"`
	Delta int    `json:"delta"`
}

// EventFrame is one simulation event on the /ws stream.
type EventFrame struct {
	Type    string `json:"type"` // "event" or "sim_over"
	Seq     int    `json:"seq,omitempty"`
	Turn    int    `json:"turn"`
	Civ     string `json:"civ,omitempty"`
	Event   string `json:"event,omitempty"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details,omitempty"`
	Result  string `json:"result,omitempty"`
}

// Server streams scenario runs to websocket observers. It is
// observation only: connecting clients watch events, they never play.
type Server struct {
	cfg Config
	mux *http.ServeMux
}

// NewServer creates a feed server for the given config.
func NewServer(cfg Config) *Server {
	s := &Server{cfg: cfg, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
	return s
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	var cards []CardInfo
	for _, name := range sim.CardNames() {
		c := sim.MustCard(name)
		info := CardInfo{
			ID:          c.ID,
			Name:        c.Name,
			Category:    c.Category.String(),
			Description: c.Description,
			Modifiers:   []ModifierInfo{},
		}
		for _, m := range c.Modifiers {
			info.Modifiers = append(info.Modifiers, ModifierInfo{Stat: m.Stat.String(), Delta: m.Delta})
		}
		cards = append(cards, info)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cards)
}

// handleWebSocket runs the configured scenario and streams every event
// to the client as a JSON frame, ending with a sim_over frame.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()

	sc, err := sim.ParseScenarioFile(s.cfg.ScenarioFile)
	if err != nil {
		s.writeFrame(ctx, wsConn, EventFrame{Type: "error", Details: err.Error()})
		wsConn.Close(websocket.StatusInternalError, "scenario load failed")
		return
	}

	logger := &streamLogger{ctx: ctx, ch: make(chan log.SimEvent, 64)}
	sess := sim.NewSession(sim.SessionConfig{Scenario: sc, Logger: logger})

	runErr := make(chan error, 1)
	go func() {
		runErr <- sess.Run(ctx)
		close(logger.ch)
	}()

	for e := range logger.ch {
		frame := EventFrame{
			Type:    "event",
			Seq:     e.Seq,
			Turn:    e.Turn,
			Civ:     e.Civ,
			Event:   e.Type.String(),
			Card:    e.Card,
			Details: e.Details,
		}
		if err := s.writeFrame(ctx, wsConn, frame); err != nil {
			return
		}
	}

	if err := <-runErr; err != nil {
		return
	}

	s.writeFrame(ctx, wsConn, EventFrame{Type: "sim_over", Turn: sess.Turn, Result: sess.Result})
	wsConn.Close(websocket.StatusNormalClosure, "scenario complete")
}

func (s *Server) writeFrame(ctx context.Context, conn *websocket.Conn, frame EventFrame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, data)
}

// ListenAndServe starts the HTTP server on the configured address.
func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(s.cfg.Addr, s.mux)
}

// streamLogger forwards events to a channel as they are logged, bailing
// out if the client's context ends before the channel drains.
type streamLogger struct {
	ctx context.Context
	ch  chan log.SimEvent
	seq int
}

func (l *streamLogger) Log(event log.SimEvent) {
	l.seq++
	event.Seq = l.seq
	select {
	case l.ch <- event:
	case <-l.ctx.Done():
	}
}

func (l *streamLogger) Events() []log.SimEvent {
	return nil
}
