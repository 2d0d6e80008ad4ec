package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/coreman2200/funtimes-genius/internal/game"
	"github.com/coreman2200/funtimes-genius/internal/layout"
)

// Presser receives button presses from remote players.
type Presser interface {
	Press(b game.Button)
}

// Hub mirrors matrix frames and game progress to browser clients and feeds
// their button presses back into the game. It is an led.Driver, so it can sit
// next to the hardware strip in an led.Multi.
type Hub struct {
	mu        sync.RWMutex
	layout    layout.Layout
	presser   Presser
	rgb       []byte
	frameID   uint64
	status    Status
	startTime time.Time
	clients   map[*websocket.Conn]string

	// sendMu serializes all writes to client connections.
	sendMu sync.Mutex

	up  websocket.Upgrader
	log zerolog.Logger
}

func NewHub(l layout.Layout, p Presser, lg zerolog.Logger) *Hub {
	return &Hub{
		layout:    l,
		presser:   p,
		rgb:       make([]byte, l.Count()*3),
		startTime: time.Now(),
		clients:   map[*websocket.Conn]string{},
		up:        websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		log:       lg,
	}
}

// Routes returns the preview HTTP surface.
func (h *Hub) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/ws", h.HandleWS)
	r.Get("/health", h.HandleHealth)
	r.Get("/status", h.HandleStatus)
	r.Post("/press/{button}", h.HandlePress)
	return r
}

// Serve runs the preview server on addr until ctx is done.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: h.Routes(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(sctx)
	}()
	h.log.Info().Str("addr", addr).Msg("preview listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Write implements led.Driver.
func (h *Hub) Write(rgb []byte) error {
	h.mu.Lock()
	h.rgb = append(h.rgb[:0], rgb...)
	h.frameID++
	msg := message{Type: "frame", FrameID: h.frameID, RGB: append([]byte(nil), rgb...)}
	h.mu.Unlock()
	h.broadcast(msg)
	return nil
}

// Close implements led.Driver; it drops every client.
func (h *Hub) Close() error {
	h.sendMu.Lock()
	defer h.sendMu.Unlock()
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		_ = c.Close()
		delete(h.clients, c)
	}
	return nil
}

// Publish pushes an event to every client.
func (h *Hub) Publish(ev Event) {
	h.broadcast(message{Type: "event", Event: &ev})
}

func (h *Hub) Status() Status {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}

func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	id := uuid.NewString()

	h.sendMu.Lock()
	h.mu.Lock()
	h.clients[conn] = id
	hello := message{
		Type:    "hello",
		FrameID: h.frameID,
		RGB:     append([]byte(nil), h.rgb...),
		Layout:  &topology{Width: h.layout.Width, Height: h.layout.Height, Serpentine: h.layout.Serpentine},
	}
	st := h.status
	hello.Status = &st
	h.mu.Unlock()
	h.send(conn, hello)
	h.sendMu.Unlock()
	h.log.Debug().Str("client", id).Str("remote", r.RemoteAddr).Msg("preview client joined")

	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			conn.Close()
			h.log.Debug().Str("client", id).Msg("preview client left")
		}()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var msg control
			if err := json.Unmarshal(data, &msg); err != nil {
				continue
			}
			h.applyControl(id, msg)
		}
	}()
}

func (h *Hub) applyControl(client string, msg control) {
	if msg.Press == "" {
		return
	}
	b, ok := game.ParseButton(msg.Press)
	if !ok {
		h.Publish(Event{
			Severity: Warn, Code: "PRESS.UNKNOWN", Summary: "Unknown button",
			Evidence: map[string]any{"button": msg.Press, "client": client},
		})
		return
	}
	h.press(b)
}

func (h *Hub) press(b game.Button) {
	if h.presser != nil {
		h.presser.Press(b)
	}
}

func (h *Hub) HandlePress(w http.ResponseWriter, r *http.Request) {
	b, ok := game.ParseButton(chi.URLParam(r, "button"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown_button"})
		return
	}
	h.press(b)
	writeJSON(w, http.StatusAccepted, map[string]string{"pressed": b.String()})
}

func (h *Hub) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	resp := map[string]any{
		"ok":       true,
		"frame_id": h.frameID,
		"uptime_s": time.Since(h.startTime).Seconds(),
		"count":    h.layout.Count(),
		"clients":  len(h.clients),
	}
	h.mu.RUnlock()
	writeJSON(w, http.StatusOK, resp)
}

func (h *Hub) HandleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Status())
}

func (h *Hub) broadcast(msg message) {
	h.sendMu.Lock()
	defer h.sendMu.Unlock()
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for c := range h.clients {
		conns = append(conns, c)
	}
	h.mu.RUnlock()
	for _, c := range conns {
		h.send(c, msg)
	}
}

// send must be called with sendMu held.
func (h *Hub) send(c *websocket.Conn, msg message) {
	msg.T = time.Now().UnixNano()
	b, err := json.Marshal(msg)
	if err != nil {
		h.log.Error().Err(err).Msg("encode preview message")
		return
	}
	_ = c.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
	if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
		h.log.Debug().Err(err).Msg("write preview message")
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
