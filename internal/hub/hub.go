package hub

import (
	"context"
	"ctchen222/tictactoe-solo/internal/player"
	"log/slog"
	"sync"
)

// Hub tracks the players connected to the server. Every player owns an independent
// session; the hub only knows who is connected so they can be counted and closed.
type Hub struct {
	mu         sync.RWMutex
	players    map[string]*player.Player
	register   chan *player.Player
	unregister chan *player.Player
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		players:    make(map[string]*player.Player),
		register:   make(chan *player.Player),
		unregister: make(chan *player.Player),
		done:       make(chan struct{}),
	}
}

// Run processes registrations until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			return

		case p := <-h.register:
			h.mu.Lock()
			h.players[p.ID] = p
			h.mu.Unlock()
			slog.Debug("Player registered", "session.id", p.ID)

		case p := <-h.unregister:
			h.mu.Lock()
			delete(h.players, p.ID)
			h.mu.Unlock()
			slog.Debug("Player unregistered", "session.id", p.ID)
		}
	}
}

// Register hands p to the run loop. It returns immediately once the hub has stopped.
func (h *Hub) Register(p *player.Player) {
	select {
	case h.register <- p:
	case <-h.done:
	}
}

// Unregister removes p. It returns immediately once the hub has stopped.
func (h *Hub) Unregister(p *player.Player) {
	select {
	case h.unregister <- p:
	case <-h.done:
	}
}

// Count returns the number of connected players.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.players)
}

// CloseAll closes every registered connection, which ends their read loops.
func (h *Hub) CloseAll() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, p := range h.players {
		if err := p.Conn.Close(); err != nil {
			slog.Warn("Failed to close player connection", "session.id", id, "error", err)
		}
	}
}
