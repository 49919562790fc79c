// Package notifications delivers live comment and counter events to
// websocket subscribers, fanned out across instances through Redis pub/sub.
package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"

	"evtele/internal/observability"
	"evtele/internal/validation"

	"github.com/gofiber/websocket/v2"
)

const (
	// Max total connections
	maxTotalConns = 10000
	// Max subscribers in a single scope room
	maxConnsPerScope = 5000
)

// Hub is a websocket hub that maps comment scope -> set of subscribed Clients.
// A client follows at most one scope at a time; switching pages re-joins.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]struct{}
	scopes     map[string]map[*Client]struct{}
	totalConns int
	shutdown   chan struct{}
	done       chan struct{}
}

// Name returns a human-readable identifier for this hub.
func (h *Hub) Name() string { return "comment feed hub" }

// NewHub creates a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		clients:  make(map[*Client]struct{}),
		scopes:   make(map[string]map[*Client]struct{}),
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Register adds a connection to the hub. userID is zero for anonymous viewers;
// the feed is read-only so no authentication is required to subscribe.
func (h *Hub) Register(userID uint, conn *websocket.Conn) (*Client, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.totalConns >= maxTotalConns {
		return nil, errors.New("server connection limit reached")
	}

	client := NewClient(h, conn, userID)
	client.IncomingHandler = h.handleClientMessage

	h.clients[client] = struct{}{}
	h.totalConns++
	observability.WebSocketConnectionsTotal.Inc()

	return client, nil
}

// UnregisterClient removes a client from the hub and from its scope room.
func (h *Hub) UnregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	h.leaveScopeLocked(client)
	delete(h.clients, client)
	h.totalConns--
	observability.WebSocketConnectionsTotal.Dec()
}

// JoinScope subscribes a client to a scope, leaving its previous one.
func (h *Hub) JoinScope(client *Client, scope string) error {
	if err := validation.ValidateCommentScope(scope); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return errors.New("client is not registered")
	}
	if client.scope == scope {
		return nil
	}

	room, ok := h.scopes[scope]
	if !ok {
		room = make(map[*Client]struct{})
		h.scopes[scope] = room
	}
	if len(room) >= maxConnsPerScope {
		return errors.New("scope connection limit reached")
	}

	h.leaveScopeLocked(client)
	room[client] = struct{}{}
	client.scope = scope
	observability.WebSocketScopeConnections.WithLabelValues(scope).Inc()
	observability.WebSocketEventsTotal.WithLabelValues("join").Inc()
	return nil
}

// LeaveScope unsubscribes a client from its current scope, if any.
func (h *Hub) LeaveScope(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveScopeLocked(client)
}

// leaveScopeLocked requires h.mu to be held.
func (h *Hub) leaveScopeLocked(client *Client) {
	scope := client.scope
	if scope == "" {
		return
	}
	if room, ok := h.scopes[scope]; ok {
		delete(room, client)
		if len(room) == 0 {
			delete(h.scopes, scope)
		}
	}
	client.scope = ""
	observability.WebSocketScopeConnections.WithLabelValues(scope).Dec()
	observability.WebSocketEventsTotal.WithLabelValues("leave").Inc()
}

// Scope returns the scope the client currently follows.
func (h *Hub) Scope(client *Client) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return client.scope
}

// ScopeCount returns the number of subscribers in a scope room.
func (h *Hub) ScopeCount(scope string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.scopes[scope])
}

// Broadcast sends message to every subscriber of a scope.
func (h *Hub) Broadcast(scope, message string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if room, ok := h.scopes[scope]; ok {
		data := []byte(message)
		for c := range room {
			c.TrySend(data)
		}
	}
	observability.WebSocketEventsTotal.WithLabelValues("scope_broadcast").Inc()
}

// BroadcastAll sends message to every connected client regardless of scope.
// Used for site-wide events such as channel like-counter updates.
func (h *Hub) BroadcastAll(message string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	data := []byte(message)
	for c := range h.clients {
		c.TrySend(data)
	}
	observability.WebSocketEventsTotal.WithLabelValues("broadcast").Inc()
}

// clientCommand is the control frame a subscriber sends to follow a scope.
type clientCommand struct {
	Action string `json:"action"`
	Scope  string `json:"scope"`
}

func (h *Hub) handleClientMessage(c *Client, raw []byte) {
	var cmd clientCommand
	if err := json.Unmarshal(raw, &cmd); err != nil {
		c.TrySend([]byte(`{"type":"error","payload":{"reason":"bad_command"}}`))
		return
	}

	switch cmd.Action {
	case "join":
		if err := h.JoinScope(c, cmd.Scope); err != nil {
			c.TrySend([]byte(`{"type":"error","payload":{"reason":"join_rejected"}}`))
		}
	case "leave":
		h.LeaveScope(c)
	default:
		c.TrySend([]byte(`{"type":"error","payload":{"reason":"unknown_action"}}`))
	}
}

// StartWiring connects the Notifier to this hub: it subscribes to the Redis
// patterns and forwards messages to the matching scope room.
func (h *Hub) StartWiring(ctx context.Context, n *Notifier) error {
	return n.StartPatternSubscriber(ctx, func(channel, payload string) {
		if channel == broadcastChannel {
			h.BroadcastAll(payload)
			return
		}
		scope, ok := strings.CutPrefix(channel, scopeChannelPrefix)
		if !ok || scope == "" {
			log.Printf("invalid event channel: %s", channel)
			return
		}
		h.Broadcast(scope, payload)
	})
}

// Shutdown gracefully closes all websocket connections.
func (h *Hub) Shutdown(_ context.Context) error {
	close(h.shutdown)

	h.mu.Lock()
	for client := range h.clients {
		if client.Conn == nil {
			continue
		}
		if err := client.Conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "Server shutting down")); err != nil {
			log.Printf("failed to write close message: %v", err)
		}
		if err := client.Conn.Close(); err != nil {
			log.Printf("failed to close websocket: %v", err)
		}
	}
	h.clients = make(map[*Client]struct{})
	h.scopes = make(map[string]map[*Client]struct{})
	h.totalConns = 0
	h.mu.Unlock()

	close(h.done)
	return nil
}
