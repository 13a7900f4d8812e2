// Package events fans complaint change events out to connected dashboard
// feeds. Events travel through Redis Pub/Sub so every server instance sees
// them, then each hub forwards to its own websocket clients, filtered by
// the client's access scope.
package events

import (
	"encoding/json"

	"civicdesk/backend/internal/models"
	"civicdesk/backend/internal/policy"
	"civicdesk/backend/internal/storage"

	"go.uber.org/zap"
)

// Client is one connected feed. The interface keeps the hub independent of
// the transport so tests can plug in plain structs.
type Client interface {
	// GetActor returns the authenticated principal behind the connection.
	GetActor() policy.Actor
	// GetSendChannel is where the hub pushes events for this client.
	GetSendChannel() chan<- models.ComplaintEvent
	// Run starts the connection's read and write pumps.
	Run()
	// Close shuts the send channel, stopping the write pump.
	Close()
}

// Hub owns the set of connected feed clients and the event loop.
type Hub struct {
	Clients map[Client]struct{}

	RegisterCh   chan Client
	UnregisterCh chan Client
	EventsCh     chan models.ComplaintEvent

	Storage *storage.Service
	Log     *zap.Logger
}

// NewHub creates a hub over the given storage (whose Redis client carries
// the Pub/Sub subscription).
func NewHub(s *storage.Service, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		Clients:      make(map[Client]struct{}),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		EventsCh:     make(chan models.ComplaintEvent),
		Storage:      s,
		Log:          log,
	}
}

// Run is the hub's main loop. Start it once, in its own goroutine.
func (h *Hub) Run() {
	h.startPubSubListener()

	for {
		select {
		case client := <-h.RegisterCh:
			h.Clients[client] = struct{}{}
			h.Log.Debug("feed client registered",
				zap.String("user_id", client.GetActor().UserID))

		case client := <-h.UnregisterCh:
			h.remove(client)

		case ev := <-h.EventsCh:
			h.Deliver(ev)
		}
	}
}

// Deliver forwards the event to every client whose scope covers it. A
// client whose send buffer is full is dropped rather than blocking the
// loop.
func (h *Hub) Deliver(ev models.ComplaintEvent) {
	for client := range h.Clients {
		if !policy.CanReadRecord(client.GetActor(), ev.UserID, ev.DepartmentID) {
			continue
		}
		select {
		case client.GetSendChannel() <- ev:
		default:
			h.Log.Warn("dropping slow feed client",
				zap.String("user_id", client.GetActor().UserID))
			h.remove(client)
		}
	}
}

func (h *Hub) remove(client Client) {
	if _, ok := h.Clients[client]; !ok {
		return
	}
	delete(h.Clients, client)
	client.Close()
}

// startPubSubListener subscribes to the complaint event channel in Redis
// and feeds the hub loop. Without Redis the hub still serves registration,
// it just never receives events.
func (h *Hub) startPubSubListener() {
	if h.Storage == nil || h.Storage.Redis == nil {
		return
	}

	go func() {
		pubsub := h.Storage.SubscribeComplaintEvents()
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			var ev models.ComplaintEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				h.Log.Warn("undecodable complaint event", zap.Error(err))
				continue
			}
			h.EventsCh <- ev
		}
	}()
}
