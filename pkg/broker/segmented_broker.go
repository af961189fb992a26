package broker

import (
	"sync"
)

// Channel represents the type of event channel
type Channel string

const (
	// ChannelAdmin reaches every open admin tab; the id is ignored.
	ChannelAdmin Channel = "admin"
	// ChannelUser reaches the tabs of one admin account, keyed by user id.
	ChannelUser Channel = "user"
)

// Event types published by the app.
const (
	EventAppointmentCreated = "appointment.created"
	EventAppointmentUpdated = "appointment.updated"
	EventSessionUpdated     = "session.updated"
)

// Event represents a system event
type Event struct {
	Type      string         `json:"type"`
	Timestamp int64          `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// SegmentedBroker manages channel-based event distribution
type SegmentedBroker struct {
	adminClients map[chan Event]bool

	// User channels: map[user_id]map[client_channel]bool
	userClients map[string]map[chan Event]bool

	mutex sync.RWMutex
}

func NewSegmentedBroker() *SegmentedBroker {
	return &SegmentedBroker{
		adminClients: make(map[chan Event]bool),
		userClients:  make(map[string]map[chan Event]bool),
	}
}

// Subscribe creates a new client channel and returns it
func (b *SegmentedBroker) Subscribe(channel Channel, id string) chan Event {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	clientChan := make(chan Event, 10) // Buffered to prevent blocking

	switch channel {
	case ChannelAdmin:
		b.adminClients[clientChan] = true

	case ChannelUser:
		if _, exists := b.userClients[id]; !exists {
			b.userClients[id] = make(map[chan Event]bool)
		}
		b.userClients[id][clientChan] = true
	}

	return clientChan
}

// Unsubscribe removes a client channel and closes it
func (b *SegmentedBroker) Unsubscribe(channel Channel, id string, clientChan chan Event) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	switch channel {
	case ChannelAdmin:
		if !b.adminClients[clientChan] {
			return
		}
		delete(b.adminClients, clientChan)

	case ChannelUser:
		clients, exists := b.userClients[id]
		if !exists || !clients[clientChan] {
			return
		}
		delete(clients, clientChan)
		if len(clients) == 0 {
			delete(b.userClients, id)
		}

	default:
		return
	}
	close(clientChan)
}

// Publish sends an event to the appropriate channel(s). Slow clients miss
// the event rather than block the publisher.
func (b *SegmentedBroker) Publish(channel Channel, id string, event Event) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	switch channel {
	case ChannelAdmin:
		for clientChan := range b.adminClients {
			select {
			case clientChan <- event:
			default:
			}
		}

	case ChannelUser:
		for clientChan := range b.userClients[id] {
			select {
			case clientChan <- event:
			default:
			}
		}
	}
}

// GetStats returns current broker statistics
func (b *SegmentedBroker) GetStats() map[string]int {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	userCount := 0
	for _, clients := range b.userClients {
		userCount += len(clients)
	}

	return map[string]int{
		"admin_clients": len(b.adminClients),
		"user_clients":  userCount,
	}
}
