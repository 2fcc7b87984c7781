package ui

import (
	"multipick/internal/eventbus"
)

// EventMsg wraps a domain event forwarded from the bus into the UI loop
type EventMsg struct {
	Event eventbus.DomainEvent
}
