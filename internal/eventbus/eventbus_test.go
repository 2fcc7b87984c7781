package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"multipick/internal/domain"
)

func TestSubscribeDeliversEvent(t *testing.T) {
	b := New()
	got := make(chan DomainEvent, 1)
	b.Subscribe(EventAppReady, func(e DomainEvent) { got <- e })

	b.Publish(domain.AppReadyEvent{ItemCount: 3})

	select {
	case e := <-got:
		assert.Equal(t, EventAppReady, e.Type())
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}
}

func TestUnsubscribeRemovesHandler(t *testing.T) {
	b := New()
	removed := make(chan DomainEvent, 1)
	kept := make(chan DomainEvent, 1)
	unsubscribe := b.Subscribe(EventAppReady, func(e DomainEvent) { removed <- e })
	b.Subscribe(EventAppReady, func(e DomainEvent) { kept <- e })

	unsubscribe()
	b.Publish(domain.AppReadyEvent{})

	select {
	case <-kept:
	case <-time.After(time.Second):
		t.Fatal("remaining handler was not invoked")
	}
	select {
	case <-removed:
		t.Fatal("unsubscribed handler was invoked")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHandlersAreScopedByEventType(t *testing.T) {
	b := New()
	got := make(chan DomainEvent, 1)
	b.Subscribe(EventSelectionCleared, func(e DomainEvent) { got <- e })

	b.Publish(domain.AppReadyEvent{})

	select {
	case <-got:
		t.Fatal("handler for another event type was invoked")
	case <-time.After(50 * time.Millisecond):
	}
}
