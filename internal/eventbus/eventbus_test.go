package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gqldoc/internal/domain"
)

func waitFor(t *testing.T, ch <-chan DomainEvent) DomainEvent {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestPublishSubscribe(t *testing.T) {
	bus := New()
	defer bus.Close()

	received := make(chan DomainEvent, 1)
	bus.Subscribe(EventSchemaChanged, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(SchemaChangedEvent{Path: "/tmp/schema.graphql"})

	event := waitFor(t, received)
	changed, ok := event.(SchemaChangedEvent)
	assert.True(t, ok)
	assert.Equal(t, "/tmp/schema.graphql", changed.Path)
}

func TestSubscribeFiltersByType(t *testing.T) {
	bus := New()
	defer bus.Close()

	received := make(chan DomainEvent, 2)
	bus.Subscribe(EventIndexBuilt, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(SchemaChangedEvent{Path: "x"})
	bus.Publish(IndexBuiltEvent{Records: 7})

	event := waitFor(t, received)
	built, ok := event.(IndexBuiltEvent)
	assert.True(t, ok)
	assert.Equal(t, 7, built.Records)

	select {
	case e := <-received:
		t.Fatalf("unexpected second event: %v", e.Type())
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHandlerPanicDoesNotKillDispatcher(t *testing.T) {
	bus := New()
	defer bus.Close()

	received := make(chan DomainEvent, 1)
	bus.Subscribe(EventIndexBuilt, func(e DomainEvent) {
		panic("boom")
	})
	bus.Subscribe(EventIndexBuilt, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(IndexBuiltEvent{Records: 1})
	waitFor(t, received)
}

func TestEventTypes(t *testing.T) {
	assert.Equal(t, domain.EventSchemaLoaded, SchemaLoadedEvent{}.Type())
	assert.Equal(t, domain.EventSchemaError, SchemaErrorEvent{}.Type())
	assert.Equal(t, domain.EventConfigSaved, ConfigSavedEvent{}.Type())
}
