package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/palengke/backend/internal/domain/shared"
)

// testHandler records the events it receives
type testHandler struct {
	mu       sync.Mutex
	received []shared.DomainEvent
	types    []string
	err      error
	panics   bool
}

func (h *testHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	if h.panics {
		panic("handler exploded")
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.received = append(h.received, event)
	return h.err
}

func (h *testHandler) EventTypes() []string {
	return h.types
}

func (h *testHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.received)
}

func newEvent(eventType string) shared.DomainEvent {
	event := shared.NewBaseDomainEvent(eventType, "Lease", uuid.New(), uuid.New())
	return &event
}

func TestPublishDeliversToSubscribedType(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &testHandler{types: []string{"LeaseApproved"}}
	bus.Subscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), newEvent("LeaseApproved")))
	require.NoError(t, bus.Publish(context.Background(), newEvent("LeaseRejected")))

	assert.Equal(t, 1, handler.count())
}

func TestPublishDeliversToWildcard(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &testHandler{}
	bus.Subscribe(handler)

	require.NoError(t, bus.Publish(context.Background(),
		newEvent("LeaseApproved"), newEvent("ExpensePaid")))

	assert.Equal(t, 2, handler.count())
}

func TestHandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	failing := &testHandler{types: []string{"LeaseApproved"}, err: errors.New("broken")}
	healthy := &testHandler{types: []string{"LeaseApproved"}}
	bus.Subscribe(failing)
	bus.Subscribe(healthy)

	require.NoError(t, bus.Publish(context.Background(), newEvent("LeaseApproved")))
	assert.Equal(t, 1, healthy.count())
}

func TestHandlerPanicIsContained(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	panicking := &testHandler{types: []string{"LeaseApproved"}, panics: true}
	healthy := &testHandler{types: []string{"LeaseApproved"}}
	bus.Subscribe(panicking)
	bus.Subscribe(healthy)

	require.NoError(t, bus.Publish(context.Background(), newEvent("LeaseApproved")))
	assert.Equal(t, 1, healthy.count())
}

func TestUnsubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &testHandler{types: []string{"LeaseApproved"}}
	bus.Subscribe(handler)
	bus.Unsubscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), newEvent("LeaseApproved")))
	assert.Equal(t, 0, handler.count())
}
