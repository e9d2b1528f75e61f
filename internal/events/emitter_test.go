package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/benefit-cards/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	handled []*CardEvent
	err     error
}

func (h *recordingHandler) HandleEvent(_ context.Context, event *CardEvent) error {
	h.handled = append(h.handled, event)
	return h.err
}

func testCard() *domain.Card {
	return &domain.Card{ID: 7, EmployeeID: 3, Type: domain.CardTypeMeal, Number: "6062000000000000"}
}

func TestNewCardEvent(t *testing.T) {
	at := time.Date(2026, time.May, 4, 10, 0, 0, 0, time.FixedZone("BRT", -3*3600))

	event := NewCardEvent(CardActivated, testCard(), at)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, CardActivated, event.Type)
	assert.Equal(t, int64(7), event.CardID)
	assert.Equal(t, int64(3), event.EmployeeID)
	assert.Equal(t, domain.CardTypeMeal, event.CardType)
	assert.Equal(t, time.UTC, event.OccurredAt.Location())
	assert.True(t, at.Equal(event.OccurredAt))

	raw, err := json.Marshal(event)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "6062000000000000")
}

func TestInMemoryEventEmitter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	event := NewCardEvent(CardCreated, testCard(), time.Now())

	t.Run("emit event with no handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		assert.NoError(t, emitter.EmitEvent(context.Background(), event))
	})

	t.Run("emit event with successful handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		h1, h2 := &recordingHandler{}, &recordingHandler{}
		emitter.RegisterHandler(h1)
		emitter.RegisterHandler(h2)

		require.NoError(t, emitter.EmitEvent(context.Background(), event))

		require.Len(t, h1.handled, 1)
		require.Len(t, h2.handled, 1)
		assert.Same(t, event, h1.handled[0])
		assert.Same(t, event, h2.handled[0])
	})

	t.Run("emit event with failing handler", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		failing := &recordingHandler{err: errors.New("handler error")}
		ok := &recordingHandler{}
		emitter.RegisterHandler(failing)
		emitter.RegisterHandler(ok)

		err := emitter.EmitEvent(context.Background(), event)
		assert.EqualError(t, err, "handler error")
		assert.Len(t, failing.handled, 1)
		assert.Len(t, ok.handled, 1)
	})

	t.Run("nil logger uses default", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(nil)
		assert.NotNil(t, emitter.logger)
	})
}

func TestAuditHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := NewAuditHandler(logger)
	event := NewCardEvent(CardBlocked, testCard(), time.Now())
	require.NoError(t, handler.HandleEvent(context.Background(), event))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "card event", entry["msg"])
	assert.Equal(t, CardBlocked, entry["event_type"])
	assert.Equal(t, "card_audit", entry["component"])
	assert.EqualValues(t, 7, entry["card_id"])
}

func TestNopEmitter(t *testing.T) {
	var e EventEmitter = NopEmitter{}
	assert.NoError(t, e.EmitEvent(context.Background(), NewCardEvent(CardUnblocked, testCard(), time.Now())))
}
