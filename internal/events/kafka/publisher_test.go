package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPublisher_RejectsUnencodableEvent(t *testing.T) {
	p := NewPublisher([]string{"127.0.0.1:1"}, nil)
	defer p.Close()

	err := p.Publish(context.Background(), "budget_updated", make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode event")
}

func TestPublisher_WrapsWriteError(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	p := NewPublisher([]string{"127.0.0.1:1"}, zap.New(core))
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	err := p.Publish(ctx, "budget_updated", map[string]int{"budget": 700})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish to budget_updated: ")

	entries := logs.FilterMessage("failed to publish event").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "budget_updated", entries[0].ContextMap()["topic"])
	assert.Equal(t, "kafka.Publish", entries[0].ContextMap()["op"])
}
