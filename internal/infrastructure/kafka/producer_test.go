package kafka

import (
	"testing"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	msg := newMessage(usecase.NewWriteRawMessageReq("ORD-1", usecase.OrderPlaced, []byte(`{}`)))

	assert.Equal(t, []byte("ORD-1"), msg.Key)
	assert.Equal(t, []byte(`{}`), msg.Value)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, eventTypeHeader, msg.Headers[0].Key)
	assert.Equal(t, "order.placed", string(msg.Headers[0].Value))

	bare := newMessage(usecase.NewWriteRawMessageReq("k", "", nil))
	assert.Empty(t, bare.Headers)
}

func TestNewProducerRequiresBrokers(t *testing.T) {
	_, err := NewProducer(logger.Nop{}, &cfg.KafkaCfg{Topic: "orders"})
	require.ErrorIs(t, err, e.ErrIncorrectEnvVariable)

	p, err := NewProducer(logger.Nop{}, &cfg.KafkaCfg{Topic: "orders", Brokers: []string{"localhost:9092"}})
	require.NoError(t, err)
	require.NoError(t, p.Close())
}
