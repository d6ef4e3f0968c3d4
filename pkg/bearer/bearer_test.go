package bearer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithToken(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx := WithToken(context.Background(), "")
	_, ok = FromContext(ctx)
	assert.False(t, ok)

	token, ok := FromContext(WithToken(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", token)
}
