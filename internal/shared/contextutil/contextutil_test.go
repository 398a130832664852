package contextutil_test

import (
	"context"
	"testing"

	"go-benefits/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", contextutil.GetRequestID(ctx))
	assert.Empty(t, contextutil.GetRequestID(context.Background()))
}

func TestUserIDRoundTrip(t *testing.T) {
	ctx := contextutil.WithUserID(context.Background(), "user-456")
	assert.Equal(t, "user-456", contextutil.GetUserID(ctx))
	assert.Empty(t, contextutil.GetUserID(context.Background()))
}
