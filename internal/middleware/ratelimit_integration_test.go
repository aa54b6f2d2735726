//go:build integration

package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/temple_admin_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Fatalf("failed to start redis container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRateLimit_RedisStoreSharedBetweenInstances(t *testing.T) {
	client := newRedisClient(t)

	// two limiters over one redis behave like two replicas
	first, err := middleware.NewLimiter("3-M", client)
	require.NoError(t, err)
	second, err := middleware.NewLimiter("3-M", client)
	require.NoError(t, err)

	handler := func(c *gin.Context) { c.Status(http.StatusNoContent) }
	replicaA := gin.New()
	replicaA.GET("/limited", middleware.RateLimit(first), handler)
	replicaB := gin.New()
	replicaB.GET("/limited", middleware.RateLimit(second), handler)

	var statuses []int
	for _, r := range []*gin.Engine{replicaA, replicaB, replicaA, replicaB} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
		statuses = append(statuses, w.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, statuses)
}
