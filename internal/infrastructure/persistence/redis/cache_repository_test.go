package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/alchemorsel/personal-chef/internal/ports/outbound"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// CacheRepositoryIntegrationSuite runs against a live Redis named by
// PERSONALCHEF_TEST_REDIS_ADDR and is skipped otherwise.
type CacheRepositoryIntegrationSuite struct {
	suite.Suite
	client goredis.UniversalClient
	repo   *CacheRepository
	prefix string
	ctx    context.Context
}

func (s *CacheRepositoryIntegrationSuite) SetupSuite() {
	addr := os.Getenv("PERSONALCHEF_TEST_REDIS_ADDR")
	if addr == "" {
		s.T().Skip("PERSONALCHEF_TEST_REDIS_ADDR not set")
	}

	s.ctx = context.Background()
	s.client = goredis.NewUniversalClient(&goredis.UniversalOptions{Addrs: []string{addr}})
	s.Require().NoError(s.client.Ping(s.ctx).Err())
	s.repo = NewCacheRepository(s.client, zap.NewNop())
}

func (s *CacheRepositoryIntegrationSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
}

func (s *CacheRepositoryIntegrationSuite) SetupTest() {
	s.prefix = "test:" + uuid.NewString() + ":"
}

func (s *CacheRepositoryIntegrationSuite) key(name string) string {
	return s.prefix + name
}

func (s *CacheRepositoryIntegrationSuite) TestGet_MissMapsToErrCacheMiss() {
	_, err := s.repo.Get(s.ctx, s.key("absent"))

	s.ErrorIs(err, outbound.ErrCacheMiss)
}

func (s *CacheRepositoryIntegrationSuite) TestSetGetDelete() {
	key := s.key("flour")

	s.Require().NoError(s.repo.Set(s.ctx, key, []byte("364"), time.Minute))

	value, err := s.repo.Get(s.ctx, key)
	s.NoError(err)
	s.Equal("364", string(value))

	exists, err := s.repo.Exists(s.ctx, key)
	s.NoError(err)
	s.True(exists)

	s.NoError(s.repo.Delete(s.ctx, key))
	exists, err = s.repo.Exists(s.ctx, key)
	s.NoError(err)
	s.False(exists)
}

func (s *CacheRepositoryIntegrationSuite) TestIncrement_SetsExpiryOnce() {
	key := s.key("counter")

	for want := int64(1); want <= 3; want++ {
		got, err := s.repo.Increment(s.ctx, key)
		s.NoError(err)
		s.Equal(want, got)
	}

	ttl, err := s.client.TTL(s.ctx, key).Result()
	s.NoError(err)
	s.Greater(ttl, 23*time.Hour)
	s.LessOrEqual(ttl, CounterTTL)

	s.NoError(s.repo.Delete(s.ctx, key))
}

func (s *CacheRepositoryIntegrationSuite) TestDecrement_KeepsExpiry() {
	key := s.key("counter")

	_, _ = s.repo.Increment(s.ctx, key)
	_, _ = s.repo.Increment(s.ctx, key)

	got, err := s.repo.Decrement(s.ctx, key)
	s.NoError(err)
	s.Equal(int64(1), got)

	ttl, err := s.client.TTL(s.ctx, key).Result()
	s.NoError(err)
	s.Greater(ttl, 23*time.Hour)

	s.NoError(s.repo.Delete(s.ctx, key))
}

func TestCacheRepositoryIntegrationSuite(t *testing.T) {
	suite.Run(t, new(CacheRepositoryIntegrationSuite))
}

func (s *CacheRepositoryIntegrationSuite) TestPing() {
	s.NoError(s.repo.Ping(s.ctx))
}
