package nutrition_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alchemorsel/personal-chef/internal/domain/recipe"
	"github.com/alchemorsel/personal-chef/internal/infrastructure/nutrition"
	"github.com/alchemorsel/personal-chef/internal/infrastructure/persistence/memory"
	"github.com/alchemorsel/personal-chef/internal/ports/outbound"
	"github.com/alchemorsel/personal-chef/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type CachedLookupTestSuite struct {
	suite.Suite
	upstream *testutils.MockNutritionLookup
	cache    *memory.CacheRepository
	lookup   *nutrition.CachedLookup
	ctx      context.Context
}

func (s *CachedLookupTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.upstream = new(testutils.MockNutritionLookup)
	s.cache = memory.NewCacheRepository()
	s.lookup = nutrition.NewCachedLookup(s.upstream, s.cache, time.Hour, nil, zap.NewNop())
}

func (s *CachedLookupTestSuite) TearDownTest() {
	s.cache.Close()
}

func (s *CachedLookupTestSuite) TestSecondLookupIsServedFromCache() {
	// Arrange
	q := outbound.NutritionQuery{Name: "Olive Oil", Quantity: 2, Unit: "tbsp"}
	want := recipe.NutritionRecord{Calories: 239, FatG: 27}
	s.upstream.On("Lookup", mock.Anything, q).Return(want, nil).Once()

	// Act
	first, err1 := s.lookup.Lookup(s.ctx, q)
	second, err2 := s.lookup.Lookup(s.ctx, outbound.NutritionQuery{Name: "olive oil ", Quantity: 2, Unit: "TBSP"})

	// Assert
	s.NoError(err1)
	s.NoError(err2)
	s.Equal(want, first)
	s.Equal(want, second)
	s.upstream.AssertNumberOfCalls(s.T(), "Lookup", 1)
}

func (s *CachedLookupTestSuite) TestEmptyRecordIsNotCached() {
	q := outbound.NutritionQuery{Name: "unobtainium", Quantity: 1, Unit: "g"}
	s.upstream.On("Lookup", mock.Anything, q).Return(recipe.NutritionRecord{}, nil).Twice()

	_, _ = s.lookup.Lookup(s.ctx, q)
	_, _ = s.lookup.Lookup(s.ctx, q)

	s.upstream.AssertNumberOfCalls(s.T(), "Lookup", 2)
}

func (s *CachedLookupTestSuite) TestUpstreamErrorIsReturned() {
	q := outbound.NutritionQuery{Name: "flour", Quantity: 1, Unit: "cup"}
	s.upstream.On("Lookup", mock.Anything, q).Return(recipe.NutritionRecord{}, errors.New("timeout"))

	_, err := s.lookup.Lookup(s.ctx, q)

	s.EqualError(err, "timeout")
	exists, _ := s.cache.Exists(s.ctx, nutrition.CacheKey(q))
	s.False(exists)
}

func (s *CachedLookupTestSuite) TestCorruptEntryFallsThrough() {
	q := outbound.NutritionQuery{Name: "flour", Quantity: 1, Unit: "cup"}
	require.NoError(s.T(), s.cache.Set(s.ctx, nutrition.CacheKey(q), []byte("{not json"), time.Hour))
	want := recipe.NutritionRecord{Calories: 455}
	s.upstream.On("Lookup", mock.Anything, q).Return(want, nil).Once()

	got, err := s.lookup.Lookup(s.ctx, q)

	s.NoError(err)
	s.Equal(want, got)

	raw, err := s.cache.Get(s.ctx, nutrition.CacheKey(q))
	s.Require().NoError(err)
	var cached recipe.NutritionRecord
	s.Require().NoError(json.Unmarshal(raw, &cached))
	s.Equal(want, cached)
}

func TestCachedLookupTestSuite(t *testing.T) {
	suite.Run(t, new(CachedLookupTestSuite))
}

func TestCacheKey(t *testing.T) {
	a := nutrition.CacheKey(outbound.NutritionQuery{Name: "Flour", Quantity: 1.5, Unit: "Cups"})
	b := nutrition.CacheKey(outbound.NutritionQuery{Name: "flour", Quantity: 1.5, Unit: "cups"})
	c := nutrition.CacheKey(outbound.NutritionQuery{Name: "flour", Quantity: 2, Unit: "cups"})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Regexp(t, `^nutrition:[0-9a-f-]{36}$`, a)
}

func TestNoopLookup(t *testing.T) {
	got, err := nutrition.NoopLookup{}.Lookup(context.Background(), outbound.NutritionQuery{Name: "anything"})

	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}
