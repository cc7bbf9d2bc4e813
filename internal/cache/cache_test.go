package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimezsa/scholarcli/internal/models"
)

func TestListKeyIsExact(t *testing.T) {
	base := models.FilterCriteria{Country: "USA", DegreeLevel: "All", Subject: "All", SearchQuery: "fulbright"}
	a := ListKey(base)
	assert.Equal(t, a, ListKey(base))
	assert.Contains(t, a, Prefix+"list:")

	variants := []models.FilterCriteria{
		{Country: "usa", DegreeLevel: "All", Subject: "All", SearchQuery: "fulbright"},
		{Country: "USA", DegreeLevel: "all", Subject: "All", SearchQuery: "fulbright"},
		{Country: "USA", DegreeLevel: "All", Subject: "ALL", SearchQuery: "fulbright"},
		{Country: "USA", DegreeLevel: "All", Subject: "All", SearchQuery: " fulbright"},
		{Country: "USA", DegreeLevel: "All", Subject: "All", SearchQuery: "Fulbright"},
	}
	for _, v := range variants {
		assert.NotEqual(t, a, ListKey(v), "%+v", v)
	}
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	var got []string
	assert.ErrorIs(t, m.Get(ctx, "k", &got), ErrCacheMiss)

	require.NoError(t, m.Set(ctx, Prefix+"list:a", []string{"x"}, time.Minute))
	require.NoError(t, m.Set(ctx, Prefix+"other", []string{"y"}, 0))
	require.NoError(t, m.Get(ctx, Prefix+"list:a", &got))
	assert.Equal(t, []string{"x"}, got)

	now = now.Add(2 * time.Minute)
	assert.ErrorIs(t, m.Get(ctx, Prefix+"list:a", &got), ErrCacheMiss)

	require.NoError(t, m.Set(ctx, Prefix+"list:b", []string{"z"}, time.Minute))
	require.NoError(t, m.Invalidate(ctx, Prefix+"list:"))
	assert.ErrorIs(t, m.Get(ctx, Prefix+"list:b", &got), ErrCacheMiss)
	require.NoError(t, m.Get(ctx, Prefix+"other", &got))
	assert.Equal(t, []string{"y"}, got)
}

func TestNoop(t *testing.T) {
	var c Cache = Noop{}
	require.NoError(t, c.Set(context.Background(), "k", 1, time.Minute))
	var got int
	assert.True(t, errors.Is(c.Get(context.Background(), "k", &got), ErrCacheMiss))
}

func TestOpenWithoutURLUsesMemory(t *testing.T) {
	c, err := Open(context.Background(), "  ")
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, c)

	_, err = Open(context.Background(), "not a url://")
	assert.Error(t, err)
}
