package userdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var statsNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestStatsAggregation(t *testing.T) {
	svc := newTestService(statsNow, 1)
	recent := Record{"id": 1, "email": "a@x.com", "createdAt": "2024-05-20T00:00:00Z"}
	stale := Record{"id": 2, "email": "b@y.com", "createdAt": "2024-01-01T00:00:00Z", "updatedAt": "2024-02-01T00:00:00Z"}
	noAt := Record{"id": 3, "email": "no-at-sign", "createdAt": "2024-03-01T00:00:00Z"}

	stats := svc.Stats([]any{recent, stale, noAt})
	require.NotNil(t, stats)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 2, stats.Inactive)
	assert.Equal(t, stats.Total, stats.Active+stats.Inactive)

	require.NotNil(t, stats.Newest)
	require.NotNil(t, stats.Oldest)
	assert.Equal(t, 1, stats.Newest["id"])
	assert.Equal(t, 2, stats.Oldest["id"])

	assert.Equal(t, map[string]int{"x.com": 1, "y.com": 1, "unknown": 1}, stats.ByDomain)
}

func TestStatsNonSequenceInput(t *testing.T) {
	svc := newTestService(statsNow, 1)
	assert.Nil(t, svc.Stats(nil))
	assert.Nil(t, svc.Stats("records"))
	assert.Nil(t, svc.Stats(Record{"id": 1}))
	assert.Nil(t, svc.Stats(42))
}

func TestStatsEmptySequence(t *testing.T) {
	svc := newTestService(statsNow, 1)
	stats := svc.Stats([]any{})
	require.NotNil(t, stats)
	assert.Equal(t, 0, stats.Total)
	assert.Nil(t, stats.Newest)
	assert.Nil(t, stats.Oldest)
	assert.Empty(t, stats.ByDomain)
}

func TestStatsAcceptsRecordSlice(t *testing.T) {
	svc := newTestService(statsNow, 1)
	stats := svc.Stats([]Record{{"email": "a@x.com", "createdAt": "2024-05-30T00:00:00Z"}})
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.Active)
}

func TestStatsWindowBoundaryInclusive(t *testing.T) {
	svc := newTestService(statsNow, 1)
	edge := statsNow.Add(-30 * 24 * time.Hour).Format(time.RFC3339)
	stats := svc.Stats([]any{Record{"createdAt": edge}})
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.Active, "activity exactly at the window edge counts as active")
}

func TestStatsTieBreakFirstOccurrence(t *testing.T) {
	svc := newTestService(statsNow, 1)
	first := Record{"id": "first", "createdAt": "2024-04-01T00:00:00Z"}
	second := Record{"id": "second", "createdAt": "2024-04-01T00:00:00Z"}
	stats := svc.Stats([]any{first, second})
	require.NotNil(t, stats)
	assert.Equal(t, "first", stats.Newest["id"])
	assert.Equal(t, "first", stats.Oldest["id"])
}

func TestStatsMalformedTimestamps(t *testing.T) {
	svc := newTestService(statsNow, 1)
	broken := Record{"id": 1, "email": "a@x.com", "createdAt": "yesterday-ish"}
	fine := Record{"id": 2, "email": "b@x.com", "createdAt": "2024-05-30T00:00:00Z"}
	// updatedAt present but unusable: no falling back to a recent createdAt.
	stuck := Record{"id": 3, "email": "c@x.com", "createdAt": "2024-05-30T00:00:00Z", "updatedAt": 12345}

	stats := svc.Stats([]any{broken, fine, stuck})
	require.NotNil(t, stats)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 2, stats.Inactive)
	assert.Equal(t, stats.Total, stats.Active+stats.Inactive)
	assert.Equal(t, 2, stats.Newest["id"], "malformed createdAt never wins newest")
}

func TestStatsNonObjectElements(t *testing.T) {
	svc := newTestService(statsNow, 1)
	stats := svc.Stats([]any{"not-a-record", 7})
	require.NotNil(t, stats)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 2, stats.Inactive)
	assert.Equal(t, map[string]int{"unknown": 2}, stats.ByDomain)
	assert.Nil(t, stats.Newest)
}
