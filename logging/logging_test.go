package logging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger, err := New("debug", FormatConsole)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = New("info", "")
	require.NoError(t, err)

	_, err = New("loud", FormatJSON)
	assert.Error(t, err)

	_, err = New("info", "xml")
	assert.Error(t, err)
}

func TestStatistics(t *testing.T) {
	s := NewStatistics(true)
	s.TrackRequest("10.0.0.1", "POST /api/analyze", 10*time.Millisecond, false)
	s.TrackRequest("10.0.0.1", "POST /api/analyze", 20*time.Millisecond, true)
	s.TrackRequest("10.0.0.2", "GET /api/health", 0, false)
	s.TrackRequest("10.0.0.3", "POST /api/preview", 0, false)

	assert.Equal(t, 3, s.UniqueClients())
	assert.Equal(t, 25.0, s.ErrorRate())
	assert.Equal(t, []EndpointCount{
		{Endpoint: "POST /api/analyze", Count: 2},
		{Endpoint: "GET /api/health", Count: 1},
	}, s.TopEndpoints(2))

	snap := s.Snapshot()
	assert.Equal(t, 4, snap["totalRequests"])
	assert.Equal(t, 7.5, snap["averageLatencyMs"])
	assert.Contains(t, snap, "topEndpoints")
}

func TestStatisticsHidesDetailsOutsideDevMode(t *testing.T) {
	s := NewStatistics(false)
	s.TrackRequest("10.0.0.1", "GET /api/health", time.Millisecond, false)

	snap := s.Snapshot()
	assert.NotContains(t, snap, "topEndpoints")
	assert.Equal(t, 1, snap["uniqueClients24h"])
}

func TestStatisticsUniqueClientWindow(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewStatistics(false)
	s.now = func() time.Time { return now }
	s.TrackRequest("old", "GET /api/health", 0, false)

	now = now.Add(25 * time.Hour)
	s.TrackRequest("new", "GET /api/health", 0, false)
	assert.Equal(t, 1, s.UniqueClients())

	s.Prune(now.Add(-time.Hour))
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	assert.Len(t, s.uniqueClients, 1)
}
