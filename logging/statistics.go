package logging

import (
	"sort"
	"sync"
	"time"
)

// Statistics collects request-level counters for the API.
type Statistics struct {
	mutex sync.RWMutex

	uniqueClients  map[string]time.Time // client -> last request
	endpoints      map[string]int
	totalRequests  int
	errorCount     int
	totalLatencyMs float64
	devMode        bool
	now            func() time.Time
}

// EndpointCount is a route and how often it was called.
type EndpointCount struct {
	Endpoint string `json:"endpoint"`
	Count    int    `json:"count"`
}

// NewStatistics creates an empty collector. In dev mode Snapshot includes
// per-endpoint details.
func NewStatistics(devMode bool) *Statistics {
	return &Statistics{
		uniqueClients: make(map[string]time.Time),
		endpoints:     make(map[string]int),
		devMode:       devMode,
		now:           time.Now,
	}
}

// TrackRequest records one completed request.
func (s *Statistics) TrackRequest(client, endpoint string, latency time.Duration, failed bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.uniqueClients[client] = s.now()
	s.endpoints[endpoint]++
	s.totalRequests++
	if failed {
		s.errorCount++
	}
	s.totalLatencyMs += float64(latency.Microseconds()) / 1000
}

// UniqueClients returns the number of clients seen in the last 24 hours.
func (s *Statistics) UniqueClients() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.uniqueClientsLocked()
}

func (s *Statistics) uniqueClientsLocked() int {
	cutoff := s.now().Add(-24 * time.Hour)
	count := 0
	for _, last := range s.uniqueClients {
		if last.After(cutoff) {
			count++
		}
	}
	return count
}

// ErrorRate returns the error rate as a percentage.
func (s *Statistics) ErrorRate() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.errorRateLocked()
}

func (s *Statistics) errorRateLocked() float64 {
	if s.totalRequests == 0 {
		return 0
	}
	return float64(s.errorCount) / float64(s.totalRequests) * 100
}

// TopEndpoints returns the n most requested endpoints, busiest first.
func (s *Statistics) TopEndpoints(n int) []EndpointCount {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.topEndpointsLocked(n)
}

func (s *Statistics) topEndpointsLocked(n int) []EndpointCount {
	out := make([]EndpointCount, 0, len(s.endpoints))
	for e, c := range s.endpoints {
		out = append(out, EndpointCount{Endpoint: e, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Endpoint < out[j].Endpoint
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Prune forgets clients not seen since cutoff.
func (s *Statistics) Prune(cutoff time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for c, last := range s.uniqueClients {
		if last.Before(cutoff) {
			delete(s.uniqueClients, c)
		}
	}
}

// Snapshot returns the statistics for the API. Endpoint details are only
// shown in dev mode.
func (s *Statistics) Snapshot() map[string]interface{} {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	avg := 0.0
	if s.totalRequests > 0 {
		avg = s.totalLatencyMs / float64(s.totalRequests)
	}
	out := map[string]interface{}{
		"uniqueClients24h": s.uniqueClientsLocked(),
		"totalRequests":    s.totalRequests,
		"errorRate":        s.errorRateLocked(),
		"averageLatencyMs": avg,
	}
	if s.devMode {
		out["topEndpoints"] = s.topEndpointsLocked(5)
	}
	return out
}
