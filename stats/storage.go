package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/seo-optimizer/backend/analyzer"
)

// MonthlyStats represents analysis counters for a specific month
type MonthlyStats struct {
	AnalysisCacheHits   int       `json:"analysis_hits"`
	AnalysisCacheMisses int       `json:"analysis_misses"`
	InsufficientContent int       `json:"insufficient_content"`
	ScoringFailures     int       `json:"scoring_failures"`
	ScoringTimeMs       float64   `json:"scoring_time_ms"`
	LastUpdated         time.Time `json:"last_updated"`
}

// Analyses is the number of calls that reached the cache.
func (m MonthlyStats) Analyses() int {
	return m.AnalysisCacheHits + m.AnalysisCacheMisses
}

// HitRate is the percentage of analyses served from the cache.
func (m MonthlyStats) HitRate() float64 {
	if m.Analyses() == 0 {
		return 0
	}
	return float64(m.AnalysisCacheHits) * 100 / float64(m.Analyses())
}

// Storage handles persistent storage of statistics
type Storage struct {
	mutex       sync.RWMutex
	fileMu      sync.Mutex
	stats       map[string]*MonthlyStats // key: "YYYY-MM"
	filePath    string
	lastWrite   time.Time
	writeBuffer chan struct{}
	stop        chan struct{}
	done        chan struct{}
	closeOnce   sync.Once
	logger      *zap.Logger
}

// NewStorage creates a new statistics storage instance
func NewStorage(dataDir string, logger *zap.Logger) (*Storage, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Storage{
		stats:       make(map[string]*MonthlyStats),
		filePath:    filepath.Join(dataDir, "stats.json"),
		writeBuffer: make(chan struct{}, 1),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
		logger:      logger,
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	go s.backgroundWriter()

	return s, nil
}

// load reads statistics from file
func (s *Storage) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	return json.Unmarshal(data, &s.stats)
}

// save writes statistics to file
func (s *Storage) save() error {
	s.fileMu.Lock()
	defer s.fileMu.Unlock()

	s.mutex.RLock()
	data, err := json.Marshal(s.stats)
	s.mutex.RUnlock()

	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	// Write to temporary file first
	tempFile := s.filePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tempFile, s.filePath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

func (s *Storage) saveAndLog() {
	if err := s.save(); err != nil {
		s.logger.Warn("failed to persist statistics", zap.Error(err))
	}
}

// backgroundWriter handles periodic writes to disk
func (s *Storage) backgroundWriter() {
	defer close(s.done)
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.writeBuffer:
			s.saveAndLog()
		case <-ticker.C:
			s.saveAndLog()
		case <-s.stop:
			return
		}
	}
}

// Flush writes the current statistics to disk immediately.
func (s *Storage) Flush() error {
	return s.save()
}

// Close stops the background writer and flushes pending statistics.
func (s *Storage) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		<-s.done
	})
	return s.save()
}

// getCurrentMonth returns the current month key in YYYY-MM format
func getCurrentMonth() string {
	return time.Now().Format("2006-01")
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// requestWrite signals that a write to disk is needed
func (s *Storage) requestWrite() {
	select {
	case s.writeBuffer <- struct{}{}:
	default:
		// write already pending
	}
}

// IncrementStats adds the given deltas to the current month.
func (s *Storage) IncrementStats(hits, misses, insufficient, failures int) {
	s.update(func(m *MonthlyStats) {
		m.AnalysisCacheHits += hits
		m.AnalysisCacheMisses += misses
		m.InsufficientContent += insufficient
		m.ScoringFailures += failures
	})
}

// RecordAnalysis implements analyzer.Recorder.
func (s *Storage) RecordAnalysis(outcome analyzer.Outcome, cacheHit bool, elapsed time.Duration) {
	s.update(func(m *MonthlyStats) {
		switch {
		case outcome == analyzer.OutcomeInsufficientContent:
			m.InsufficientContent++
			return
		case cacheHit:
			m.AnalysisCacheHits++
			return
		}
		m.AnalysisCacheMisses++
		if outcome == analyzer.OutcomeFailed {
			m.ScoringFailures++
		}
		m.ScoringTimeMs += float64(elapsed.Microseconds()) / 1000
	})
}

func (s *Storage) update(fn func(*MonthlyStats)) {
	month := getCurrentMonth()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	stats, exists := s.stats[month]
	if !exists {
		stats = &MonthlyStats{}
		s.stats[month] = stats
	}
	fn(stats)
	stats.LastUpdated = time.Now()

	// Request a write if enough time has passed
	if time.Since(s.lastWrite) > time.Minute {
		s.requestWrite()
		s.lastWrite = time.Now()
	}
}

// GetCurrentStats returns statistics for the current month
func (s *Storage) GetCurrentStats() MonthlyStats {
	month := getCurrentMonth()

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if stats, exists := s.stats[month]; exists {
		return *stats
	}
	return MonthlyStats{}
}

// Cleanup keeps the current month plus the retainMonths months before it.
func (s *Storage) Cleanup(retainMonths int) {
	if retainMonths < 0 {
		retainMonths = 0
	}
	oldest := monthStart(time.Now()).AddDate(0, -retainMonths, 0).Format("2006-01")

	s.mutex.Lock()
	var removed []string
	for key := range s.stats {
		if key < oldest {
			delete(s.stats, key)
			removed = append(removed, key)
		}
	}
	s.mutex.Unlock()

	s.requestWrite()
	s.logger.Debug("cleaned up statistics",
		zap.String("oldest_retained", oldest),
		zap.Strings("removed", removed))
}

// GetMonthlyStats returns statistics for a specific month
func (s *Storage) GetMonthlyStats(yearMonth string) (MonthlyStats, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if stats, exists := s.stats[yearMonth]; exists {
		return *stats, true
	}
	return MonthlyStats{}, false
}

// GetAllMonths returns all months that have statistics, newest first
func (s *Storage) GetAllMonths() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	months := make([]string, 0, len(s.stats))
	for month := range s.stats {
		months = append(months, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	return months
}
