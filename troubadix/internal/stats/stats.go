// internal/stats/stats.go
package stats

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/asterixkit/getafix/asterix"
	"github.com/asterixkit/getafix/schema"
)

// MessageStats tracks statistics about processed ASTERIX traffic
type MessageStats struct {
	TotalBlocks   int
	TotalRecords  int
	TotalErrors   int
	PerCategory   map[schema.Category]int
	ErrorsPerKind map[string]int
	StartTime     time.Time
}

// NewMessageStats creates a new MessageStats struct
func NewMessageStats() *MessageStats {
	return &MessageStats{
		PerCategory:   make(map[schema.Category]int),
		ErrorsPerKind: make(map[string]int),
		StartTime:     time.Now(),
	}
}

// Observe folds one decode result into the counters
func (s *MessageStats) Observe(result *asterix.DatablockResult) {
	s.TotalBlocks += len(result.Datablocks)
	s.TotalRecords += len(result.Records)
	s.TotalErrors += len(result.Errors)
	for _, rec := range result.Records {
		s.PerCategory[rec.Category]++
	}
	for _, e := range result.Errors {
		s.ErrorsPerKind[e.Kind.Error()]++
	}
}

// LogStats reports the counters through the logger
func (s *MessageStats) LogStats(logger *logrus.Logger, final bool) {
	fields := logrus.Fields{
		"blocks":  s.TotalBlocks,
		"records": s.TotalRecords,
		"errors":  s.TotalErrors,
		"uptime":  time.Since(s.StartTime).Round(time.Second).String(),
	}
	for cat, n := range s.PerCategory {
		fields[cat.String()] = n
	}

	if final {
		logger.WithFields(fields).Info("final statistics")
		for kind, n := range s.ErrorsPerKind {
			logger.WithFields(logrus.Fields{"kind": kind, "count": n}).Info("error kind")
		}
	} else {
		logger.WithFields(fields).Info("statistics")
	}
}
