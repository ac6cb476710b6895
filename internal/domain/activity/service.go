// Package activity keeps a bounded, most-recent-first audit trail of user
// actions. The log is global: it is not part of any workspace snapshot and
// survives workspace switches.
package activity

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/zenith-sms/zenith/internal/mirror"
)

// MaxEntries bounds the log; older entries are dropped.
const MaxEntries = 50

// Service handles activity log operations.
type Service struct {
	log    *mirror.Mirror[[]Activity]
	logger *slog.Logger
}

// NewService creates a new activity service over the persisted log mirror.
func NewService(log *mirror.Mirror[[]Activity], logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{log: log, logger: logger}
}

// Add prepends a new entry and truncates the log to MaxEntries.
func (s *Service) Add(action, details string) error {
	entry := Activity{
		ID:        time.Now().UnixMilli(),
		Action:    action,
		Details:   details,
		Timestamp: time.Now(),
	}

	err := s.log.Update(func(prev []Activity) []Activity {
		next := make([]Activity, 0, len(prev)+1)
		next = append(next, entry)
		next = append(next, prev...)
		if len(next) > MaxEntries {
			next = next[:MaxEntries]
		}
		return next
	})
	if err != nil {
		return fmt.Errorf("recording activity: %w", err)
	}

	s.logger.Debug("activity recorded", "action", action)
	return nil
}

// Recent returns up to limit entries, most recent first. A non-positive
// limit returns the whole log.
func (s *Service) Recent(limit int) []Activity {
	entries := s.log.Get()
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
