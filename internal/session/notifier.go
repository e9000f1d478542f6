package session

import (
	"time"

	"jobclock/internal/logging"
)

// Notifier is told about timer transitions so a system notification (or
// any other surface) can follow the timer. The notification lifecycle
// itself is not this package's concern; it only emits the events.
type Notifier interface {
	TimerStarted(jobID, entryID string, startedAt time.Time)
	TimerStopped(jobID, entryID string)
}

// NopNotifier ignores all timer events.
type NopNotifier struct{}

func (NopNotifier) TimerStarted(jobID, entryID string, startedAt time.Time) {}
func (NopNotifier) TimerStopped(jobID, entryID string)                      {}

// DebugNotifier logs timer events through the debug logger.
type DebugNotifier struct{}

func (DebugNotifier) TimerStarted(jobID, entryID string, startedAt time.Time) {
	logging.Debugf("timer started at %s for job %s (entry %s)\n", startedAt.Format(time.RFC3339), jobID, entryID)
}

func (DebugNotifier) TimerStopped(jobID, entryID string) {
	logging.Debugf("timer stopped for job %s (entry %s)\n", jobID, entryID)
}
