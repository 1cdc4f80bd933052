package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskSessionsPurge removes expired session audit rows.
	TaskSessionsPurge = "sessions:purge"
)

// SessionsPurgePayload carries purge task parameters.
type SessionsPurgePayload struct {
	Reason string `json:"reason"`
}

// NewSessionsPurgeTask constructs an Asynq task.
func NewSessionsPurgeTask(reason string) (*asynq.Task, error) {
	data, err := json.Marshal(SessionsPurgePayload{Reason: reason})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskSessionsPurge, data), nil
}

// SessionPurger is the slice of the auth service the purge job needs.
type SessionPurger interface {
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// SessionsPurgeJob deletes expired session audit rows.
type SessionsPurgeJob struct {
	purger SessionPurger
	logger *slog.Logger
}

// NewSessionsPurgeJob constructs the job.
func NewSessionsPurgeJob(purger SessionPurger, logger *slog.Logger) *SessionsPurgeJob {
	return &SessionsPurgeJob{purger: purger, logger: logger}
}

// Handle processes TaskSessionsPurge tasks.
func (j *SessionsPurgeJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload SessionsPurgePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	removed, err := j.purger.PurgeExpiredSessions(ctx)
	if err != nil {
		return err
	}
	if j.logger != nil {
		j.logger.Info("purged expired sessions",
			slog.Int64("removed", removed),
			slog.String("reason", payload.Reason))
	}
	return nil
}
