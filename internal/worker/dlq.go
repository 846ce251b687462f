package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// AuditDLQ holds audit jobs that exhausted their re-delivery attempts.
// Entries stay in the list for manual inspection; nothing consumes it.
const AuditDLQ = "dlq:" + QueueAudit

type deadAuditJob struct {
	Payload  json.RawMessage `json:"payload"`
	Reason   string          `json:"reason"`
	FailedAt string          `json:"failed_at"` // ISO 8601
	Attempts int             `json:"attempts"`
}

// parkAuditJob moves a poisoned audit job out of the hot queue so one bad
// payload cannot block the rest of the trail. Best-effort: if the push
// itself fails the job is logged and lost.
func parkAuditJob(ctx context.Context, rdb *redis.Client, payload json.RawMessage, reason string, attempts int) {
	dead := deadAuditJob{
		Payload:  payload,
		Reason:   reason,
		FailedAt: time.Now().UTC().Format(time.RFC3339),
		Attempts: attempts,
	}

	data, err := json.Marshal(dead)
	if err != nil {
		log.Error().Err(err).Msg("audit dlq: failed to marshal entry")
		return
	}
	if err := rdb.LPush(ctx, AuditDLQ, data).Err(); err != nil {
		log.Error().Err(err).Str("key", AuditDLQ).Msg("audit dlq: push failed")
		return
	}

	log.Warn().
		Str("reason", reason).
		Int("attempts", attempts).
		Msg("audit job parked in dead letter queue")
}

// AuditDLQLength reports how many audit jobs are parked, for monitoring.
func AuditDLQLength(ctx context.Context, rdb *redis.Client) (int64, error) {
	return rdb.LLen(ctx, AuditDLQ).Result()
}
