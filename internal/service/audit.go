package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/raweer420/CRMBUTECO/internal/worker"
)

// auditViaDispatcher queues one audit record. Best-effort by contract: a
// Redis hiccup must never fail the business operation that triggered it.
func auditViaDispatcher(ctx context.Context, d *worker.Dispatcher, actor Actor, action, entity, entityID string, before, after map[string]interface{}) {
	if d == nil {
		return
	}
	job := worker.AuditJob{
		ActorUserID: actor.UserID.String(),
		Action:      action,
		Entity:      entity,
		EntityID:    &entityID,
		At:          time.Now(),
	}
	if before != nil {
		if data, err := json.Marshal(before); err == nil {
			job.Before = data
		}
	}
	if after != nil {
		if data, err := json.Marshal(after); err == nil {
			job.After = data
		}
	}
	_ = d.EnqueueAudit(ctx, job)
}
