package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/raweer420/CRMBUTECO/internal/model"
	"github.com/raweer420/CRMBUTECO/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueAudit = "jobs:audit"

	// maxAuditAttempts bounds re-delivery before a job lands in the DLQ.
	maxAuditAttempts = 3
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// AuditJob carries one audit record from the request path to the pool.
// Before/After are pre-marshaled snapshots; the worker stores them verbatim.
type AuditJob struct {
	ActorUserID string          `json:"actor_user_id"`
	Action      string          `json:"action"`
	Entity      string          `json:"entity"`
	EntityID    *string         `json:"entity_id,omitempty"`
	Before      json.RawMessage `json:"before,omitempty"`
	After       json.RawMessage `json:"after,omitempty"`
	At          time.Time       `json:"at"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueAudit pushes an audit record job to Redis. Best-effort: callers
// ignore the error so a Redis hiccup never fails the business operation.
func (d *Dispatcher) EnqueueAudit(ctx context.Context, payload AuditJob) error {
	if payload.At.IsZero() {
		payload.At = time.Now()
	}
	return d.enqueue(ctx, QueueAudit, "audit", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// Pool drains the audit queue and persists records through the repository.
type Pool struct {
	rdb       *redis.Client
	auditRepo repository.AuditRepository
}

func NewPool(rdb *redis.Client, auditRepo repository.AuditRepository) *Pool {
	return &Pool{rdb: rdb, auditRepo: auditRepo}
}

// Start launches numWorkers goroutines consuming the audit queue.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func (p *Pool) Start(ctx context.Context, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go p.runWorker(ctx, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func (p *Pool) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := p.rdb.BRPop(ctx, 5*time.Second, QueueAudit).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			p.processJob(ctx, result[0], result[1])
		}
	}
}

func (p *Pool) processJob(ctx context.Context, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	if err := p.handleAudit(ctx, job.Payload); err != nil {
		job.Attempts++
		if job.Attempts >= maxAuditAttempts {
			parkAuditJob(ctx, p.rdb, job.Payload, err.Error(), job.Attempts)
			return
		}
		log.Warn().
			Str("type", job.Type).
			Int("attempts", job.Attempts).
			Err(err).
			Msg("audit job failed, requeueing")
		if encoded, mErr := json.Marshal(job); mErr == nil {
			_ = p.rdb.LPush(ctx, queue, encoded).Err()
		}
	}
}

func (p *Pool) handleAudit(ctx context.Context, payload json.RawMessage) error {
	var aj AuditJob
	if err := json.Unmarshal(payload, &aj); err != nil {
		return err
	}
	actorID, err := uuid.Parse(aj.ActorUserID)
	if err != nil {
		return err
	}
	entry := model.AuditLog{
		ActorUserID: actorID,
		Action:      aj.Action,
		Entity:      aj.Entity,
		EntityID:    aj.EntityID,
		BeforeJSON:  []byte(aj.Before),
		AfterJSON:   []byte(aj.After),
		CreatedAt:   aj.At,
	}
	return p.auditRepo.Create(ctx, &entry)
}
