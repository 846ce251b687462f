package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/raweer420/CRMBUTECO/internal/domain"
	"github.com/raweer420/CRMBUTECO/internal/dto"
	"github.com/raweer420/CRMBUTECO/internal/repository"
)

type AuditService interface {
	List(ctx context.Context, actor Actor, filter dto.AuditFilter) (*dto.AuditListResponse, error)
}

type auditService struct {
	repo repository.AuditRepository
}

func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) List(ctx context.Context, actor Actor, filter dto.AuditFilter) (*dto.AuditListResponse, error) {
	if !actor.Caps.CanViewAudit {
		return nil, domain.NewValidationError("sem permissão para consultar auditoria")
	}

	logs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		entry := &logs[i]
		out = append(out, dto.AuditLogResponse{
			ID:          entry.ID.String(),
			ActorUserID: entry.ActorUserID.String(),
			Action:      entry.Action,
			Entity:      entry.Entity,
			EntityID:    entry.EntityID,
			Before:      json.RawMessage(entry.BeforeJSON),
			After:       json.RawMessage(entry.AfterJSON),
			CreatedAt:   entry.CreatedAt.Format(time.RFC3339),
		})
	}

	return &dto.AuditListResponse{
		Data:  out,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}
