package dto

import "encoding/json"

// AuditFilter is bound from the query string of GET /v1/audit.
type AuditFilter struct {
	Entity string `form:"entity"`
	Action string `form:"action"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type AuditLogResponse struct {
	ID          string          `json:"id"`
	ActorUserID string          `json:"actor_user_id"`
	Action      string          `json:"action"`
	Entity      string          `json:"entity"`
	EntityID    *string         `json:"entity_id,omitempty"`
	Before      json.RawMessage `json:"before,omitempty"`
	After       json.RawMessage `json:"after,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

type AuditListResponse struct {
	Data  []AuditLogResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
