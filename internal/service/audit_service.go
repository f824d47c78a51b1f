package service

import (
	"context"
	"time"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/repository"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/apperrors"
)

type AuditLogResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id,omitempty"`
	Action    string `json:"action"`
	EntityID  string `json:"entity_id,omitempty"`
	Details   string `json:"details,omitempty"`
	CreatedAt string `json:"created_at"`
}

// AuditService exposes the audit trail, newest entries first.
type AuditService interface {
	ListLogs(ctx context.Context, skip, limit int64) ([]AuditLogResponse, int64, error)
}

type auditService struct {
	audit repository.AuditRepository
}

// NewAuditService returns a new instance of AuditService
func NewAuditService(audit repository.AuditRepository) AuditService {
	return &auditService{audit: audit}
}

func (s *auditService) ListLogs(ctx context.Context, skip, limit int64) ([]AuditLogResponse, int64, error) {
	logs, total, err := s.audit.List(ctx, skip, limit)
	if err != nil {
		return nil, 0, apperrors.Storage(err)
	}

	responses := make([]AuditLogResponse, 0, len(logs))
	for _, entry := range logs {
		resp := AuditLogResponse{
			ID:        entry.ID.Hex(),
			Action:    entry.Action,
			EntityID:  entry.EntityID,
			Details:   entry.Details,
			CreatedAt: entry.CreatedAt.Format(time.RFC3339),
		}
		if entry.UserID != nil {
			resp.UserID = entry.UserID.Hex()
		}
		responses = append(responses, resp)
	}
	return responses, total, nil
}
