package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hudacentre/fundraiser-rota/pkg/core/model"
)

// RoleStore defines the board operations needed for role intents
type RoleStore interface {
	Roles() []model.RoleDefinition
	AddRole(role model.RoleDefinition)
}

// AddRole appends a new role definition to the role set. Roles are
// immutable once created and are never deleted. Duplicate labels are
// permitted; lookups resolve to the first definition.
func AddRole(ctx context.Context, store RoleStore, logger *zap.Logger, label string, minVolunteers int) (model.RoleDefinition, error) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return model.RoleDefinition{}, fmt.Errorf("role label is required")
	}
	if minVolunteers < 0 {
		return model.RoleDefinition{}, fmt.Errorf("minimum volunteers must not be negative, got %d", minVolunteers)
	}

	role := model.RoleDefinition{
		ID:            uuid.New().String(),
		Label:         trimmed,
		MinVolunteers: minVolunteers,
	}
	store.AddRole(role)

	logger.Info("Role added",
		zap.String("role_id", role.ID),
		zap.String("label", role.Label),
		zap.Int("min_volunteers", role.MinVolunteers))

	return role, nil
}
