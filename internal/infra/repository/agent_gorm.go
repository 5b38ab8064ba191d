package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/itzlabs/clientdesk/internal/domain/agent"
	"github.com/itzlabs/clientdesk/internal/errs"
	"github.com/itzlabs/clientdesk/internal/models"
)

type AgentGormDirectory struct {
	db *gorm.DB
}

func NewAgentGormDirectory(db *gorm.DB) *AgentGormDirectory {
	return &AgentGormDirectory{db: db}
}

func (r *AgentGormDirectory) List(ctx context.Context) ([]models.Agent, error) {
	var agents []models.Agent
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&agents).Error; err != nil {
		return nil, errs.Persistence("list agents", err)
	}
	return agents, nil
}

func (r *AgentGormDirectory) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Agent{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errs.Persistence("check agent", err)
	}
	return count > 0, nil
}

func (r *AgentGormDirectory) GetByID(ctx context.Context, id uint) (*models.Agent, error) {
	var a models.Agent
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("agent", id)
		}
		return nil, errs.Persistence("get agent", err)
	}
	return &a, nil
}

func (r *AgentGormDirectory) GetByEmail(ctx context.Context, email string) (*models.Agent, error) {
	var a models.Agent
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("agent", 0)
		}
		return nil, errs.Persistence("get agent", err)
	}
	return &a, nil
}

// Compile-time check
var _ domain.Directory = (*AgentGormDirectory)(nil)
