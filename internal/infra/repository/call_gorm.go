package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/itzlabs/clientdesk/internal/domain/call"
	"github.com/itzlabs/clientdesk/internal/errs"
	"github.com/itzlabs/clientdesk/internal/models"
)

type CallGormRepository struct {
	db *gorm.DB
}

func NewCallGormRepository(db *gorm.DB) *CallGormRepository {
	return &CallGormRepository{db: db}
}

func (r *CallGormRepository) Insert(
	ctx context.Context,
	c *models.ClientCall,
) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return errs.Persistence("insert call", err)
	}
	return nil
}

func (r *CallGormRepository) GetEntry(
	ctx context.Context,
	id uint,
) (*domain.Entry, error) {

	var entry domain.Entry
	err := r.db.WithContext(ctx).
		Model(&models.ClientCall{}).
		Select("client_calls.*, COALESCE(agents.name, '') AS agent_name").
		Joins("LEFT JOIN agents ON agents.id = client_calls.agent_id").
		Where("client_calls.id = ?", id).
		Take(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("call", id)
		}
		return nil, errs.Persistence("get call", err)
	}
	return &entry, nil
}

func (r *CallGormRepository) ListForClient(
	ctx context.Context,
	clientID uint,
	offset int,
	limit int,
) ([]domain.Entry, error) {

	entries := []domain.Entry{}
	err := r.db.WithContext(ctx).
		Model(&models.ClientCall{}).
		Select("client_calls.*, COALESCE(agents.name, '') AS agent_name").
		Joins("LEFT JOIN agents ON agents.id = client_calls.agent_id").
		Where("client_calls.client_id = ?", clientID).
		Order("client_calls.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, errs.Persistence("list calls", err)
	}
	return entries, nil
}

// Compile-time check
var _ domain.Repository = (*CallGormRepository)(nil)
