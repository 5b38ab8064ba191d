package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/itzlabs/clientdesk/internal/domain/client"
	"github.com/itzlabs/clientdesk/internal/errs"
	"github.com/itzlabs/clientdesk/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *ClientGormRepository) Create(
	ctx context.Context,
	c *models.Client,
) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return errs.Persistence("create client", err)
	}
	return nil
}

// --------------------------------------------------
// Get
// --------------------------------------------------

func (r *ClientGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("client", id)
		}
		return nil, errs.Persistence("get client", err)
	}
	return &c, nil
}

// --------------------------------------------------
// Update
// --------------------------------------------------

func (r *ClientGormRepository) Update(
	ctx context.Context,
	id uint,
	p domain.UpdatePayload,
	expected *time.Time,
) (*models.Client, error) {

	if err := p.Validate(); err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", id)
	if expected != nil {
		q = q.Where("updated_at = ?", *expected)
	}

	res := q.Updates(p.Changes(time.Now()))
	if res.Error != nil {
		return nil, errs.Persistence("update client", res.Error)
	}

	if res.RowsAffected == 0 {
		// distinguish "gone" from "stale precondition"
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&models.Client{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return nil, errs.Persistence("update client", err)
		}
		if count == 0 {
			return nil, errs.NotFound("client", id)
		}
		return nil, errs.Conflict("client", id)
	}

	return r.GetByID(ctx, id)
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

func (r *ClientGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Client{}, id)
	if res.Error != nil {
		return errs.Persistence("delete client", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("client", id)
	}
	return nil
}

// --------------------------------------------------
// List / export
// --------------------------------------------------

func (r *ClientGormRepository) List(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Client, error) {

	limit := f.Limit
	if limit <= 0 || limit > domain.DefaultListLimit {
		limit = domain.DefaultListLimit
	}

	q := r.db.WithContext(ctx).Model(&models.Client{})
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}
	if f.MeetingWindow {
		since := time.Now().AddDate(0, 0, -domain.MeetingWindowDays)
		q = q.Where("meeting_slot IS NOT NULL AND meeting_slot >= ?", since)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Find(&clients).Error; err != nil {
		return nil, errs.Persistence("list clients", err)
	}
	return clients, nil
}

func (r *ClientGormRepository) ListAll(
	ctx context.Context,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&clients).Error; err != nil {
		return nil, errs.Persistence("export clients", err)
	}
	return clients, nil
}

// --------------------------------------------------
// Aggregate
// --------------------------------------------------

func (r *ClientGormRepository) Aggregate(
	ctx context.Context,
) (*domain.Aggregate, error) {

	var agg domain.Aggregate
	db := r.db.WithContext(ctx).Model(&models.Client{})

	if err := db.Session(&gorm.Session{}).
		Count(&agg.TotalClients).Error; err != nil {
		return nil, errs.Persistence("aggregate clients", err)
	}

	paid := struct {
		Cnt     int64
		Revenue float64
	}{}
	if err := db.Session(&gorm.Session{}).
		Select("COUNT(*) AS cnt, COALESCE(SUM(package_price), 0) AS revenue").
		Where("status = ?", string(domain.StatusPaid)).
		Scan(&paid).Error; err != nil {
		return nil, errs.Persistence("aggregate clients", err)
	}
	agg.PaidClients = paid.Cnt
	agg.RevenuePaid = paid.Revenue

	if err := db.Session(&gorm.Session{}).
		Where("status = ?", string(domain.StatusPending)).
		Count(&agg.PendingClients).Error; err != nil {
		return nil, errs.Persistence("aggregate clients", err)
	}

	since := time.Now().AddDate(0, 0, -domain.MeetingWindowDays)
	if err := db.Session(&gorm.Session{}).
		Where("meeting_slot IS NOT NULL AND meeting_slot >= ?", since).
		Count(&agg.Meetings30d).Error; err != nil {
		return nil, errs.Persistence("aggregate clients", err)
	}

	return &agg, nil
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *ClientGormRepository) WithTx(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ClientGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
