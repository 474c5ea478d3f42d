package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "yeohaeng/internal/models/db_models"
	"yeohaeng/internal/models/request_models"
	resp "yeohaeng/internal/models/response_models"
	"yeohaeng/pkg/utils"
)

type PlanRecordRepository interface {
	// CreateProcessing writes a new record in "processing" state and
	// returns its generated id (async entry point).
	CreateProcessing(ctx context.Context, req request_models.TravelRequest) (uuid.UUID, error)

	// CreateCompleted writes request and finished plan as one record
	// (sync entry point).
	CreateCompleted(ctx context.Context, req request_models.TravelRequest, plan *resp.ItineraryPlan) (uuid.UUID, error)

	// MarkCompleted / MarkFailed overwrite the same record, never append.
	MarkCompleted(ctx context.Context, id uuid.UUID, plan *resp.ItineraryPlan) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error

	// GetById returns (nil, nil) when no record exists.
	GetById(ctx context.Context, planId string) (*dbm.PlanRecord, error)
}

type planRecordRepository struct {
	db *gorm.DB
}

func NewPlanRecordRepository(db *gorm.DB) PlanRecordRepository {
	return &planRecordRepository{db: db}
}

func (r *planRecordRepository) CreateProcessing(ctx context.Context, req request_models.TravelRequest) (uuid.UUID, error) {
	if r.db == nil {
		return uuid.Nil, utils.ErrStoreNotInitialized
	}

	record := dbm.PlanRecord{
		Status:  dbm.PlanStatusProcessing,
		Request: req,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return uuid.Nil, err
	}
	return record.ID, nil
}

func (r *planRecordRepository) CreateCompleted(ctx context.Context, req request_models.TravelRequest, plan *resp.ItineraryPlan) (uuid.UUID, error) {
	if r.db == nil {
		return uuid.Nil, utils.ErrStoreNotInitialized
	}

	record := dbm.PlanRecord{
		Status:  dbm.PlanStatusCompleted,
		Request: req,
		Plan:    plan,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return uuid.Nil, err
	}
	return record.ID, nil
}

func (r *planRecordRepository) MarkCompleted(ctx context.Context, id uuid.UUID, plan *resp.ItineraryPlan) error {
	if r.db == nil {
		return utils.ErrStoreNotInitialized
	}

	return r.db.WithContext(ctx).
		Model(&dbm.PlanRecord{}).
		Where("id = ?", id).
		Updates(dbm.PlanRecord{Status: dbm.PlanStatusCompleted, Plan: plan}).Error
}

func (r *planRecordRepository) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	if r.db == nil {
		return utils.ErrStoreNotInitialized
	}

	return r.db.WithContext(ctx).
		Model(&dbm.PlanRecord{}).
		Where("id = ?", id).
		Updates(dbm.PlanRecord{Status: dbm.PlanStatusFailed, Error: message}).Error
}

func (r *planRecordRepository) GetById(ctx context.Context, planId string) (*dbm.PlanRecord, error) {
	if r.db == nil {
		return nil, utils.ErrStoreNotInitialized
	}

	if _, err := uuid.Parse(planId); err != nil {
		return nil, nil
	}

	var record dbm.PlanRecord
	err := r.db.WithContext(ctx).
		Where("id = ?", planId).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}
