package repository

import (
	"context"
	"quiz_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuizAttemptRepository struct {
	DB *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) *QuizAttemptRepository {
	return &QuizAttemptRepository{DB: db}
}

func (r *QuizAttemptRepository) Create(ctx context.Context, attempt *model.QuizAttempt) error {
	return r.DB.WithContext(ctx).Create(attempt).Error
}

func (r *QuizAttemptRepository) Update(ctx context.Context, attempt *model.QuizAttempt) error {
	return r.DB.WithContext(ctx).Save(attempt).Error
}

func (r *QuizAttemptRepository) FindByID(ctx context.Context, id uint) (*model.QuizAttempt, error) {
	var a model.QuizAttempt
	if err := r.DB.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByIDForUpdate 加行锁读取，需在事务内调用；sqlite 下锁子句被忽略
func (r *QuizAttemptRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.QuizAttempt, error) {
	var a model.QuizAttempt
	err := r.DB.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *QuizAttemptRepository) ListByUser(ctx context.Context, userID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time desc, id desc").
		Find(&attempts).Error
	return attempts, err
}
