package repository

import (
	"context"
	"quiz_backend/internal/model"

	"gorm.io/gorm"
)

type UserAnswerRepository struct {
	DB *gorm.DB
}

func NewUserAnswerRepository(db *gorm.DB) *UserAnswerRepository {
	return &UserAnswerRepository{DB: db}
}

func (r *UserAnswerRepository) Create(ctx context.Context, answer *model.UserAnswer) error {
	return r.DB.WithContext(ctx).Create(answer).Error
}

func (r *UserAnswerRepository) Update(ctx context.Context, answer *model.UserAnswer) error {
	return r.DB.WithContext(ctx).Save(answer).Error
}

func (r *UserAnswerRepository) FindByAttemptID(ctx context.Context, attemptID uint) ([]model.UserAnswer, error) {
	var answers []model.UserAnswer
	err := r.DB.WithContext(ctx).Where("quiz_attempt_id = ?", attemptID).Order("id asc").Find(&answers).Error
	return answers, err
}

// FindByAttemptAndQuestion 返回该题最近一次作答
func (r *UserAnswerRepository) FindByAttemptAndQuestion(ctx context.Context, attemptID, questionID uint) (*model.UserAnswer, error) {
	var a model.UserAnswer
	err := r.DB.WithContext(ctx).
		Where("quiz_attempt_id = ? AND question_id = ?", attemptID, questionID).
		Order("id desc").
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}
