package repository

import (
	"context"
	"quiz_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var q model.Question
	if err := r.DB.WithContext(ctx).First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) FindByQuizID(ctx context.Context, quizID uint) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.WithContext(ctx).Where("quiz_id = ?", quizID).Order("id asc").Find(&qs).Error
	return qs, err
}

// FindByQuizIDOrdered 按学科分组，组内按题号升序
func (r *QuestionRepository) FindByQuizIDOrdered(ctx context.Context, quizID uint) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("subject_id asc, order_num asc, id asc").
		Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) FindByQuizIDAndSubjectID(ctx context.Context, quizID, subjectID uint) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.WithContext(ctx).
		Where("quiz_id = ? AND subject_id = ?", quizID, subjectID).
		Order("order_num asc, id asc").
		Find(&qs).Error
	return qs, err
}

type QuestionOptionRepository struct {
	DB *gorm.DB
}

func NewQuestionOptionRepository(db *gorm.DB) *QuestionOptionRepository {
	return &QuestionOptionRepository{DB: db}
}

func (r *QuestionOptionRepository) FindByID(ctx context.Context, id uint) (*model.QuestionOption, error) {
	var o model.QuestionOption
	if err := r.DB.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *QuestionOptionRepository) FindByQuestionID(ctx context.Context, questionID uint) ([]model.QuestionOption, error) {
	var opts []model.QuestionOption
	err := r.DB.WithContext(ctx).Where("question_id = ?", questionID).Order("id asc").Find(&opts).Error
	return opts, err
}
