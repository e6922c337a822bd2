package repository

import (
	"context"
	"quiz_backend/internal/model"

	"gorm.io/gorm"
)

type SubjectRepository struct {
	DB *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{DB: db}
}

func (r *SubjectRepository) FindAll(ctx context.Context) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.DB.WithContext(ctx).Order("id asc").Find(&subjects).Error
	return subjects, err
}

func (r *SubjectRepository) FindByID(ctx context.Context, id uint) (*model.Subject, error) {
	var s model.Subject
	if err := r.DB.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// FindByIDs 一次性加载多个学科，未命中的 id 直接忽略
func (r *SubjectRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Subject, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var subjects []model.Subject
	err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&subjects).Error
	return subjects, err
}
