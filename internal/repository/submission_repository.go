package repository

import (
	"pathfinder_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(submission *model.Submission) error {
	return r.DB.Create(submission).Error
}

func (r *SubmissionRepository) FindByUserID(userID string) ([]model.Submission, error) {
	var subs []model.Submission
	err := r.DB.Where("user_id = ?", userID).Order("submitted_at desc").Find(&subs).Error
	return subs, err
}
