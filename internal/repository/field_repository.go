package repository

import (
	"pathfinder_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FieldRepository struct {
	DB *gorm.DB
}

func NewFieldRepository(db *gorm.DB) *FieldRepository {
	return &FieldRepository{DB: db}
}

func (r *FieldRepository) FindAll() ([]model.Field, error) {
	var fields []model.Field
	err := r.DB.Order("id").Find(&fields).Error
	return fields, err
}

func (r *FieldRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Field{}).Count(&count).Error
	return count, err
}

// InsertIfAbsent seeds fields idempotently; existing records are untouched.
func (r *FieldRepository) InsertIfAbsent(fields []model.Field) (int, error) {
	inserted := 0
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		for i := range fields {
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fields[i])
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				inserted++
			}
		}
		return nil
	})
	return inserted, err
}
