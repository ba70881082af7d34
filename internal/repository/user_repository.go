package repository

import (
	"pathfinder_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, "id = ?", id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) ListBadges(userID string) ([]string, error) {
	var badges []string
	err := r.DB.Model(&model.UserBadge{}).
		Where("user_id = ?", userID).
		Order("earned_at").
		Pluck("badge", &badges).Error
	return badges, err
}

func (r *UserRepository) ListCompletions(userID string) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.UserCompletion{}).
		Where("user_id = ?", userID).
		Order("completed_at").
		Pluck("simulation_id", &ids).Error
	return ids, err
}

// AwardBadge adds the badge and the completed simulation to the user's sets.
// Both inserts no-op on conflict, so concurrent correct submissions for the
// same user/exercise award the badge at most once. Returns whether the badge
// row was actually inserted.
func (r *UserRepository) AwardBadge(userID, badge, simulationID string) (bool, error) {
	awarded := false
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.UserBadge{UserID: userID, Badge: badge})
		if res.Error != nil {
			return res.Error
		}
		awarded = res.RowsAffected > 0

		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.UserCompletion{UserID: userID, SimulationID: simulationID}).Error
	})
	return awarded, err
}
