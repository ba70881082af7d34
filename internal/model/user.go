package model

import (
	"time"

	"gorm.io/gorm"
)

// swagger:model User
type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Username  string    `gorm:"size:100;not null" json:"username"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	Badges      []UserBadge      `gorm:"foreignKey:UserID" json:"-"`
	Completions []UserCompletion `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = GenerateUUID()
	}
	return nil
}

// UserBadge is one earned badge. The composite unique index is what makes
// badge awards idempotent: awarding is an insert that silently no-ops on
// conflict, never a read-modify-write.
type UserBadge struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID   string    `gorm:"type:varchar(36);uniqueIndex:idx_user_badge;not null" json:"-"`
	Badge    string    `gorm:"size:100;uniqueIndex:idx_user_badge;not null" json:"badge"`
	EarnedAt time.Time `gorm:"autoCreateTime" json:"earned_at"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}

// UserCompletion marks a simulation as completed, with the same add-if-absent
// semantics as UserBadge.
type UserCompletion struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID       string    `gorm:"type:varchar(36);uniqueIndex:idx_user_completion;not null" json:"-"`
	SimulationID string    `gorm:"size:64;uniqueIndex:idx_user_completion;not null" json:"simulation_id"`
	CompletedAt  time.Time `gorm:"autoCreateTime" json:"completed_at"`
}

func (UserCompletion) TableName() string {
	return "user_completions"
}

// UserProfile is the authenticated-user view returned by /auth/me.
// swagger:model UserProfile
type UserProfile struct {
	ID                   string    `json:"id"`
	Email                string    `json:"email"`
	Username             string    `json:"username"`
	SkillBadges          []string  `json:"skill_badges"`
	CompletedSimulations []string  `json:"completed_simulations"`
	CreatedAt            time.Time `json:"created_at"`
}
