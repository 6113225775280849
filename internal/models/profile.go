package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile rows are hard-deleted so a removed username (and its user's slot)
// is immediately reusable under the unique indexes.
type Profile struct {
	ID          uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Username    string     `gorm:"size:50;not null;uniqueIndex" json:"username"`
	FirstName   string     `gorm:"size:50;not null" json:"first_name"`
	LastName    string     `gorm:"size:50;not null" json:"last_name"`
	Bio         string     `gorm:"type:text" json:"bio"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Location    string     `gorm:"size:255" json:"location"`
	Phone       string     `gorm:"size:20" json:"phone"`
	AvatarURL   string     `gorm:"size:255" json:"avatar_url"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// FullName is used in follow/unfollow confirmation messages.
func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Follow is a directed edge: follower subscribes to following. The composite
// unique index backs up the lookup-before-create done in the service layer.
type Follow struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	FollowerID  uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_follows_edge" json:"follower_id"`
	FollowingID uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_follows_edge" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (f *Follow) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
