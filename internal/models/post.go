// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a blog post. CreatedAt is written once at creation;
// UpdatedAt is assigned by the service layer on every create and update.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"not null;size:255" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	// ImagePath is nil when the post has no image.
	ImagePath *string   `gorm:"size:512" json:"image_path,omitempty"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"user,omitempty"`
	CreatedAt time.Time `gorm:"not null;<-:create;autoCreateTime:false" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}
