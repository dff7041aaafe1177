// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// MaxCommentLen is the maximum accepted comment length in characters.
const MaxCommentLen = 2000

// Comment represents a comment on a post.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"not null;size:2000" json:"content"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Post      Post      `gorm:"foreignKey:PostID;constraint:OnDelete:RESTRICT" json:"post,omitempty"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"user,omitempty"`
	CreatedAt time.Time `gorm:"not null;<-:create;autoCreateTime:false" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}
