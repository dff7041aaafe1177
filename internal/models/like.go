package models

import (
	"time"
)

// Like represents a user's like on a post.
// The combination of PostID and UserID must be unique; the database index
// is the final arbiter under concurrent toggles.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_post_user" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_post_user" json:"user_id"`
	Post      Post      `gorm:"foreignKey:PostID;constraint:OnDelete:RESTRICT" json:"post,omitempty"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"user,omitempty"`
	CreatedAt time.Time `gorm:"not null;<-:create;autoCreateTime:false" json:"created_at"`
}
