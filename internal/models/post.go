package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	// MinPostLen is the minimum post content length in characters.
	MinPostLen = 14
	// MaxPostLen is the maximum post content length in characters.
	MaxPostLen = 1000
	// MaxCommentLen is the maximum comment length in characters.
	MaxCommentLen = 300
)

// Post represents a post in the Linkup application.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID" json:"user"`
	Content string `gorm:"type:text;not null" json:"content"`
	Shares  int    `gorm:"not null;default:0" json:"shares"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked     bool           `gorm:"->" json:"liked"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// FeedPost is the feed projection of a post with the author resolved to
// the public-safe summary.
type FeedPost struct {
	ID            uint        `json:"id"`
	Author        UserSummary `json:"author"`
	Content       string      `json:"content"`
	Shares        int         `json:"shares"`
	LikesCount    int         `json:"likes_count"`
	CommentsCount int         `json:"comments_count"`
	CreatedAt     time.Time   `json:"created_at"`
}

// FeedPage is one page of an assembled feed.
type FeedPage struct {
	Posts      []FeedPost `json:"posts"`
	Page       int        `json:"page"`
	TotalPages int        `json:"totalPages"`
	TotalPosts int64      `json:"totalPosts"`
}
