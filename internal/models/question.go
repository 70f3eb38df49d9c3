package models

import (
	"time"
)

type Question struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Flags     int       `gorm:"default:0" json:"flags"`
	Hidden    bool      `gorm:"default:false" json:"hidden"` // one-way latch, never reset
	Upvotes   int       `gorm:"default:0" json:"upvotes"`
	Downvotes int       `gorm:"default:0" json:"downvotes"`
	CreatedAt time.Time `json:"created_at"`
}

// Score 净得分，用于热门排序
func (q Question) Score() int {
	return q.Upvotes - q.Downvotes
}
