package models

import (
	"time"
)

// Answer roles. RoleAI answers are authored by the system (UserID 0),
// created at most once per question at ask time.
const (
	RoleStudent = "student"
	RoleMentor  = "mentor"
	RoleAI      = "ai"
)

type Answer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	Body       string    `gorm:"type:text" json:"body"`
	UserID     uint      `gorm:"index" json:"user_id"`
	Role       string    `gorm:"size:10;default:'student'" json:"role"`
	Flags      int       `gorm:"default:0" json:"flags"`
	Hidden     bool      `gorm:"default:false" json:"hidden"`
	Upvotes    int       `gorm:"default:0" json:"upvotes"`
	Downvotes  int       `gorm:"default:0" json:"downvotes"`
	CreatedAt  time.Time `json:"created_at"`
}
