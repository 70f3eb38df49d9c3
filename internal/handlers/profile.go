package handlers

import (
	"net/http"

	"askroom/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(conn *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: conn}
}

type profileQuestion struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Flags  int    `json:"flags"`
	Hidden bool   `json:"hidden"`
}

// Show returns the profile summary: the user's questions with their
// moderation state, answer count, and aggregate flags across both.
func (h *ProfileHandler) Show(c *gin.Context) {
	uid := c.Param("uid")

	var user models.User
	if err := h.db.First(&user, "id = ?", uid).Error; err != nil {
		JSONError(c, http.StatusNotFound, "User not found")
		return
	}

	var questions []models.Question
	h.db.Where("user_id = ?", user.ID).Find(&questions)

	summaries := make([]profileQuestion, len(questions))
	flagsTotal := 0
	for i, q := range questions {
		summaries[i] = profileQuestion{ID: q.ID, Title: q.Title, Flags: q.Flags, Hidden: q.Hidden}
		flagsTotal += q.Flags
	}

	var answerCount int64
	h.db.Model(&models.Answer{}).Where("user_id = ?", user.ID).Count(&answerCount)

	var answerFlags int64
	h.db.Model(&models.Answer{}).Where("user_id = ?", user.ID).
		Select("COALESCE(SUM(flags), 0)").Scan(&answerFlags)

	c.JSON(http.StatusOK, gin.H{
		"name":            user.Name,
		"email":           user.Email,
		"questions":       summaries,
		"answers":         answerCount,
		"flags_total":     flagsTotal + int(answerFlags),
		"questions_count": len(questions),
	})
}
