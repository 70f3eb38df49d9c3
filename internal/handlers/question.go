package handlers

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"askroom/internal/models"
	"askroom/internal/moderation"
	"askroom/internal/ranking"
	"askroom/internal/services"
	"askroom/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type QuestionHandler struct {
	db        *gorm.DB
	policy    *moderation.Policy
	generator *services.Generator
}

func NewQuestionHandler(conn *gorm.DB, policy *moderation.Policy, generator *services.Generator) *QuestionHandler {
	return &QuestionHandler{db: conn, policy: policy, generator: generator}
}

type questionView struct {
	models.Question
	BodyHTML template.HTML `json:"body_html"`
}

type answerView struct {
	models.Answer
	BodyHTML template.HTML `json:"body_html"`
}

// List returns all visible questions.
func (h *QuestionHandler) List(c *gin.Context) {
	var questions []models.Question
	h.db.Where("hidden = ?", false).Find(&questions)
	c.JSON(http.StatusOK, questions)
}

// Top returns the visible questions ranked by net score, capped at 50.
func (h *QuestionHandler) Top(c *gin.Context) {
	var questions []models.Question
	h.db.Where("hidden = ?", false).Find(&questions)
	c.JSON(http.StatusOK, ranking.TopQuestions(questions))
}

// Detail returns a question by id (direct lookup, hidden included) with
// its visible answers ranked ai > mentor > student, newest first per tier.
func (h *QuestionHandler) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		JSONError(c, http.StatusNotFound, "Not found")
		return
	}

	var question models.Question
	if err := h.db.First(&question, id).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Not found")
		return
	}

	var answers []models.Answer
	h.db.Where("question_id = ? AND hidden = ?", question.ID, false).Find(&answers)

	ranked := ranking.SortAnswers(answers)
	views := make([]answerView, len(ranked))
	for i, a := range ranked {
		views[i] = answerView{Answer: a, BodyHTML: utils.RenderMarkdown(a.Body)}
	}

	c.JSON(http.StatusOK, gin.H{
		"question": questionView{Question: question, BodyHTML: utils.RenderMarkdown(question.Body)},
		"answers":  views,
	})
}

// Ask creates a question. Banned-term content is created already hidden at
// the flag threshold and gets no AI answer; everything else gets exactly
// one ai-role answer generated synchronously before the response.
func (h *QuestionHandler) Ask(c *gin.Context) {
	var req struct {
		Title  string `json:"title"`
		Body   string `json:"body"`
		UserID uint   `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	title := strings.TrimSpace(req.Title)
	body := strings.TrimSpace(req.Body)
	if title == "" {
		JSONError(c, http.StatusBadRequest, "Title required")
		return
	}

	question := models.Question{
		Title:  title,
		Body:   body,
		UserID: req.UserID,
	}
	if h.policy.IsFlagged(title) || h.policy.IsFlagged(body) {
		question.Flags = moderation.HideThreshold
		question.Hidden = true
	}

	if err := h.db.Create(&question).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to create question")
		return
	}

	if !question.Hidden {
		// Blocks this request for up to the generator timeout; failures
		// come back as placeholder text, never as an error.
		aiAnswer := models.Answer{
			QuestionID: question.ID,
			Body:       h.generator.Generate(title, body),
			UserID:     0,
			Role:       models.RoleAI,
		}
		h.db.Create(&aiAnswer)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": question.ID})
}

type answerCreated struct {
	OK bool `json:"ok"`
	models.Answer
}

// Answer posts a peer or mentor answer to an existing question.
func (h *QuestionHandler) Answer(c *gin.Context) {
	var req struct {
		QuestionID uint   `json:"question_id" binding:"required"`
		Body       string `json:"body"`
		UserID     uint   `json:"user_id"`
		Role       string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var question models.Question
	if err := h.db.First(&question, req.QuestionID).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Question not found")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}

	answer := models.Answer{
		QuestionID: req.QuestionID,
		Body:       strings.TrimSpace(req.Body),
		UserID:     req.UserID,
		Role:       role,
	}
	if err := h.db.Create(&answer).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to create answer")
		return
	}

	c.JSON(http.StatusOK, answerCreated{OK: true, Answer: answer})
}
