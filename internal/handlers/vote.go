package handlers

import (
	"errors"
	"net/http"

	"askroom/internal/models"
	"askroom/internal/moderation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// VoteHandler serves the flag and vote endpoints. Counter updates are
// atomic column increments so concurrent requests never lose updates.
type VoteHandler struct {
	db *gorm.DB
}

func NewVoteHandler(conn *gorm.DB) *VoteHandler {
	return &VoteHandler{db: conn}
}

var errTargetNotFound = errors.New("target not found")

// bump increments one counter column on the resolved target row and
// returns the updated row scanned into dest (*models.Question or
// *models.Answer).
func bump(tx *gorm.DB, target models.TargetType, id uint, column string, dest interface{}) error {
	var query *gorm.DB
	switch target {
	case models.TargetQuestion:
		query = tx.Model(&models.Question{})
	case models.TargetAnswer:
		query = tx.Model(&models.Answer{})
	}

	res := query.Where("id = ?", id).UpdateColumn(column, gorm.Expr(column+" + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errTargetNotFound
	}
	return tx.First(dest, id).Error
}

// Flag increments the flag counter; at the threshold the target is hidden
// for good (there is no unhide path).
func (h *VoteHandler) Flag(c *gin.Context) {
	var req struct {
		TargetType string `json:"target_type" binding:"required"`
		TargetID   uint   `json:"target_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	target, err := models.ParseTargetType(req.TargetType)
	if err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var flags int
	var hidden bool
	err = h.db.Transaction(func(tx *gorm.DB) error {
		switch target {
		case models.TargetQuestion:
			var q models.Question
			if err := bump(tx, target, req.TargetID, "flags", &q); err != nil {
				return err
			}
			flags, hidden = q.Flags, q.Hidden
			if moderation.ShouldHide(flags) && !hidden {
				if err := tx.Model(&q).UpdateColumn("hidden", true).Error; err != nil {
					return err
				}
				hidden = true
			}
		case models.TargetAnswer:
			var a models.Answer
			if err := bump(tx, target, req.TargetID, "flags", &a); err != nil {
				return err
			}
			flags, hidden = a.Flags, a.Hidden
			if moderation.ShouldHide(flags) && !hidden {
				if err := tx.Model(&a).UpdateColumn("hidden", true).Error; err != nil {
					return err
				}
				hidden = true
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errTargetNotFound) {
			JSONError(c, http.StatusNotFound, "Not found")
		} else {
			JSONError(c, http.StatusInternalServerError, "Flag failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "flags": flags, "hidden": hidden})
}

// Vote applies a fixed-step vote: a positive delta adds one upvote, zero
// or negative adds one downvote. The magnitude is ignored.
func (h *VoteHandler) Vote(c *gin.Context) {
	var req struct {
		TargetType string `json:"target_type" binding:"required"`
		TargetID   uint   `json:"target_id" binding:"required"`
		Delta      int    `json:"delta"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	target, err := models.ParseTargetType(req.TargetType)
	if err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	column := "downvotes"
	if req.Delta > 0 {
		column = "upvotes"
	}

	var upvotes, downvotes int
	switch target {
	case models.TargetQuestion:
		var q models.Question
		err = bump(h.db, target, req.TargetID, column, &q)
		upvotes, downvotes = q.Upvotes, q.Downvotes
	case models.TargetAnswer:
		var a models.Answer
		err = bump(h.db, target, req.TargetID, column, &a)
		upvotes, downvotes = a.Upvotes, a.Downvotes
	}
	if err != nil {
		if errors.Is(err, errTargetNotFound) {
			JSONError(c, http.StatusNotFound, "Not found")
		} else {
			JSONError(c, http.StatusInternalServerError, "Vote failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "upvotes": upvotes, "downvotes": downvotes})
}
