package ranking

import (
	"sort"

	"askroom/internal/models"
)

// TopLimit caps the hot-question listing.
const TopLimit = 50

// TopQuestions orders questions by net score (upvotes - downvotes)
// descending and returns at most TopLimit entries. The sort is stable, so
// equal scores keep the store's return order.
func TopQuestions(questions []models.Question) []models.Question {
	ranked := make([]models.Question, len(questions))
	copy(ranked, questions)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score() > ranked[j].Score()
	})
	if len(ranked) > TopLimit {
		ranked = ranked[:TopLimit]
	}
	return ranked
}

// roleTier: AI answers first, then mentors, then everyone else.
func roleTier(role string) int {
	switch role {
	case models.RoleAI:
		return 0
	case models.RoleMentor:
		return 1
	default:
		return 2
	}
}

// SortAnswers orders answers by role tier, newest first within each tier.
func SortAnswers(answers []models.Answer) []models.Answer {
	ranked := make([]models.Answer, len(answers))
	copy(ranked, answers)
	sort.SliceStable(ranked, func(i, j int) bool {
		ti, tj := roleTier(ranked[i].Role), roleTier(ranked[j].Role)
		if ti != tj {
			return ti < tj
		}
		return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
	})
	return ranked
}
