package moderation

import (
	"strings"
)

// HideThreshold is the flag count at which content disappears from
// listings. Auto-flagged questions are created at the threshold directly.
const HideThreshold = 3

// Policy matches submitted text against a fixed banned-term list.
type Policy struct {
	terms []string
}

func NewPolicy(terms []string) *Policy {
	lowered := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			lowered = append(lowered, t)
		}
	}
	return &Policy{terms: lowered}
}

// IsFlagged reports whether text contains any banned term,
// case-insensitively.
func (p *Policy) IsFlagged(text string) bool {
	if text == "" {
		return false
	}
	t := strings.ToLower(text)
	for _, bad := range p.terms {
		if strings.Contains(t, bad) {
			return true
		}
	}
	return false
}

// ShouldHide is the threshold check applied after an explicit flag
// increment. Hiding is a one-way latch; callers never un-hide.
func ShouldHide(flags int) bool {
	return flags >= HideThreshold
}
