package models

import (
	"errors"
)

// TargetType names the row a flag or vote applies to. Requests carry it as
// a string; handlers resolve it once and branch on the concrete model from
// then on.
type TargetType int

const (
	TargetQuestion TargetType = iota
	TargetAnswer
)

var ErrUnknownTarget = errors.New("target_type must be \"question\" or \"answer\"")

func ParseTargetType(s string) (TargetType, error) {
	switch s {
	case "question":
		return TargetQuestion, nil
	case "answer":
		return TargetAnswer, nil
	default:
		return 0, ErrUnknownTarget
	}
}
