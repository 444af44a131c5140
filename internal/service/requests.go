package service

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Request bodies for the collection mutations. Blank required text is
// handled as a silent no-op by the services, so only shape-level
// constraints (enums) are enforced here.

type HabitRequest struct {
	Title string `json:"title"`
}

type JournalRequest struct {
	Content string `json:"content"`
}

type RuleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type InsightRequest struct {
	Context string `json:"context" validate:"required"`
	Kind    string `json:"kind" validate:"required,oneof=HABIT JOURNAL ORDER"`
}

func ValidateInsightRequest(req *InsightRequest) error {
	return validate.Struct(req)
}

func ValidateProtocolRequest(req *ProtocolRequest) error {
	return validate.Struct(req)
}
