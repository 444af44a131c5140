package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/yourname/axis/internal"
	"github.com/yourname/axis/internal/storage"
)

// AddRule appends a rule with its title normalized to uppercase. Either
// required field blank makes the call a no-op.
func AddRule(ctx context.Context, repo storage.RuleRepository, title, description string) ([]internal.Rule, error) {
	rules, err := repo.ListRules(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return rules, nil
	}

	rules = append(rules, internal.Rule{
		ID:          uuid.NewString(),
		Title:       strings.ToUpper(title),
		Description: description,
	})
	if err := repo.ReplaceRules(ctx, rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// RemoveRule deletes the rule with the given id if present.
func RemoveRule(ctx context.Context, repo storage.RuleRepository, id string) ([]internal.Rule, error) {
	rules, err := repo.ListRules(ctx)
	if err != nil {
		return nil, err
	}

	kept := rules[:0]
	for _, r := range rules {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(rules) {
		return rules, nil
	}

	if err := repo.ReplaceRules(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// SeedRules installs the default rule set when the store is empty.
func SeedRules(ctx context.Context, repo storage.RuleRepository) error {
	rules, err := repo.ListRules(ctx)
	if err != nil {
		return err
	}
	if len(rules) > 0 {
		return nil
	}
	defaults := []internal.Rule{
		{ID: uuid.NewString(), Title: "RULE 01: MONEY", Description: "Never buy a liability on credit."},
		{ID: uuid.NewString(), Title: "RULE 02: HEALTH", Description: "No calories after 8:00 PM."},
	}
	return repo.ReplaceRules(ctx, defaults)
}
