package service

import (
	"context"

	"github.com/yourname/axis/internal"
	"github.com/yourname/axis/internal/storage"
)

// PillarKeys lists the six life-domain score names.
var PillarKeys = []string{"mind", "body", "money", "career", "relationships", "environment"}

// IncreasePillar adds delta to the named score, clamps the result into
// [0,100] and persists the whole map. An unknown key is a no-op.
func IncreasePillar(ctx context.Context, repo storage.PillarRepository, key string, delta int) (*internal.Pillars, error) {
	pillars, err := repo.GetPillars(ctx)
	if err != nil {
		return nil, err
	}

	score := pillarField(pillars, key)
	if score == nil {
		return pillars, nil
	}
	*score = clampScore(*score + delta)

	if err := repo.SavePillars(ctx, pillars); err != nil {
		return nil, err
	}
	return pillars, nil
}

func pillarField(p *internal.Pillars, key string) *int {
	switch key {
	case "mind":
		return &p.Mind
	case "body":
		return &p.Body
	case "money":
		return &p.Money
	case "career":
		return &p.Career
	case "relationships":
		return &p.Relationships
	case "environment":
		return &p.Environment
	}
	return nil
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
