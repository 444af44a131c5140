package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/yourname/axis/internal"
	"github.com/yourname/axis/internal/storage"
)

type ProtocolRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Kind        internal.ProtocolKind `json:"kind" validate:"omitempty,oneof=completed active pending"`
	Icon        string                `json:"icon"`
}

// AddProtocol appends a protocol. Blank title or description makes the
// call a no-op.
func AddProtocol(ctx context.Context, repo storage.ProtocolRepository, req *ProtocolRequest) ([]internal.Protocol, error) {
	protocols, err := repo.ListProtocols(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return protocols, nil
	}

	kind := req.Kind
	if kind == "" {
		kind = internal.ProtocolPending
	}
	protocols = append(protocols, internal.Protocol{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Kind:        kind,
		Icon:        req.Icon,
	})
	if err := repo.ReplaceProtocols(ctx, protocols); err != nil {
		return nil, err
	}
	return protocols, nil
}

// ToggleProtocol flips the completion flag. Kind is left untouched; the
// two vary independently. An unknown id is a no-op.
func ToggleProtocol(ctx context.Context, repo storage.ProtocolRepository, id string) ([]internal.Protocol, error) {
	protocols, err := repo.ListProtocols(ctx)
	if err != nil {
		return nil, err
	}

	changed := false
	for i := range protocols {
		if protocols[i].ID == id {
			protocols[i].IsCompleted = !protocols[i].IsCompleted
			changed = true
			break
		}
	}
	if !changed {
		return protocols, nil
	}

	if err := repo.ReplaceProtocols(ctx, protocols); err != nil {
		return nil, err
	}
	return protocols, nil
}

// RemoveProtocol deletes the protocol with the given id if present.
func RemoveProtocol(ctx context.Context, repo storage.ProtocolRepository, id string) ([]internal.Protocol, error) {
	protocols, err := repo.ListProtocols(ctx)
	if err != nil {
		return nil, err
	}

	kept := protocols[:0]
	for _, p := range protocols {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(protocols) {
		return protocols, nil
	}

	if err := repo.ReplaceProtocols(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// SeedProtocols installs the default protocol set when the store is empty.
func SeedProtocols(ctx context.Context, repo storage.ProtocolRepository) error {
	protocols, err := repo.ListProtocols(ctx)
	if err != nil {
		return err
	}
	if len(protocols) > 0 {
		return nil
	}
	defaults := []internal.Protocol{
		{ID: uuid.NewString(), Title: "Morning Hydration", Description: "1L Water + Electrolytes", Kind: internal.ProtocolCompleted, IsCompleted: true, Icon: "Droplets"},
		{ID: uuid.NewString(), Title: "50 Pushups", Description: "Physical Activation", Kind: internal.ProtocolActive, IsCompleted: false, Icon: "Dumbbell"},
		{ID: uuid.NewString(), Title: "Cold Exposure", Description: "3 Minutes @ 50°F", Kind: internal.ProtocolPending, IsCompleted: false, Icon: "Timer"},
	}
	return repo.ReplaceProtocols(ctx, defaults)
}
