package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/aguxez/foodpick/models"
)

const (
	GroupsKey  = "groups"
	CorruptKey = "groups.corrupt"
)

var ErrCorruptState = errors.New("stored groups could not be decoded")

// Adapter reads and writes the group list as one blob.
type Adapter struct {
	kv KV
}

func NewAdapter(kv KV) *Adapter {
	return &Adapter{kv: kv}
}

// Load returns the saved groups. Missing or empty data yields the seed
// groups. Undecodable data is copied to CorruptKey, the seed groups are
// returned and the error wraps ErrCorruptState so callers can log it.
func (a *Adapter) Load(ctx context.Context) ([]models.Group, error) {
	raw, ok, err := a.kv.Get(ctx, GroupsKey)
	if err != nil {
		return nil, fmt.Errorf("loading groups: %w", err)
	}
	if !ok || isEmptyList(raw) {
		return models.SeedGroups(), nil
	}

	var groups []models.Group
	if err := json.Unmarshal([]byte(raw), &groups); err != nil {
		if bErr := a.kv.Set(ctx, CorruptKey, raw); bErr != nil {
			log.Printf("Error backing up corrupt groups: %v", bErr)
		}
		return models.SeedGroups(), fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	if len(groups) == 0 {
		return models.SeedGroups(), nil
	}
	return groups, nil
}

func (a *Adapter) Save(ctx context.Context, groups []models.Group) error {
	if groups == nil {
		groups = []models.Group{}
	}
	data, err := json.Marshal(groups)
	if err != nil {
		return fmt.Errorf("encoding groups: %w", err)
	}
	if err := a.kv.Set(ctx, GroupsKey, string(data)); err != nil {
		return fmt.Errorf("saving groups: %w", err)
	}
	return nil
}

func isEmptyList(raw string) bool {
	s := strings.TrimSpace(raw)
	return s == "" || s == "[]" || s == "null"
}
