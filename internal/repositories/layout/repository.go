// Package layout provides a cache of generated terrain grids keyed by the
// request that produced them
package layout

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/terrain"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=layoutmock github.com/KirkDiggler/rpg-mapgen/internal/repositories/layout Repository

// Key identifies a seeded layout request
type Key struct {
	Environment entities.Environment
	// Algorithm is empty for environments without one
	Algorithm entities.Algorithm
	Width     int
	Height    int
	Seed      int64
}

// String renders the redis key, layout:{environment}:{algorithm}:{width}x{height}:{seed}
func (k Key) String() string {
	alg := string(k.Algorithm)
	if alg == "" {
		alg = "none"
	}
	return fmt.Sprintf("%s%s:%s:%dx%d:%d", keyPrefix, k.Environment, alg, k.Width, k.Height, k.Seed)
}

// ParseKey is the inverse of Key.String
func ParseKey(s string) (Key, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 5 || parts[0]+":" != keyPrefix {
		return Key{}, errors.InvalidArgumentf("malformed layout key: %s", s)
	}

	env, err := entities.ParseEnvironment(parts[1])
	if err != nil {
		return Key{}, err
	}
	var alg entities.Algorithm
	if parts[2] != "none" {
		if alg, err = entities.ParseAlgorithm(parts[2]); err != nil {
			return Key{}, err
		}
	}

	var width, height int
	if _, err := fmt.Sscanf(parts[3], "%dx%d", &width, &height); err != nil {
		return Key{}, errors.InvalidArgumentf("malformed layout size in key: %s", s)
	}
	seed, err := strconv.ParseInt(parts[4], 10, 64)
	if err != nil {
		return Key{}, errors.InvalidArgumentf("malformed layout seed in key: %s", s)
	}

	key := Key{
		Environment: env,
		Algorithm:   alg,
		Width:       width,
		Height:      height,
		Seed:        seed,
	}
	// Sscanf and ParseInt tolerate trailing text, signs and leading zeros
	if key.String() != s {
		return Key{}, errors.InvalidArgumentf("non-canonical layout key: %s", s)
	}
	return key, nil
}

// Layout is a cached grid
type Layout struct {
	Environment entities.Environment `json:"environment"`
	Algorithm   entities.Algorithm   `json:"algorithm,omitempty"`
	Seed        int64                `json:"seed"`
	Grid        *terrain.Grid        `json:"grid"`
	CreatedAt   time.Time            `json:"created_at"`
	ExpiresAt   time.Time            `json:"expires_at"`
}

// GetInput defines the request for loading a layout
type GetInput struct {
	Key Key
}

// GetOutput defines the response for loading a layout
type GetOutput struct {
	Layout *Layout
}

// SaveInput defines the request for caching a layout
type SaveInput struct {
	Key  Key
	Grid *terrain.Grid
	// TTL overrides the repository default when non-zero
	TTL time.Duration
}

// SaveOutput defines the response for caching a layout
type SaveOutput struct {
	Layout *Layout
}

// DeleteInput defines the request for evicting a layout
type DeleteInput struct {
	Key Key
}

// DeleteOutput defines the response for evicting a layout
type DeleteOutput struct {
	Deleted bool
}

// SweepInput defines the request for scanning the cache for unusable entries
type SweepInput struct {
	// Delete removes the corrupt entries; otherwise they are only reported
	Delete bool
}

// SweepOutput defines the response for a cache sweep
type SweepOutput struct {
	Checked int
	// Corrupt lists keys whose value does not decode, does not match the key
	// or is not an enclosed and connected grid
	Corrupt []string
	Deleted int
}

// Repository caches generated layouts
type Repository interface {
	// Get returns NotFound when nothing is cached under the key
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
	Sweep(ctx context.Context, input SweepInput) (*SweepOutput, error)
}
