// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/repositories/layout"
	layoutmock "github.com/KirkDiggler/rpg-mapgen/internal/repositories/layout/mock"
	"github.com/KirkDiggler/rpg-mapgen/internal/terrain"
)

// ExpectLayoutMiss sets up a cache miss for key followed by a successful save
func ExpectLayoutMiss(repo *layoutmock.MockRepository, key layout.Key) {
	repo.EXPECT().
		Get(gomock.Any(), layout.GetInput{Key: key}).
		Return(nil, errors.NotFound("layout not found"))

	repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, input layout.SaveInput) (*layout.SaveOutput, error) {
			return &layout.SaveOutput{
				Layout: &layout.Layout{
					Environment: input.Key.Environment,
					Algorithm:   input.Key.Algorithm,
					Seed:        input.Key.Seed,
					Grid:        input.Grid,
				},
			}, nil
		})
}

// ExpectLayoutHit sets up a cache hit returning grid for key
func ExpectLayoutHit(repo *layoutmock.MockRepository, key layout.Key, grid *terrain.Grid) {
	now := time.Now()
	repo.EXPECT().
		Get(gomock.Any(), layout.GetInput{Key: key}).
		Return(&layout.GetOutput{
			Layout: &layout.Layout{
				Environment: key.Environment,
				Algorithm:   key.Algorithm,
				Seed:        key.Seed,
				Grid:        grid,
				CreatedAt:   now,
				ExpiresAt:   now.Add(time.Hour),
			},
		}, nil)
}

// ExpectLayoutUnavailable sets up a cache whose every call fails
func ExpectLayoutUnavailable(repo *layoutmock.MockRepository) {
	repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis unavailable")).
		AnyTimes()
	repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis unavailable")).
		AnyTimes()
}
