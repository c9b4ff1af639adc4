// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/orchestrators/level"
	"github.com/KirkDiggler/rpg-mapgen/internal/testutils"
)

// GenerateInputBuilder provides a fluent interface for building level.GenerateInput
type GenerateInputBuilder struct {
	input *level.GenerateInput
}

// NewGenerateInputBuilder creates a builder for a seeded fixture-sized dungeon
// with both stairs and a player
func NewGenerateInputBuilder() *GenerateInputBuilder {
	seed := testutils.TestSeed
	return &GenerateInputBuilder{
		input: &level.GenerateInput{
			Depth:         1,
			Width:         testutils.TestWidth,
			Height:        testutils.TestHeight,
			PlayerX:       testutils.TestWidth / 2,
			PlayerY:       testutils.TestHeight / 2,
			HasUpstairs:   true,
			HasDownstairs: true,
			CreatePlayer:  true,
			Environment:   string(entities.EnvironmentDungeon),
			Seed:          &seed,
		},
	}
}

// WithSize sets the map dimensions
func (b *GenerateInputBuilder) WithSize(width, height int) *GenerateInputBuilder {
	b.input.Width = width
	b.input.Height = height
	return b
}

// WithEnvironment sets the environment name
func (b *GenerateInputBuilder) WithEnvironment(env entities.Environment) *GenerateInputBuilder {
	b.input.Environment = string(env)
	return b
}

// WithAlgorithm sets the dungeon algorithm name
func (b *GenerateInputBuilder) WithAlgorithm(alg entities.Algorithm) *GenerateInputBuilder {
	b.input.Algorithm = string(alg)
	return b
}

// WithSeed sets the seed
func (b *GenerateInputBuilder) WithSeed(seed int64) *GenerateInputBuilder {
	b.input.Seed = &seed
	return b
}

// Unseeded clears the seed so generation draws from the dice roller
func (b *GenerateInputBuilder) Unseeded() *GenerateInputBuilder {
	b.input.Seed = nil
	return b
}

// WithPlayerAt sets the preferred player start
func (b *GenerateInputBuilder) WithPlayerAt(x, y int) *GenerateInputBuilder {
	b.input.PlayerX = x
	b.input.PlayerY = y
	return b
}

// WithoutStairs disables both staircases
func (b *GenerateInputBuilder) WithoutStairs() *GenerateInputBuilder {
	b.input.HasUpstairs = false
	b.input.HasDownstairs = false
	return b
}

// WithoutPlayer disables player creation
func (b *GenerateInputBuilder) WithoutPlayer() *GenerateInputBuilder {
	b.input.CreatePlayer = false
	return b
}

// Build returns a copy of the built input
func (b *GenerateInputBuilder) Build() *level.GenerateInput {
	out := *b.input
	if b.input.Seed != nil {
		seed := *b.input.Seed
		out.Seed = &seed
	}
	return &out
}
