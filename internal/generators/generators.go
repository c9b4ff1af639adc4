// Package generators selects the layout strategy for an environment and
// dungeon algorithm.
package generators

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/generators/dungeon"
	"github.com/KirkDiggler/rpg-mapgen/internal/generators/forest"
	"github.com/KirkDiggler/rpg-mapgen/internal/generators/village"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-mapgen/internal/terrain"
)

//go:generate mockgen -destination=mock/mock_generator.go -package=generatorsmock github.com/KirkDiggler/rpg-mapgen/internal/generators Generator

// Generator produces a finished terrain grid: border walls in place and
// every open cell reachable from every other.
type Generator interface {
	Name() string
	Generate(src rng.Source, width, height int) *terrain.Grid
}

var (
	_ Generator = (*dungeon.RoomsCorridors)(nil)
	_ Generator = (*dungeon.Cellular)(nil)
	_ Generator = (*dungeon.BSP)(nil)
	_ Generator = (*forest.Generator)(nil)
	_ Generator = (*village.Generator)(nil)
)

// For returns the generator for env. alg only matters for dungeons; an
// empty alg means the default algorithm.
func For(env entities.Environment, alg entities.Algorithm) (Generator, error) {
	switch env {
	case entities.EnvironmentDungeon:
		return dungeonFor(alg)
	case entities.EnvironmentForest:
		return forest.New(), nil
	case entities.EnvironmentVillage:
		return village.New(), nil
	default:
		return nil, errors.InvalidArgumentf("unknown environment type: %s", env).
			WithMeta("environment", string(env))
	}
}

func dungeonFor(alg entities.Algorithm) (Generator, error) {
	if alg == "" {
		alg = entities.DefaultAlgorithm
	}
	switch alg {
	case entities.AlgorithmRoomsCorridors:
		return dungeon.NewRoomsCorridors(), nil
	case entities.AlgorithmCellular:
		return dungeon.NewCellular(), nil
	case entities.AlgorithmBSP:
		return dungeon.NewBSP(), nil
	default:
		return nil, errors.InvalidArgumentf("unknown dungeon algorithm: %s", alg).
			WithMeta("algorithm", string(alg))
	}
}

// Selection is a resolved environment and algorithm
type Selection struct {
	Environment entities.Environment
	// Algorithm is empty for forests and villages
	Algorithm entities.Algorithm
	Generator Generator
}

// Select resolves names into a generator. Both names are validated before
// anything is drawn from src. An empty envName picks an environment
// uniformly at random; an empty algName picks the default algorithm.
func Select(src rng.Source, envName, algName string) (*Selection, error) {
	var alg entities.Algorithm
	if algName != "" {
		parsed, err := entities.ParseAlgorithm(algName)
		if err != nil {
			return nil, err
		}
		alg = parsed
	}

	var env entities.Environment
	if envName != "" {
		parsed, err := entities.ParseEnvironment(envName)
		if err != nil {
			return nil, err
		}
		env = parsed
	} else {
		env = rng.Pick(src, entities.Environments)
	}

	if env != entities.EnvironmentDungeon {
		alg = ""
	} else if alg == "" {
		alg = entities.DefaultAlgorithm
	}

	gen, err := For(env, alg)
	if err != nil {
		return nil, err
	}

	return &Selection{
		Environment: env,
		Algorithm:   alg,
		Generator:   gen,
	}, nil
}
