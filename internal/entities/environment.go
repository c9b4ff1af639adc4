package entities

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
)

// Environment selects the family of generator
type Environment string

// Environments
const (
	EnvironmentDungeon Environment = "dungeon"
	EnvironmentForest  Environment = "forest"
	EnvironmentVillage Environment = "village"
)

// Environments lists the environments in the order used for random selection
var Environments = []Environment{EnvironmentForest, EnvironmentDungeon, EnvironmentVillage}

// Algorithm selects the dungeon layout algorithm
type Algorithm string

// Dungeon algorithms
const (
	AlgorithmRoomsCorridors Algorithm = "rooms_corridors"
	AlgorithmCellular       Algorithm = "cellular"
	AlgorithmBSP            Algorithm = "bsp"

	// DefaultAlgorithm is used when a dungeon is requested without an algorithm
	DefaultAlgorithm = AlgorithmRoomsCorridors
)

// Algorithms lists every dungeon algorithm
var Algorithms = []Algorithm{AlgorithmRoomsCorridors, AlgorithmCellular, AlgorithmBSP}

// ParseEnvironment maps a name onto an Environment
func ParseEnvironment(name string) (Environment, error) {
	for _, env := range Environments {
		if string(env) == name {
			return env, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown environment type: %s", name).
		WithMeta("environment", name)
}

// ParseAlgorithm maps a name onto an Algorithm
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, alg := range Algorithms {
		if string(alg) == name {
			return alg, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown dungeon algorithm: %s", name).
		WithMeta("algorithm", name)
}
