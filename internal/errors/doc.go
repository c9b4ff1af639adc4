// Package errors provides the structured error type used across rpg-mapgen.
//
// Every error crossing a package boundary carries a Code, a short message and
// optional metadata. Configuration mistakes (unknown environment or dungeon
// algorithm, bad map size) are INVALID_ARGUMENT; a generator producing a map
// with nowhere to stand is INTERNAL.
//
// # Basic Usage
//
//	err := errors.InvalidArgumentf("unknown dungeon algorithm: %s", name).
//		WithMeta("algorithm", name)
//
//	if errors.IsInvalidArgument(err) {
//		// configuration error, do not retry
//	}
//
// # Wrapping
//
// Wrap keeps the code of an existing *Error:
//
//	if err := repo.Save(ctx, input); err != nil {
//		return errors.Wrap(err, "failed to cache layout")
//	}
//
// # Validation
//
// Config and input structs collect every bad field before failing:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("width", input.Width, MinWidth, MaxWidth, vb)
//	if err := vb.Build(); err != nil {
//		return nil, err
//	}
package errors
