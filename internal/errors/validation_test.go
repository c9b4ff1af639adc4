package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("width", "must be between 20 and 200")
	ve.AddFieldError("environment", "is invalid: swamp")

	s.True(ve.HasErrors())
	s.Equal("validation failed: environment: is invalid: swamp; width: must be between 20 and 200", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("height", "is too small").
		Fieldf("width", "must be between %d and %d", 20, 200).
		RequiredField("IDGenerator").
		InvalidField("algorithm", "maze")

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "IDGenerator: is required")
	s.Contains(err.Error(), "algorithm: is invalid: maze")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRange() {
	testCases := []struct {
		name      string
		value     int
		shouldErr bool
	}{
		{"lower bound", 20, false},
		{"upper bound", 200, false},
		{"below", 19, true},
		{"above", 201, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRange("width", tc.value, 20, 200, vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateEnum() {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("environment", "forest", []string{"dungeon", "forest", "village"}, vb)
	s.NoError(vb.Build())

	errors.ValidateEnum("environment", "swamp", []string{"dungeon", "forest", "village"}, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Contains(err.Error(), "must be one of: dungeon, forest, village")
}
