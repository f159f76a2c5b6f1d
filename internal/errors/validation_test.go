package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Esderin/Standard-of-Iron/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuilderCollectsFields() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("LevelID").
		InvalidField("Width", "must be positive").
		Fieldf("CellSize", "must be at most %d", 16)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(
		"INVALID_ARGUMENT: validation failed: CellSize: must be at most 16; LevelID: is required; Width: is invalid: must be positive",
		err.Error(),
	)

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string]interface{})
	s.Require().True(ok)
	s.Equal([]interface{}{"is required"}, fields["LevelID"])
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidationMetaSurvivesGRPC() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("LevelID")

	converted := errors.FromGRPCError(errors.ToGRPCError(vb.Build()))
	s.True(errors.IsInvalidArgument(converted))
	s.Contains(errors.GetMeta(converted), "validation_errors")
}

func (s *ValidationTestSuite) TestValidateHelpers() {
	testCases := []struct {
		name      string
		apply     func(vb *errors.ValidationBuilder)
		shouldErr bool
	}{
		{"required ok", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("id", "lvl", vb) }, false},
		{"required blank", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("id", "  ", vb) }, true},
		{"range ok", func(vb *errors.ValidationBuilder) { errors.ValidateRange("width", 64, 1, 4096, vb) }, false},
		{"range low", func(vb *errors.ValidationBuilder) { errors.ValidateRange("width", 0, 1, 4096, vb) }, true},
		{"range high", func(vb *errors.ValidationBuilder) { errors.ValidateRange("width", 5000, 1, 4096, vb) }, true},
		{"positive ok", func(vb *errors.ValidationBuilder) { errors.ValidatePositive("cell_size", 0.5, vb) }, false},
		{"positive zero", func(vb *errors.ValidationBuilder) { errors.ValidatePositive("cell_size", 0, vb) }, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.apply(vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}
