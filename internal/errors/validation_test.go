package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/wuxing-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("player_id", "is required")
	ve.AddFieldErrorf("inventory.fire", "is negative: %d", -2)

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal("validation failed: inventory.fire: is negative: -2; player_id: is required", ve.Error())

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("position", "is off grid").
		RequiredField("player_id").
		InvalidField("element", "not one of the five")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.Assert().Nil(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "p1", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("player_id", tc.value, vb)
			if tc.shouldErr {
				s.Assert().Error(vb.Build())
			} else {
				s.Assert().NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateCounts() {
	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("wallet.yin", 0, vb)
	errors.ValidatePositive("rules.rounds", 3, vb)
	s.Assert().NoError(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateNonNegative("wallet.yin", -1, vb)
	errors.ValidatePositive("rules.rounds", 0, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "wallet.yin: must not be negative, got -1")
	s.Assert().Contains(err.Error(), "rules.rounds: must be positive, got 0")
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("percent", 101, 0, 100, vb)
	s.Assert().Error(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateRange("percent", 30, 0, 100, vb)
	s.Assert().NoError(vb.Build())
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowed := []string{"redis", "sqlite"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("store", "sqlite", allowed, vb)
	s.Assert().NoError(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateEnum("store", "postgres", allowed, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "must be one of: redis, sqlite")
}
