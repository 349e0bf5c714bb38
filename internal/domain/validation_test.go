package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidReps(t *testing.T) {
	assert.False(t, IsValidReps(-1))
	assert.False(t, IsValidReps(0))
	assert.True(t, IsValidReps(1))
	assert.True(t, IsValidReps(100))
}

func TestIsValidSetCount(t *testing.T) {
	assert.False(t, IsValidSetCount(-3))
	assert.False(t, IsValidSetCount(0))
	assert.True(t, IsValidSetCount(1))
}

func TestIsValidWeight(t *testing.T) {
	negative := -0.5
	zero := 0.0
	positive := 102.5

	assert.True(t, IsValidWeight(nil), "absent weight means bodyweight")
	assert.True(t, IsValidWeight(&zero))
	assert.True(t, IsValidWeight(&positive))
	assert.False(t, IsValidWeight(&negative))
}

func TestIsValidPosition(t *testing.T) {
	assert.False(t, IsValidPosition(-1))
	assert.False(t, IsValidPosition(0))
	assert.True(t, IsValidPosition(0.5), "fractional positions are used for insertion between items")
	assert.True(t, IsValidPosition(3))
}

func TestValidateExerciseParametersValid(t *testing.T) {
	weight := 60.0
	check := ValidateExerciseParameters(3, 10, &weight, 1)
	assert.True(t, check.IsValid)
	assert.Empty(t, check.Errors)
}

func TestValidateExerciseParametersCollectsEveryViolation(t *testing.T) {
	weight := -5.0
	check := ValidateExerciseParameters(-1, -1, &weight, 0)

	require.False(t, check.IsValid)
	require.Len(t, check.Errors, 4, "all four fields are invalid, all four must be reported")

	kinds := make([]ValidationErrorKind, 0, len(check.Errors))
	for _, e := range check.Errors {
		kinds = append(kinds, e.Kind)
	}
	assert.Contains(t, kinds, ErrKindNegativeSetCount)
	assert.Contains(t, kinds, ErrKindNegativeReps)
	assert.Contains(t, kinds, ErrKindNegativeWeight)
	assert.Contains(t, kinds, ErrKindInvalidPosition)
}

func TestValidateExerciseParametersZeroVersusNegative(t *testing.T) {
	zeroCheck := ValidateExerciseParameters(0, 0, nil, 1)
	require.Len(t, zeroCheck.Errors, 2)
	assert.Equal(t, ErrKindZeroSets, zeroCheck.Errors[0].Kind)
	assert.Equal(t, ErrKindZeroReps, zeroCheck.Errors[1].Kind)

	negativeCheck := ValidateExerciseParameters(-2, -3, nil, 1)
	require.Len(t, negativeCheck.Errors, 2)
	assert.Equal(t, ErrKindNegativeSetCount, negativeCheck.Errors[0].Kind)
	assert.Equal(t, ErrKindNegativeReps, negativeCheck.Errors[1].Kind)
}

func TestValidateCompletedSet(t *testing.T) {
	assert.Nil(t, ValidateCompletedSet(8, 80, 1))
	assert.Nil(t, ValidateCompletedSet(12, 0, 1), "weight zero is bodyweight work")

	negReps := ValidateCompletedSet(-1, 80, 1)
	require.NotNil(t, negReps)
	assert.Equal(t, ErrKindNegativeReps, negReps.Kind)

	zeroReps := ValidateCompletedSet(0, 80, 1)
	require.NotNil(t, zeroReps)
	assert.Equal(t, ErrKindZeroReps, zeroReps.Kind)

	negWeight := ValidateCompletedSet(8, -2.5, 1)
	require.NotNil(t, negWeight)
	assert.Equal(t, ErrKindNegativeWeight, negWeight.Kind)

	badPosition := ValidateCompletedSet(8, 80, 0)
	require.NotNil(t, badPosition)
	assert.Equal(t, ErrKindInvalidPosition, badPosition.Kind)
}

func TestValidateTemplateNameFormat(t *testing.T) {
	assert.Nil(t, ValidateTemplateNameFormat("Push Pull Legs"))
	assert.Nil(t, ValidateTemplateNameFormat("  padded  "), "surrounding whitespace is ignored")
	assert.Nil(t, ValidateTemplateNameFormat(strings.Repeat("a", MaxTemplateNameLength)))

	empty := ValidateTemplateNameFormat("   ")
	require.NotNil(t, empty)
	assert.Equal(t, ErrKindEmptyTemplateName, empty.Kind)

	tooLong := ValidateTemplateNameFormat(strings.Repeat("a", MaxTemplateNameLength+1))
	require.NotNil(t, tooLong)
	assert.Equal(t, ErrKindTemplateNameTooLong, tooLong.Kind)
}

func TestNormalizeTemplateName(t *testing.T) {
	assert.Equal(t, "Upper Body", NormalizeTemplateName("  Upper Body\t"))
	assert.Equal(t, "", NormalizeTemplateName("   "))
}

func TestNewDuplicateTemplateNameError(t *testing.T) {
	err := NewDuplicateTemplateNameError("PPL")
	assert.Equal(t, ErrKindDuplicateTemplateName, err.Kind)
	assert.Contains(t, err.Error(), "PPL")
}
