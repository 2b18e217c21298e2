package validate

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	assert.NoError(t, Number(0, "n"))
	assert.NoError(t, Number(-3.5, "n"))
	assert.Error(t, Number(math.NaN(), "n"))
	assert.Error(t, Number(math.Inf(1), "n"))
}

func TestNonEmptyString(t *testing.T) {
	assert.NoError(t, NonEmptyString("a", "s"))
	assert.Error(t, NonEmptyString("", "s"))
}

func TestAlnumString(t *testing.T) {
	assert.NoError(t, AlnumString("alice99", "username"))
	assert.NoError(t, AlnumString("ABC", "username"))
	assert.Error(t, AlnumString("", "username"))
	assert.Error(t, AlnumString("al ice", "username"))
	assert.Error(t, AlnumString("bob!", "username"))
	assert.Error(t, AlnumString("pål", "username"))
}

func TestPositiveInt(t *testing.T) {
	assert.NoError(t, PositiveInt(1, "id"))
	assert.Error(t, PositiveInt(0, "id"))
	assert.Error(t, PositiveInt(-7, "id"))
}

func TestIntBetween(t *testing.T) {
	assert.NoError(t, IntBetween(5, 1, 10, "n"))
	assert.NoError(t, IntBetween(1, 1, 10, "n"))
	assert.NoError(t, IntBetween(10, 1, 10, "n"))
	assert.Error(t, IntBetween(0, 1, 10, "n"))
	assert.Error(t, IntBetween(11, 1, 10, "n"))
}

type thing struct{}

func TestRequired(t *testing.T) {
	assert.NoError(t, Required(&thing{}, "t"))
	assert.Error(t, Required(nil, "t"))

	// typed nil inside an interface must still be rejected
	var p *thing
	assert.Error(t, Required(p, "t"))
}

func TestOptional(t *testing.T) {
	assert.NoError(t, Optional(nil, "t"))
	var p *thing
	assert.NoError(t, Optional(p, "t"))
	assert.NoError(t, Optional(&thing{}, "t"))
}

func TestError_CarriesFieldAndConstraint(t *testing.T) {
	err := PositiveInt(-1, "msgId")
	require.Error(t, err)

	var ve *Error
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "msgId", ve.Field)
	assert.Contains(t, err.Error(), "msgId")
	assert.Contains(t, err.Error(), "positive integer")

	// any *Error matches the generic target
	assert.True(t, errors.Is(err, &Error{}))
}
