package anneal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var allKinds = []Kind{
	Exponential, Cosine, InverseTime, Polynomial, Piecewise,
	Constant, Geometric, Arithmetic, TimeBased, StepDecay,
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "exponential", Exponential.String())
	assert.Equal(t, "inverse_time", InverseTime.String())
	assert.Equal(t, "step_decay", StepDecay.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestKindTextRoundTrip(t *testing.T) {
	for _, k := range allKinds {
		text, err := k.MarshalText()
		require.NoError(t, err, "kind %s", k)

		var back Kind
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, k, back)
	}
}

func TestKindTextInvalid(t *testing.T) {
	_, err := Kind(0).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidConfig)

	var k Kind
	assert.ErrorIs(t, k.UnmarshalText([]byte("bogus")), ErrInvalidConfig)
}

func TestKindJSONRoundTrip(t *testing.T) {
	for _, k := range allKinds {
		data, err := json.Marshal(k)
		require.NoError(t, err)

		var back Kind
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, k, back)
	}
}

func TestKindJSONRejectsNumber(t *testing.T) {
	var k Kind
	assert.ErrorIs(t, json.Unmarshal([]byte("3"), &k), ErrInvalidConfig)
}

func TestKindYAMLRoundTrip(t *testing.T) {
	for _, k := range allKinds {
		data, err := yaml.Marshal(k)
		require.NoError(t, err)

		var back Kind
		require.NoError(t, yaml.Unmarshal(data, &back))
		assert.Equal(t, k, back)
	}
}

func TestKindYAMLInvalid(t *testing.T) {
	var k Kind
	assert.ErrorIs(t, yaml.Unmarshal([]byte("bogus"), &k), ErrInvalidConfig)
}
