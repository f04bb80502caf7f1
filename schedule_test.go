package anneal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// --- Sequence ---

func TestSequenceMatchesAt(t *testing.T) {
	s := mustSchedule(t, expCfg())
	seq := s.Sequence(150)
	require.Len(t, seq, 150)
	for i, v := range seq {
		assert.Equal(t, s.At(float64(i)), v, "index %d", i)
	}
}

func TestSequenceStartsAtInitial(t *testing.T) {
	s := mustSchedule(t, expCfg())
	seq := s.Sequence(10)
	assert.Equal(t, 0.1, seq[0])
}

func TestSequenceNonPositiveLength(t *testing.T) {
	s := mustSchedule(t, expCfg())
	assert.Nil(t, s.Sequence(0))
	assert.Nil(t, s.Sequence(-1))
}

// --- JSON ---

func TestScheduleJSONRoundTrip(t *testing.T) {
	s := mustSchedule(t, Config{
		Kind:       Exponential,
		Initial:    0.1,
		DecayRate:  0.96,
		DecaySteps: 1000,
		Staircase:  true,
	})

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var s2 Schedule
	require.NoError(t, json.Unmarshal(data, &s2))

	// Round-trip produces identical values.
	for _, step := range []float64{0, 1, 500, 999, 1000, 5000} {
		assert.Equal(t, s.At(step), s2.At(step), "step %g", step)
	}
}

func TestScheduleJSONPiecewiseRoundTrip(t *testing.T) {
	s := mustSchedule(t, Config{
		Kind:       Piecewise,
		Boundaries: []float64{10, 20},
		Values:     []float64{1.0, 0.5, 0.1},
	})

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var s2 Schedule
	require.NoError(t, json.Unmarshal(data, &s2))
	assert.Equal(t, 0.5, s2.At(10))
}

func TestScheduleJSONMalformed(t *testing.T) {
	var s Schedule
	assert.Error(t, json.Unmarshal([]byte(`{"kind":42}`), &s))
}

func TestScheduleJSONInvalidConfig(t *testing.T) {
	// Well-formed JSON, but the config fails validation in New.
	bad := `{"kind":"exponential","initial":0.1,"decay_rate":0,"decay_steps":100}`
	var s Schedule
	err := json.Unmarshal([]byte(bad), &s)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestScheduleJSONKindAsString(t *testing.T) {
	s := mustSchedule(t, Config{Kind: Cosine, Initial: 1.0, DecaySteps: 10})
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"cosine"`)
}

// --- YAML ---

func TestScheduleYAMLRoundTrip(t *testing.T) {
	s := mustSchedule(t, Config{
		Kind:       Polynomial,
		Initial:    1.0,
		MinValue:   0.01,
		Power:      2,
		DecaySteps: 100,
	})

	data, err := yaml.Marshal(s)
	require.NoError(t, err)

	var s2 Schedule
	require.NoError(t, yaml.Unmarshal(data, &s2))

	for _, step := range []float64{0, 50, 100, 200} {
		assert.Equal(t, s.At(step), s2.At(step), "step %g", step)
	}
}

func TestScheduleYAMLDecodeConfigFile(t *testing.T) {
	// The shape a schedule takes inside a training config file.
	src := `
kind: piecewise
boundaries: [10, 20]
values: [1.0, 0.5, 0.1]
`
	var s Schedule
	require.NoError(t, yaml.Unmarshal([]byte(src), &s))
	assert.Equal(t, Piecewise, s.Kind())
	assert.Equal(t, 0.5, s.At(15))
}

func TestScheduleYAMLInvalidConfig(t *testing.T) {
	var s Schedule
	err := yaml.Unmarshal([]byte("kind: exponential\ninitial: 0.1\ndecay_steps: 0\ndecay_rate: 0.5\n"), &s)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
