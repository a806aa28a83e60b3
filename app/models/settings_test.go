package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradingScaleJSONRoundTrip(t *testing.T) {
	// The settings API receives the scale as a JSON object
	var scale GradingScale
	require.NoError(t, json.Unmarshal([]byte(`{"A": 90, "B": 80, "C": 70}`), &scale))
	assert.Equal(t, 90.0, scale["A"])
	assert.Equal(t, 80.0, scale["B"])

	value, err := scale.Value()
	require.NoError(t, err)

	var back GradingScale
	require.NoError(t, back.Scan(value))
	assert.Equal(t, scale, back)
}

func TestGradingScaleScanNil(t *testing.T) {
	var scale GradingScale
	require.NoError(t, scale.Scan(nil))
	assert.NotNil(t, scale)
	assert.Empty(t, scale)
}
