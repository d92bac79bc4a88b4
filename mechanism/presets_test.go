package mechanism_test

import (
	"testing"

	"github.com/ecodyn/shockgraph/mechanism"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPresets_KindsAndAnchors checks each preset's kind plus one anchor
// point of its curve.
func TestPresets_KindsAndAnchors(t *testing.T) {
	irp := mechanism.InterestRatePolicy()
	assert.Equal(t, mechanism.Threshold, irp.Kind())
	got, err := irp.Apply(0.2, 1.0)
	require.NoError(t, err)
	assert.Zero(t, got, "sub-threshold rate move is absorbed")

	okun := mechanism.OkunLaw()
	assert.Equal(t, mechanism.Saturation, okun.Kind())
	got, err = okun.Apply(8.0, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, -0.25, got, 1e-12, "half of -0.5 at the half-saturation point")

	oil := mechanism.OilPriceShock()
	assert.Equal(t, mechanism.Exponential, oil.Kind())
	assert.Nil(t, oil.Warnings(), "1.3 is a moderate exponent")

	inv := mechanism.InvestmentReturns()
	assert.Equal(t, mechanism.Saturation, inv.Kind())
	got, err = inv.Apply(10.0, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, got, 1e-12, "half of 0.8 at the half-saturation point")
}
