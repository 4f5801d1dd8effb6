package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefuzzifyZeroAggregation(t *testing.T) {
	// 聚合强度全为0时退化为论域中点，而不是除零
	e, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 50.0, e.defuzzify(map[string]float64{}))
	assert.Equal(t, 50.0, e.defuzzify(map[string]float64{"short": 0, "medium": 0, "long": 0}))
}

func TestDefuzzifyFullMedium(t *testing.T) {
	e, err := New(DefaultConfig())
	require.NoError(t, err)
	// 对称三角形(25,50,75)完全激活时重心为50
	assert.InDelta(t, 50.0, e.defuzzify(map[string]float64{"medium": 1}), 1e-9)
}
