package fuzzy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/fuzzy"
)

func TestNewTriangleValidation(t *testing.T) {
	_, err := fuzzy.NewTriangle(10, 5, 20)
	assert.Error(t, err)
	_, err = fuzzy.NewTriangle(10, 20, 15)
	assert.Error(t, err)
	_, err = fuzzy.NewTriangle(0, 0, 0)
	assert.NoError(t, err)
}

func TestTriangleDegree(t *testing.T) {
	m, err := fuzzy.NewTriangle(10, 25, 40)
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.Degree(9))
	assert.Equal(t, 0.0, m.Degree(10))
	assert.Equal(t, 0.5, m.Degree(17.5))
	assert.Equal(t, 1.0, m.Degree(25))
	assert.Equal(t, 0.5, m.Degree(32.5))
	assert.Equal(t, 0.0, m.Degree(40))
	assert.Equal(t, 0.0, m.Degree(41))
}

func TestShoulderDegree(t *testing.T) {
	// 左肩形：a==b
	left, err := fuzzy.NewTriangle(0, 0, 15)
	require.NoError(t, err)
	assert.Equal(t, 1.0, left.Degree(0))
	assert.InDelta(t, 2.0/3.0, left.Degree(5), 1e-12)
	assert.Equal(t, 0.0, left.Degree(15))
	assert.Equal(t, 0.0, left.Degree(-1))

	// 右肩形：b==c
	right, err := fuzzy.NewTriangle(35, 50, 50)
	require.NoError(t, err)
	assert.Equal(t, 0.0, right.Degree(35))
	assert.Equal(t, 0.5, right.Degree(42.5))
	assert.Equal(t, 1.0, right.Degree(50))
	assert.Equal(t, 0.0, right.Degree(51))
}
