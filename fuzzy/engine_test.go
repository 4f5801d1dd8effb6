package fuzzy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/fuzzy"
)

func newEngine(t *testing.T) *fuzzy.Engine {
	e, err := fuzzy.New(fuzzy.DefaultConfig())
	require.NoError(t, err)
	return e
}

func TestEngineBoundedOutput(t *testing.T) {
	e := newEngine(t)
	// 论域内外的输入（越界输入饱和到边界）输出必须落在[10,90]
	for q := -10.0; q <= 60; q += 2.5 {
		for w := -30.0; w <= 330; w += 7.5 {
			g := e.ComputeGreenTime(q, w)
			assert.GreaterOrEqual(t, g, 10.0, "q=%v w=%v", q, w)
			assert.LessOrEqual(t, g, 90.0, "q=%v w=%v", q, w)
		}
	}
}

func TestEngineSampleScenarios(t *testing.T) {
	e := newEngine(t)

	// 短队列短等待：推荐值靠近论域下端
	short := e.ComputeGreenTime(5, 30)
	assert.Less(t, short, 25.0)

	// 长队列长等待：推荐值靠近论域上端
	long := e.ComputeGreenTime(45, 250)
	assert.Greater(t, long, 70.0)

	// 中等队列中等等待：medium规则完全激活，重心恰为对称三角形中心
	medium := e.ComputeGreenTime(25, 150)
	assert.InDelta(t, 50.0, medium, 1e-9)
}

func TestEngineMonotonicTendency(t *testing.T) {
	e := newEngine(t)
	low := e.ComputeGreenTime(5, 30)
	mid := e.ComputeGreenTime(25, 150)
	high := e.ComputeGreenTime(45, 250)
	assert.LessOrEqual(t, low, mid)
	assert.LessOrEqual(t, mid, high)
}

func TestEngineClamping(t *testing.T) {
	e := newEngine(t)
	assert.Equal(t, e.ComputeGreenTime(0, 0), e.ComputeGreenTime(-10, -50))
	assert.Equal(t, e.ComputeGreenTime(50, 300), e.ComputeGreenTime(100, 500))
}

func TestEngineDeterminism(t *testing.T) {
	// 相同配置构造两次，相同输入必须逐位相同
	e1 := newEngine(t)
	e2 := newEngine(t)
	inputs := [][2]float64{{5, 30}, {25, 150}, {45, 250}, {10, 200}, {40, 50}}
	for _, in := range inputs {
		assert.Equal(t, e1.ComputeGreenTime(in[0], in[1]), e2.ComputeGreenTime(in[0], in[1]))
	}
}

func TestEngineConcurrentUse(t *testing.T) {
	// 引擎无内部状态，允许并发调用
	e := newEngine(t)
	want := e.ComputeGreenTime(25, 150)
	done := make(chan float64, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- e.ComputeGreenTime(25, 150)
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, want, <-done)
	}
}

func TestEngineConfigValidation(t *testing.T) {
	// 缺失规则
	cfg := fuzzy.DefaultConfig()
	cfg.Rules = cfg.Rules[:8]
	_, err := fuzzy.New(cfg)
	assert.ErrorContains(t, err, "no rule")

	// 规则冲突：相同前件指定不同后件
	cfg = fuzzy.DefaultConfig()
	cfg.Rules = append(cfg.Rules, fuzzy.Rule{Queue: "low", Wait: "short", Green: "long"})
	_, err = fuzzy.New(cfg)
	assert.ErrorContains(t, err, "conflicting")

	// 未知标签
	cfg = fuzzy.DefaultConfig()
	cfg.Rules[0].Queue = "huge"
	_, err = fuzzy.New(cfg)
	assert.ErrorContains(t, err, "unknown")

	// 断点非法
	cfg = fuzzy.DefaultConfig()
	cfg.GreenTime.Terms[0].B = 5
	_, err = fuzzy.New(cfg)
	assert.Error(t, err)
}
