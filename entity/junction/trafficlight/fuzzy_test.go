package trafficlight_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/clock"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/entity"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/entity/junction/trafficlight"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/fuzzy"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/utils/config"
)

// 测试用任务上下文，只提供时钟
type testContext struct {
	clock *clock.Clock
}

func (c *testContext) Clock() *clock.Clock                    { return c.clock }
func (c *testContext) LaneManager() entity.ILaneManager      { return nil }
func (c *testContext) JunctionManager() entity.IJunctionManager { return nil }
func (c *testContext) RuntimeConfig() *config.RuntimeConfig  { return nil }
func (c *testContext) Stats() entity.IStatsSink              { return nil }

// 固定输出的决策引擎
type fixedController struct {
	green float64
}

func (c *fixedController) ComputeGreenTime(queueLength, waitingTime float64) float64 {
	return c.green
}

type stubSensor struct {
	m   entity.Measurement
	err error
}

func (s *stubSensor) Metrics(dir entity.Direction) (entity.Measurement, error) {
	return s.m, s.err
}

type stubActuator struct {
	err      error
	commands []entity.Phase
}

func (a *stubActuator) SetPhase(junctionID int32, phase entity.Phase) error {
	if a.err != nil {
		return a.err
	}
	a.commands = append(a.commands, phase)
	return nil
}

type stubStats struct {
	transitions []entity.TransitionEvent
	samples     []entity.Measurement
}

func (s *stubStats) RecordTransition(ev entity.TransitionEvent) {
	s.transitions = append(s.transitions, ev)
}

func (s *stubStats) RecordControlSample(junctionID int32, dir entity.Direction, m entity.Measurement) {
	s.samples = append(s.samples, m)
}

func (s *stubStats) RecordStep(running, departed int32) {}

type stubLane struct {
	state entity.LightState
	total float64
	left  float64
}

func (l *stubLane) SetLight(state entity.LightState, totalTime, remainingTime float64) {
	l.state = state
	l.total = totalTime
	l.left = remainingTime
}

func newTestLight(
	defaultGreen float64,
	controller entity.IGreenTimeController,
	sensor entity.ISensor,
	actuator entity.IActuator,
) (*trafficlight.FuzzyTrafficLight, *testContext, map[entity.Direction][]entity.ILaneLightSetter, *stubStats) {
	ctx := &testContext{clock: &clock.Clock{DT: 1, END_STEP: 10000}}
	ctx.clock.Init()
	lanes := map[entity.Direction][]entity.ILaneLightSetter{
		entity.DirectionNS: {&stubLane{}},
		entity.DirectionEW: {&stubLane{}},
	}
	stats := &stubStats{}
	tl := trafficlight.NewFuzzyTrafficLight(ctx, 1, lanes, controller, sensor, actuator, stats, defaultGreen)
	return tl, ctx, lanes, stats
}

// 推进一个控制步：时钟前进dt后执行准备与更新
func step(t *testing.T, tl *trafficlight.FuzzyTrafficLight, ctx *testContext) {
	t.Helper()
	ctx.clock.InternalStep++
	ctx.clock.T = float64(ctx.clock.InternalStep) * ctx.clock.DT
	tl.Prepare()
	require.NoError(t, tl.Update())
}

func TestPhaseCycleClosesInFourTransitions(t *testing.T) {
	actuator := &stubActuator{}
	tl, ctx, _, stats := newTestLight(
		10, &fixedController{green: 10}, &stubSensor{}, actuator,
	)

	assert.Equal(t, entity.PhaseNSGreen, tl.Phase())
	for len(stats.transitions) < 4 {
		step(t, tl, ctx)
	}
	tl.Prepare()
	assert.Equal(t, entity.PhaseNSGreen, tl.Phase())
	assert.Equal(t, []entity.Phase{
		entity.PhaseNSYellow,
		entity.PhaseEWGreen,
		entity.PhaseEWYellow,
		entity.PhaseNSGreen,
	}, actuator.commands)
}

func TestGreenAndYellowTiming(t *testing.T) {
	tl, ctx, _, stats := newTestLight(
		30, &fixedController{green: 45}, &stubSensor{}, &stubActuator{},
	)

	for i := 0; i < 33; i++ {
		step(t, tl, ctx)
	}
	// 绿灯30秒整切黄灯，黄灯3秒整放行对向
	require.Len(t, stats.transitions, 2)
	assert.Equal(t, entity.PhaseNSYellow, stats.transitions[0].Phase)
	assert.Equal(t, 30.0, stats.transitions[0].Time)
	assert.Equal(t, entity.PhaseEWGreen, stats.transitions[1].Phase)
	assert.Equal(t, 33.0, stats.transitions[1].Time)
	assert.Equal(t, 45.0, stats.transitions[1].Duration)
	tl.Prepare()
	assert.Equal(t, 45.0, tl.GreenTime())
}

func TestConflictingDirectionsNeverBothReleased(t *testing.T) {
	sensor := &stubSensor{m: entity.Measurement{QueueLength: 20, WaitingTime: 120}}
	engine, err := fuzzy.New(fuzzy.DefaultConfig())
	require.NoError(t, err)
	tl, ctx, lanes, _ := newTestLight(15, engine, sensor, &stubActuator{})

	ns := lanes[entity.DirectionNS][0].(*stubLane)
	ew := lanes[entity.DirectionEW][0].(*stubLane)
	for i := 0; i < 600; i++ {
		step(t, tl, ctx)
		nsReleased := ns.state != entity.LightStateRed
		ewReleased := ew.state != entity.LightStateRed
		assert.False(t, nsReleased && ewReleased,
			"both directions released at t=%.0f", ctx.clock.T)
		assert.True(t, nsReleased || ewReleased,
			"no direction released at t=%.0f", ctx.clock.T)
	}
}

func TestGreenTimeComesFromMeasurement(t *testing.T) {
	// 长队列高等待：期望绿灯远长于默认值
	sensor := &stubSensor{m: entity.Measurement{QueueLength: 45, WaitingTime: 250}}
	engine, err := fuzzy.New(fuzzy.DefaultConfig())
	require.NoError(t, err)
	tl, ctx, _, stats := newTestLight(10, engine, sensor, &stubActuator{})

	for len(stats.transitions) < 2 {
		step(t, tl, ctx)
	}
	tl.Prepare()
	assert.Equal(t, entity.PhaseEWGreen, tl.Phase())
	assert.Greater(t, tl.GreenTime(), 70.0)
	assert.LessOrEqual(t, tl.GreenTime(), 90.0)
	require.Len(t, stats.samples, 1)
	assert.Equal(t, sensor.m, stats.samples[0])
}

func TestSensorFailureReusesLastGreenTime(t *testing.T) {
	sensor := &stubSensor{err: errors.New("detector offline")}
	tl, ctx, _, stats := newTestLight(
		20, &fixedController{green: 60}, sensor, &stubActuator{},
	)

	// 传感器失败时循环继续，绿灯沿用上一周期的20秒
	for len(stats.transitions) < 2 {
		step(t, tl, ctx)
	}
	tl.Prepare()
	assert.Equal(t, entity.PhaseEWGreen, tl.Phase())
	assert.Equal(t, 20.0, tl.GreenTime())
	assert.Empty(t, stats.samples)

	// 传感器恢复后下一次决策重新生效
	sensor.err = nil
	for len(stats.transitions) < 4 {
		step(t, tl, ctx)
	}
	tl.Prepare()
	assert.Equal(t, entity.PhaseNSGreen, tl.Phase())
	assert.Equal(t, 60.0, tl.GreenTime())
}

func TestActuatorFailureStopsStateMachine(t *testing.T) {
	actuator := &stubActuator{}
	tl, ctx, _, _ := newTestLight(
		5, &fixedController{green: 5}, &stubSensor{}, actuator,
	)

	for i := 0; i < 4; i++ {
		step(t, tl, ctx)
	}
	actuator.err = errors.New("controller unreachable")
	ctx.clock.InternalStep++
	ctx.clock.T = float64(ctx.clock.InternalStep) * ctx.clock.DT
	tl.Prepare()
	err := tl.Update()
	require.Error(t, err)
	assert.ErrorContains(t, err, "junction 1")
	// 执行器失败时相位不推进
	tl.Prepare()
	assert.Equal(t, entity.PhaseNSGreen, tl.Phase())
}

func TestRemainingTimeCountsDown(t *testing.T) {
	tl, ctx, _, _ := newTestLight(
		10, &fixedController{green: 10}, &stubSensor{}, &stubActuator{},
	)

	tl.Prepare()
	assert.Equal(t, 10.0, tl.RemainingTime())
	for i := 0; i < 4; i++ {
		step(t, tl, ctx)
	}
	assert.Equal(t, 6.0, tl.RemainingTime())
}
