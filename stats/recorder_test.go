package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/entity"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.RecordTransition(entity.TransitionEvent{Time: 30, JunctionID: 0, Phase: entity.PhaseNSYellow, Duration: 3})
	r.RecordTransition(entity.TransitionEvent{Time: 33, JunctionID: 0, Phase: entity.PhaseEWGreen, Duration: 42})
	r.RecordControlSample(0, entity.DirectionEW, entity.Measurement{QueueLength: 8, WaitingTime: 60})
	r.RecordStep(10, 0)
	r.RecordStep(12, 3)
	r.RecordStep(7, 9)

	assert.Equal(t, 2, r.Transitions())
	assert.Equal(t, int32(3), r.steps)
	assert.Equal(t, int32(12), r.maxRunning)
	assert.Equal(t, int32(9), r.totalDeparted)

	// 汇总不改变状态，空记录器也不崩溃
	r.Summary()
	NewRecorder().Summary()
}
