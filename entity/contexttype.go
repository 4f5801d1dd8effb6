package entity

import (
	"github.com/tsinghua-fib-lab/fuzzylight-sim/clock"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/utils/config"
)

type ITaskContext interface {
	Clock() *clock.Clock
	LaneManager() ILaneManager
	JunctionManager() IJunctionManager
	RuntimeConfig() *config.RuntimeConfig
	Stats() IStatsSink
}
