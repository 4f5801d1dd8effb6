// 提供基于模糊推理的自适应信号灯控制
// 固定四相位循环（NS绿->NS黄->EW绿->EW黄），黄灯时长固定，
// 每次黄灯结束时根据即将放行方向的排队与等待量测计算下一个绿灯时长
package trafficlight

import (
	"flag"
	"fmt"

	"github.com/tsinghua-fib-lab/fuzzylight-sim/entity"
)

var (
	yellowTime = flag.Float64("tl.yellow_time", 3, "模糊信控黄灯清空时间（秒）")
)

// fuzzyTlRuntime 模糊信号灯运行时数据结构
// 功能：存储相位状态机的全部可变状态
// 说明：相位只能取四个定义值之一，通过固定循环切换，
// 结构上保证任意时刻只有一个方向持有通行权
type fuzzyTlRuntime struct {
	phase        entity.Phase // 当前相位
	phaseStart   float64      // 当前相位开始的仿真时间（秒）
	greenTime    float64      // 当前/下一个绿灯相位的时长（秒）
	phaseChanges int32        // 累计相位切换次数（绿灯结束时计数）
}

// FuzzyTrafficLight 模糊信号灯控制器
// 功能：实现基于模糊推理的自适应信号灯控制，
// 按固定四相位循环切换，绿灯时长由决策引擎动态给出
type FuzzyTrafficLight struct {
	ctx entity.ITaskContext

	junctionID int32
	lanes      map[entity.Direction][]entity.ILaneLightSetter // 按方向分组的车道
	controller entity.IGreenTimeController                    // 绿灯时长决策引擎
	sensor     entity.ISensor                                 // 车道量测传感器
	actuator   entity.IActuator                               // 信号机执行器
	stats      entity.IStatsSink                              // 统计输出（只写）

	snapshot fuzzyTlRuntime // snapshot，用于保存输出的数据
	runtime  fuzzyTlRuntime // 运行时数据
}

// NewFuzzyTrafficLight 创建模糊信号灯控制器
// 功能：初始化模糊信号灯控制器，设置初始相位与默认绿灯时长
// 参数：ctx-任务上下文，junctionID-路口ID，lanes-按方向分组的车道，
// controller-决策引擎，sensor-传感器，actuator-执行器，stats-统计输出，
// defaultGreen-仿真开始时的绿灯时长（秒）
// 返回：初始化完成的模糊信号灯控制器实例
// 说明：初始相位为NS绿灯，相位起点为当前仿真时间
func NewFuzzyTrafficLight(
	ctx entity.ITaskContext,
	junctionID int32,
	lanes map[entity.Direction][]entity.ILaneLightSetter,
	controller entity.IGreenTimeController,
	sensor entity.ISensor,
	actuator entity.IActuator,
	stats entity.IStatsSink,
	defaultGreen float64,
) *FuzzyTrafficLight {
	rt := fuzzyTlRuntime{
		phase:      entity.PhaseNSGreen,
		phaseStart: ctx.Clock().T,
		greenTime:  defaultGreen,
	}
	return &FuzzyTrafficLight{
		ctx:        ctx,
		junctionID: junctionID,
		lanes:      lanes,
		controller: controller,
		sensor:     sensor,
		actuator:   actuator,
		stats:      stats,
		snapshot:   rt,
		runtime:    rt,
	}
}

// Prepare 准备阶段，处理信号灯的准备工作
// 功能：更新snapshot，将当前相位信息写入车道
// 说明：持有通行权方向的车道写入绿灯/黄灯，对向车道写入红灯；
// 四相位循环保证两个方向不会同时为非红灯
func (l *FuzzyTrafficLight) Prepare() {
	// 写入snapshot
	l.snapshot = l.runtime
	t := l.ctx.Clock().T
	active := l.snapshot.phase.Direction()

	var state entity.LightState
	var total float64
	if l.snapshot.phase.IsGreen() {
		state = entity.LightStateGreen
		total = l.snapshot.greenTime
	} else {
		state = entity.LightStateYellow
		total = *yellowTime
	}
	remaining := total - (t - l.snapshot.phaseStart)
	if remaining < 0 {
		remaining = 0
	}
	// 对向红灯到放行的剩余时间：需要等完本方向的绿灯与黄灯
	redRemaining := remaining
	if l.snapshot.phase.IsGreen() {
		redRemaining += *yellowTime
	}
	redTotal := l.snapshot.greenTime + *yellowTime

	for dir, group := range l.lanes {
		for _, lane := range group {
			if dir == active {
				lane.SetLight(state, total, remaining)
			} else {
				lane.SetLight(entity.LightStateRed, redTotal, redRemaining)
			}
		}
	}
}

// Update 更新阶段，执行模糊信控的核心逻辑
// 功能：按逐步轮询方式推进相位状态机
// 返回：错误信息，执行器失败时返回（对本次仿真致命）
// 算法说明：
// 1. 计算当前相位已经持续的时间elapsed
// 2. 绿灯相位且elapsed达到绿灯时长：切换到本方向黄灯（固定时长，
//    与决策引擎无关），相位切换计数加一
// 3. 黄灯相位且elapsed达到黄灯时长：用即将放行方向的量测计算
//    新的绿灯时长，切换到该方向绿灯；传感器失败时沿用上一周期
//    的绿灯时长（可恢复，固定循环本身不依赖模糊结果）
// 4. 否则本步不切换
// 说明：每次切换向执行器下发一次相位命令并产生一个切换事件；
// 执行器失败时状态机不推进，错误带着路口、相位与时间上下文返回
func (l *FuzzyTrafficLight) Update() error {
	t := l.ctx.Clock().T
	elapsed := t - l.runtime.phaseStart
	switch {
	case l.runtime.phase.IsGreen():
		if elapsed < l.runtime.greenTime {
			return nil
		}
		next := l.runtime.phase.Next()
		if err := l.actuator.SetPhase(l.junctionID, next); err != nil {
			return fmt.Errorf("junction %d: switch to %v at %.1fs: %w", l.junctionID, next, t, err)
		}
		l.runtime.phase = next
		l.runtime.phaseStart = t
		l.runtime.phaseChanges++
		l.stats.RecordTransition(entity.TransitionEvent{
			Time:       t,
			JunctionID: l.junctionID,
			Phase:      next,
			Duration:   *yellowTime,
		})
		log.Debugf("junction %d: %v (%.0fs) at %.0fs", l.junctionID, next, *yellowTime, t)
	case l.runtime.phase.IsYellow():
		if elapsed < *yellowTime {
			return nil
		}
		next := l.runtime.phase.Next()
		dir := next.Direction()
		if m, err := l.sensor.Metrics(dir); err != nil {
			// 传感器失败可恢复：沿用上一周期的绿灯时长
			log.Warnf("junction %d: sensor for %v failed at %.1fs (phase %v), reuse green time %.1fs: %v",
				l.junctionID, dir, t, l.runtime.phase, l.runtime.greenTime, err)
		} else {
			l.runtime.greenTime = l.controller.ComputeGreenTime(float64(m.QueueLength), m.WaitingTime)
			l.stats.RecordControlSample(l.junctionID, dir, m)
		}
		if err := l.actuator.SetPhase(l.junctionID, next); err != nil {
			return fmt.Errorf("junction %d: switch to %v at %.1fs: %w", l.junctionID, next, t, err)
		}
		l.runtime.phase = next
		l.runtime.phaseStart = t
		l.stats.RecordTransition(entity.TransitionEvent{
			Time:       t,
			JunctionID: l.junctionID,
			Phase:      next,
			Duration:   l.runtime.greenTime,
		})
		log.Debugf("junction %d: %v (%.1fs) at %.0fs", l.junctionID, next, l.runtime.greenTime, t)
	}
	return nil
}

// Phase 获取当前相位
func (l *FuzzyTrafficLight) Phase() entity.Phase {
	return l.snapshot.phase
}

// GreenTime 获取当前/下一个绿灯相位的时长
func (l *FuzzyTrafficLight) GreenTime() float64 {
	return l.snapshot.greenTime
}

// RemainingTime 获取当前相位剩余时间
// 返回：当前相位的剩余时间（秒），不小于0
func (l *FuzzyTrafficLight) RemainingTime() float64 {
	total := l.snapshot.greenTime
	if l.snapshot.phase.IsYellow() {
		total = *yellowTime
	}
	remaining := total - (l.ctx.Clock().T - l.snapshot.phaseStart)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// PhaseChanges 获取累计相位切换次数
// 说明：只统计绿灯结束（进入黄灯）的切换
func (l *FuzzyTrafficLight) PhaseChanges() int32 {
	return l.snapshot.phaseChanges
}
