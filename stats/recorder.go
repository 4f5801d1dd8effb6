// 提供仿真过程的统计汇总
// 只写不读：核心控制逻辑向这里输出事件与采样，不从这里读回任何状态
package stats

import (
	"sync"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/entity"
)

// controlSample 一次绿灯时长决策的输入采样
type controlSample struct {
	junctionID int32
	dir        entity.Direction
	m          entity.Measurement
}

// Recorder 仿真统计记录器
// 功能：收集相位切换事件、决策采样与每步车辆计数，
// 仿真结束时输出汇总
// 说明：写入可能来自并行的实体更新，内部加锁
type Recorder struct {
	mtx sync.Mutex

	transitions []entity.TransitionEvent
	samples     []controlSample

	steps         int32
	maxRunning    int32
	totalDeparted int32
}

// NewRecorder 创建统计记录器实例
func NewRecorder() *Recorder {
	return &Recorder{
		transitions: make([]entity.TransitionEvent, 0),
		samples:     make([]controlSample, 0),
	}
}

// RecordTransition 记录一次相位切换
// 参数：ev-相位切换事件
func (r *Recorder) RecordTransition(ev entity.TransitionEvent) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.transitions = append(r.transitions, ev)
}

// RecordControlSample 记录一次决策引擎的输入采样
// 参数：junctionID-路口ID，dir-即将放行的方向，m-聚合量测
func (r *Recorder) RecordControlSample(junctionID int32, dir entity.Direction, m entity.Measurement) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.samples = append(r.samples, controlSample{junctionID: junctionID, dir: dir, m: m})
}

// RecordStep 记录每步的车辆计数
// 参数：running-当前在场车辆数，departed-累计通过车辆数
func (r *Recorder) RecordStep(running, departed int32) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.steps++
	if running > r.maxRunning {
		r.maxRunning = running
	}
	r.totalDeparted = departed
}

// Transitions 获取累计相位切换事件数
func (r *Recorder) Transitions() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return len(r.transitions)
}

// Summary 输出仿真统计汇总
// 功能：汇总相位切换次数、绿灯时长分布、决策输入均值与车辆吞吐，
// 以日志形式输出
func (r *Recorder) Summary() {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	greens := lo.Filter(r.transitions, func(ev entity.TransitionEvent, _ int) bool {
		return ev.Phase.IsGreen()
	})
	log.Infof("steps: %d, phase transitions: %d (green: %d)",
		r.steps, len(r.transitions), len(greens))
	if len(greens) > 0 {
		totalGreen := lo.SumBy(greens, func(ev entity.TransitionEvent) float64 {
			return ev.Duration
		})
		log.Infof("green time: avg %.1fs, min %.1fs, max %.1fs",
			totalGreen/float64(len(greens)),
			lo.MinBy(greens, func(a, b entity.TransitionEvent) bool { return a.Duration < b.Duration }).Duration,
			lo.MaxBy(greens, func(a, b entity.TransitionEvent) bool { return a.Duration > b.Duration }).Duration,
		)
	}
	if len(r.samples) > 0 {
		avgQueue := lo.SumBy(r.samples, func(s controlSample) float64 {
			return float64(s.m.QueueLength)
		}) / float64(len(r.samples))
		avgWait := lo.SumBy(r.samples, func(s controlSample) float64 {
			return s.m.WaitingTime
		}) / float64(len(r.samples))
		log.Infof("control input: avg queue %.1f, avg waiting %.1fs over %d samples",
			avgQueue, avgWait, len(r.samples))
	}
	log.Infof("vehicles: departed %d, peak queued %d", r.totalDeparted, r.maxRunning)
}
