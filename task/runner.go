package task

import (
	"flag"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/entity"
)

var (
	heartBeatInterval = flag.Int("log.heartbeat_interval", 100, "心跳日志间隔步数")
)

// prepare 准备阶段，每步执行一次
// 功能：在每个仿真步骤开始时进行准备工作
// 算法说明：
// 1. 更新时钟：增加内部步数并计算当前时间
// 2. 心跳日志：定期输出系统状态信息
// 3. 顺序准备：先车道后路口
//   - 车道管理器：并入本步到达的车辆
//   - 路口管理器：固化信控snapshot并将信号灯状态写入车道
//
// 说明：路口准备依赖车道准备完成后的排队状态，两者不可并行
func (ctx *Context) prepare() {
	ctx.clock.InternalStep++
	ctx.clock.T = float64(ctx.clock.InternalStep) * ctx.clock.DT

	if ctx.clock.InternalStep%int32(*heartBeatInterval) == 0 {
		hour, minute, second := ctx.clock.GetHourMinuteSecond()
		log.Infof(
			"STEP: %d(%d:%d:%.2f)",
			ctx.clock.InternalStep,
			hour, minute, second,
		)
	}

	ctx.laneManager.Prepare()
	ctx.junctionManager.Prepare()
}

// update 更新阶段，每步执行一次
// 功能：在每个仿真步骤中执行主要的仿真逻辑
// 返回：错误信息，路口执行器失败时返回
// 算法说明：
// 1. 路口更新：推进信号灯相位状态机（读取车道排队量测）
// 2. 车道更新：生成到达车辆、按信号状态放行队首车辆
// 3. 统计输出：记录本步的在场与累计通过车辆数
// 说明：路口先于车道更新，保证决策读到的是本步更新前的量测快照
func (ctx *Context) update() error {
	if err := ctx.junctionManager.Update(); err != nil {
		return err
	}
	ctx.laneManager.Update(ctx.clock.DT)

	lanes := append(
		ctx.laneManager.InDirection(entity.DirectionNS),
		ctx.laneManager.InDirection(entity.DirectionEW)...,
	)
	running := lo.SumBy(lanes, func(l entity.ILane) int32 { return l.VehicleCount() })
	departed := lo.SumBy(lanes, func(l entity.ILane) int32 { return l.Departed() })
	ctx.recorder.RecordStep(running, departed)
	return nil
}

// Run 运行
// 功能：执行完整的仿真过程，直到到达结束步或发生致命错误
// 返回：错误信息，路口执行器失败时提前终止并返回
func (ctx *Context) Run() error {
	// 初始化
	ctx.Init()
	for {
		ctx.prepare()
		if err := ctx.update(); err != nil {
			log.Errorf("step %d: %v", ctx.clock.InternalStep, err)
			return err
		}
		if ctx.clock.InternalStep+1 >= ctx.clock.END_STEP {
			break
		}
	}
	log.Infof("engine complete")
	ctx.recorder.Summary()
	return nil
}
