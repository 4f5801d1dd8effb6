package entity

import (
	"github.com/tsinghua-fib-lab/fuzzylight-sim/utils/config"
)

// Manager依赖倒置

// entity/lane/manager.go的依赖倒置
type ILaneManager interface {
	Init(cfgs []config.Lane) // 初始化

	// 输入Lane ID，查找Lane，如果不存在则panic
	Get(id int32) ILane
	// 输入Lane ID，查找Lane，如果不存在则返回error
	GetOrError(id int32) (ILane, error)
	// 获取属于指定放行方向的所有车道
	InDirection(dir Direction) []ILane

	Prepare()          // 准备阶段
	Update(dt float64) // 更新阶段
}

// entity/junction/junction.go的依赖倒置
type IJunction interface {
	ID() int32           // 获取路口ID
	Phase() Phase        // 获取当前相位
	GreenTime() float64  // 获取当前/下一个绿灯相位的时长
	PhaseChanges() int32 // 获取累计相位切换次数
}

// entity/junction/manager.go的依赖倒置
type IJunctionManager interface {
	Init(cfgs []config.Junction, laneManager ILaneManager) // 初始化

	// 输入Junction ID，查找Junction，如果不存在则panic
	Get(id int32) IJunction
	// 输入Junction ID，查找Junction，如果不存在则返回error
	GetOrError(id int32) (IJunction, error)

	Prepare()        // 准备阶段
	Update() error   // 更新阶段，执行器失败时返回错误并终止本次仿真
}

// 传感器接口：按方向聚合车道量测
// 说明：失败是可恢复的，信控模块退回使用上一周期的绿灯时长
type ISensor interface {
	// 获取指定方向的排队车辆数与平均等待时间
	// 平均等待时间为累计等待除以在场车辆数，无车时为0（不允许除零故障）
	Metrics(dir Direction) (Measurement, error)
}

// 执行器接口：向信号机下发相位切换命令
// 说明：同步执行，失败对本次仿真是致命的——
// 信控模块在不知道真实信号状态时不允许继续运行
type IActuator interface {
	// 下发相位切换命令，phase为固定编码的相位索引
	SetPhase(junctionID int32, phase Phase) error
}

// 绿灯时长决策接口
// 说明：fuzzy.Engine实现了该接口；实现必须无状态且确定
type IGreenTimeController interface {
	ComputeGreenTime(queueLength, waitingTime float64) float64
}

// 统计输出接口（只写不读，核心逻辑不依赖）
type IStatsSink interface {
	RecordTransition(ev TransitionEvent)                                // 记录一次相位切换
	RecordControlSample(junctionID int32, dir Direction, m Measurement) // 记录一次决策引擎的输入采样
	RecordStep(running, departed int32)                                 // 记录每步的在场/累计通过车辆数
}
