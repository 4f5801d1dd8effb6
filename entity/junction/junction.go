package junction

import (
	"github.com/tsinghua-fib-lab/fuzzylight-sim/entity"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/entity/junction/trafficlight"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/fuzzy"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/utils/config"
)

// Junction 信控路口实体
// 功能：组织进口车道、传感器、执行器与模糊信控模块，
// 对外提供相位与统计的读取接口
type Junction struct {
	ctx entity.ITaskContext

	id           int32
	lanes        map[entity.Direction][]entity.ILane // 按放行方向分组的进口车道
	trafficLight ITrafficLight                       // 信号灯模块
	sensor       entity.ISensor
	actuator     entity.IActuator
}

// newJunction 创建并初始化一个新的Junction实例
// 功能：根据配置创建Junction对象，初始化车道分组、传感器、执行器与信控模块
// 参数：ctx-任务上下文，base-路口配置，laneManager-车道管理器
// 返回：初始化完成的Junction实例
// 说明：模糊推理引擎使用固定断点的默认配置，构造失败属于程序错误，直接panic
func newJunction(
	ctx entity.ITaskContext,
	base config.Junction,
	laneManager entity.ILaneManager,
) *Junction {
	j := &Junction{
		ctx:   ctx,
		id:    base.ID,
		lanes: make(map[entity.Direction][]entity.ILane),
	}

	// 初始化车道分组
	setters := make(map[entity.Direction][]entity.ILaneLightSetter)
	for _, laneID := range base.LaneIDs {
		lane := laneManager.Get(laneID)
		dir := lane.Direction()
		j.lanes[dir] = append(j.lanes[dir], lane)
		setters[dir] = append(setters[dir], lane)
	}

	engine, err := fuzzy.New(fuzzy.DefaultConfig())
	if err != nil {
		log.Panicf("junction %d: init fuzzy engine error: %v", j.id, err)
	}
	j.sensor = newLaneSensor(j.lanes)
	j.actuator = &localActuator{junctionID: j.id}
	j.trafficLight = trafficlight.NewFuzzyTrafficLight(
		ctx, j.id, setters,
		engine, j.sensor, j.actuator, ctx.Stats(),
		base.DefaultGreen,
	)

	return j
}

// prepare 准备阶段，处理信号灯的准备工作
// 功能：执行信号灯的准备工作，将当前相位写入车道
func (j *Junction) prepare() {
	j.trafficLight.Prepare()
}

// update 更新阶段，执行Junction的模拟逻辑
// 功能：推进信号灯相位状态机
// 返回：错误信息，执行器失败时终止本次仿真
func (j *Junction) update() error {
	return j.trafficLight.Update()
}

// ID 获取Junction的唯一标识符
// 返回：Junction的ID，如果Junction为nil则返回-1
func (j *Junction) ID() int32 {
	if j == nil {
		return -1
	}
	return j.id
}

// Phase 获取当前相位
func (j *Junction) Phase() entity.Phase {
	return j.trafficLight.Phase()
}

// GreenTime 获取当前/下一个绿灯相位的时长
func (j *Junction) GreenTime() float64 {
	return j.trafficLight.GreenTime()
}

// PhaseChanges 获取累计相位切换次数
func (j *Junction) PhaseChanges() int32 {
	return j.trafficLight.PhaseChanges()
}
