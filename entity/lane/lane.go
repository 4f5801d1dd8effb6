package lane

import (
	"sync"

	"git.fiblab.net/general/common/v2/mathutil"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/entity"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/utils/config"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/utils/container"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/utils/randengine"
)

// vehicle 车道上排队的车辆
// 说明：只保留控制回路需要的最小状态，
// waiting为车辆停驶期间累计的等待时间
type vehicle struct {
	id        int32
	enterTime float64 // 进入车道的仿真时间（秒）
	waiting   float64 // 累计等待时间（秒）
}

// Lane 进口车道实体
// 功能：维护一条进口车道的车辆排队过程，作为传感器的数据来源、
// 信号灯状态的执行末端
// 说明：车辆按泊松过程到达（指数分布到达间隔），
// 绿灯时队首车辆按饱和车头时距逐辆放行，红灯/黄灯不放行
type Lane struct {
	ctx entity.ITaskContext

	id  int32
	dir entity.Direction

	arrivalRate float64            // 到达速率（辆/秒）
	headway     float64            // 饱和车头时距（秒/辆）
	generator   *randengine.Engine // 到达过程的随机数引擎

	vehicles       *container.Queue[*vehicle]            // 排队车辆，队首最早进入
	addBuffer      []*container.QueueNode[*vehicle]      // 到达车辆buffer，prepare时并入队列
	addBufferMutex sync.Mutex

	nextVehicleID int32
	dischargeT    float64 // 距离下一辆车放行的剩余时间（秒）
	departed      int32   // 累计通过路口的车辆数

	lightState         entity.LightState // 车道信号灯状态
	lightTotalTime     float64           // 车道信号灯本相位总时长
	lightRemainingTime float64           // 车道信号灯下一次切换时间
}

// newLane 创建并初始化一个新的Lane实例
// 功能：根据配置创建Lane对象，初始化到达过程与信号灯状态
// 参数：ctx-任务上下文，base-车道配置（方向已通过配置校验）
// 返回：初始化完成的Lane实例
// 说明：随机数引擎以车道ID为种子，保证仿真可复现；
// 信号灯初值为绿灯（无信控状态），由信控模块在准备阶段覆盖
func newLane(ctx entity.ITaskContext, base config.Lane) *Lane {
	dir, err := entity.ParseDirection(base.Direction)
	if err != nil {
		log.Panicf("lane %d: %v", base.ID, err)
	}
	return &Lane{
		ctx:                ctx,
		id:                 base.ID,
		dir:                dir,
		arrivalRate:        base.ArrivalRate,
		headway:            base.Headway,
		generator:          randengine.New(uint64(base.ID)),
		vehicles:           &container.Queue[*vehicle]{ID: "lane vehicles"},
		addBuffer:          make([]*container.QueueNode[*vehicle], 0),
		lightState:         entity.LightStateGreen,
		lightTotalTime:     mathutil.INF,
		lightRemainingTime: mathutil.INF,
	}
}

// addVehicle 车辆到达
// 功能：将一辆新到达的车辆写入buffer，prepare阶段并入排队队列
// 参数：t-到达的仿真时间
func (l *Lane) addVehicle(t float64) {
	l.addBufferMutex.Lock()
	defer l.addBufferMutex.Unlock()
	l.nextVehicleID++
	l.addBuffer = append(l.addBuffer, &container.QueueNode[*vehicle]{
		S: t,
		Value: &vehicle{
			id:        l.nextVehicleID,
			enterTime: t,
		},
	})
}

// prepare 准备阶段，处理buffer中的到达车辆
// 功能：将buffer中的车辆按到达顺序并入排队队列
func (l *Lane) prepare() {
	l.addBufferMutex.Lock()
	defer l.addBufferMutex.Unlock()
	for _, node := range l.addBuffer {
		l.vehicles.PushBack(node)
	}
	l.addBuffer = l.addBuffer[:0]
}

// update 更新阶段，执行车道的模拟逻辑
// 功能：绿灯时按饱和车头时距放行队首车辆，未放行的车辆累计等待时间
// 参数：dt-时间步长
// 算法说明：
// 1. 绿灯且有排队车辆时，放行计时器递减，每经过一个车头时距放行一辆
// 2. 红灯/黄灯时不放行，放行计时器清零（下个绿灯从头计时）
// 3. 所有仍在排队的车辆视为停驶，等待时间累加dt
func (l *Lane) update(dt float64) {
	if l.lightState == entity.LightStateGreen && l.vehicles.Len() > 0 {
		l.dischargeT -= dt
		for l.dischargeT <= 0 && l.vehicles.Len() > 0 {
			l.vehicles.PopFront()
			l.departed++
			l.dischargeT += l.headway
		}
		if l.vehicles.Len() == 0 {
			l.dischargeT = 0
		}
	} else {
		l.dischargeT = 0
	}
	for node := l.vehicles.First(); node != nil; node = node.Next() {
		node.Value.waiting += dt
	}
}

// ID 获取车道ID
func (l *Lane) ID() int32 {
	return l.id
}

// Direction 获取车道所属放行方向
func (l *Lane) Direction() entity.Direction {
	return l.dir
}

// SetLight 设置车道信号灯状态
// 功能：由信控模块在准备阶段写入当前相位下该车道的信号灯状态
// 参数：state-信号灯状态，totalTime-本相位总时长，remainingTime-剩余时长
func (l *Lane) SetLight(state entity.LightState, totalTime, remainingTime float64) {
	l.lightState = state
	l.lightTotalTime = totalTime
	l.lightRemainingTime = remainingTime
}

// Light 获取当前信号灯状态
func (l *Lane) Light() entity.LightState {
	return l.lightState
}

// HaltingCount 获取停驶（排队）车辆数
// 说明：排队模型中所有在场车辆均为停驶车辆
func (l *Lane) HaltingCount() int32 {
	return int32(l.vehicles.Len())
}

// VehicleCount 获取车道上的车辆总数
func (l *Lane) VehicleCount() int32 {
	return int32(l.vehicles.Len())
}

// TotalWaitingTime 获取车道上所有车辆的累计等待时间
// 返回：累计等待时间（秒）
func (l *Lane) TotalWaitingTime() float64 {
	total := 0.0
	for node := l.vehicles.First(); node != nil; node = node.Next() {
		total += node.Value.waiting
	}
	return total
}

// Departed 获取累计通过路口的车辆数
func (l *Lane) Departed() int32 {
	return l.departed
}
