package lane

import (
	"fmt"

	"git.fiblab.net/general/common/v2/parallel"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/entity"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/utils/config"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/utils/container"
)

// LaneManager Lane管理器
// 功能：管理所有Lane实体，提供创建、查找、初始化功能，
// 并维护全部车道的车辆到达事件调度
type LaneManager struct {
	ctx entity.ITaskContext

	data  map[int32]*Lane
	lanes []*Lane

	// 到达事件队列，元素为车道ID，优先级为到达时间
	arrivals *container.PriorityQueue[int32]
}

// NewManager 创建Lane管理器实例
// 功能：初始化Lane管理器，创建内部数据结构
// 参数：ctx-任务上下文
// 返回：新创建的Lane管理器实例
func NewManager(ctx entity.ITaskContext) *LaneManager {
	return &LaneManager{
		ctx:      ctx,
		data:     make(map[int32]*Lane),
		lanes:    make([]*Lane, 0),
		arrivals: container.NewPriorityQueue[int32](),
	}
}

// Init 初始化所有Lane
// 功能：根据配置初始化所有Lane对象，建立ID映射关系，调度首个到达事件
// 参数：cfgs-车道配置列表
func (m *LaneManager) Init(cfgs []config.Lane) {
	m.lanes = parallel.GoMap(cfgs, func(cfg config.Lane) *Lane {
		return newLane(m.ctx, cfg)
	})
	m.data = lo.SliceToMap(m.lanes, func(l *Lane) (int32, *Lane) {
		return l.id, l
	})
	t0 := m.ctx.Clock().T
	for _, l := range m.lanes {
		if l.arrivalRate > 0 {
			m.arrivals.HeapPush(l.id, t0+l.generator.Exponential(l.arrivalRate))
		}
	}
}

// Get 根据ID获取Lane实例
// 功能：通过Lane ID查找对应的Lane对象，如果不存在则panic
// 参数：id-Lane的唯一标识符
// 返回：对应的Lane实例
func (m *LaneManager) Get(id int32) entity.ILane {
	if lane, ok := m.data[id]; !ok {
		log.Panicf("no id %d in lane data", id)
		return nil
	} else {
		return lane
	}
}

// GetOrError 根据ID获取Lane实例（带错误处理）
// 功能：通过Lane ID查找对应的Lane对象，如果不存在则返回错误
// 参数：id-Lane的唯一标识符
// 返回：Lane实例和错误信息
func (m *LaneManager) GetOrError(id int32) (entity.ILane, error) {
	if lane, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in lane data", id)
	} else {
		return lane, nil
	}
}

// InDirection 获取属于指定放行方向的所有车道
// 参数：dir-放行方向
// 返回：车道列表
func (m *LaneManager) InDirection(dir entity.Direction) []entity.ILane {
	return lo.FilterMap(m.lanes, func(l *Lane, _ int) (entity.ILane, bool) {
		return l, l.dir == dir
	})
}

// Prepare 准备阶段，处理所有Lane的准备工作
// 功能：对所有Lane执行准备阶段，把buffer中的到达车辆并入队列
func (m *LaneManager) Prepare() {
	parallel.GoFor(m.lanes, func(l *Lane) { l.prepare() })
}

// Update 更新阶段，执行所有Lane的模拟逻辑
// 功能：弹出所有到期的到达事件并调度下一次到达，然后更新车道状态
// 参数：dt-时间步长
// 说明：到达事件的弹出是串行的（共享一个事件队列），
// 车道状态更新相互独立，可以并行执行
func (m *LaneManager) Update(dt float64) {
	t := m.ctx.Clock().T
	for m.arrivals.Len() > 0 {
		laneID, at := m.arrivals.First()
		if at > t {
			break
		}
		m.arrivals.HeapPop()
		l := m.data[laneID]
		l.addVehicle(at)
		m.arrivals.HeapPush(laneID, at+l.generator.Exponential(l.arrivalRate))
	}
	parallel.GoFor(m.lanes, func(l *Lane) { l.update(dt) })
}
