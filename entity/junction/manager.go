package junction

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/entity"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/utils/config"
)

// JunctionManager Junction管理器
// 功能：管理所有Junction实体，提供创建、查找、初始化功能
type JunctionManager struct {
	ctx entity.ITaskContext

	data      map[int32]*Junction
	junctions []*Junction
}

// NewManager 创建Junction管理器实例
// 功能：初始化Junction管理器，创建内部数据结构
// 参数：ctx-任务上下文
// 返回：新创建的Junction管理器实例
func NewManager(ctx entity.ITaskContext) *JunctionManager {
	return &JunctionManager{
		ctx:       ctx,
		data:      make(map[int32]*Junction),
		junctions: make([]*Junction, 0),
	}
}

// Init 初始化所有Junction
// 功能：根据配置初始化所有Junction对象，建立ID映射关系
// 参数：cfgs-路口配置列表，laneManager-车道管理器
func (m *JunctionManager) Init(cfgs []config.Junction, laneManager entity.ILaneManager) {
	m.junctions = lo.Map(cfgs, func(cfg config.Junction, _ int) *Junction {
		return newJunction(m.ctx, cfg, laneManager)
	})
	m.data = lo.SliceToMap(m.junctions, func(j *Junction) (int32, *Junction) {
		return j.id, j
	})
}

// Get 根据ID获取Junction实例
// 功能：通过Junction ID查找对应的Junction对象，如果不存在则panic
// 参数：id-Junction的唯一标识符
// 返回：对应的Junction实例
func (m *JunctionManager) Get(id int32) entity.IJunction {
	if junction, ok := m.data[id]; !ok {
		log.Panicf("no id %d in junction data", id)
		return nil
	} else {
		return junction
	}
}

// GetOrError 根据ID获取Junction实例（带错误处理）
// 功能：通过Junction ID查找对应的Junction对象，如果不存在则返回错误
// 参数：id-Junction的唯一标识符
// 返回：Junction实例和错误信息
func (m *JunctionManager) GetOrError(id int32) (entity.IJunction, error) {
	if junction, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in junction data", id)
	} else {
		return junction, nil
	}
}

// Prepare 准备阶段，处理所有Junction的准备工作
// 功能：对所有Junction执行准备阶段，将信控结果写入车道
func (m *JunctionManager) Prepare() {
	for _, j := range m.junctions {
		j.prepare()
	}
}

// Update 更新阶段，执行所有Junction的模拟逻辑
// 功能：推进所有Junction的信号灯状态机
// 返回：错误信息，任一路口执行器失败即终止
func (m *JunctionManager) Update() error {
	for _, j := range m.junctions {
		if err := j.update(); err != nil {
			return err
		}
	}
	return nil
}
