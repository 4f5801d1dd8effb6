package junction

import (
	"fmt"

	"github.com/tsinghua-fib-lab/fuzzylight-sim/entity"
)

// laneSensor 车道量测传感器
// 功能：按放行方向聚合进口车道的排队与等待数据，
// 为绿灯时长决策提供输入
// 说明：进程内实现，代表外部检测器；对每个方向聚合全部所属车道
type laneSensor struct {
	lanes map[entity.Direction][]entity.ILane
}

// newLaneSensor 创建车道量测传感器
// 参数：lanes-按方向分组的车道映射
func newLaneSensor(lanes map[entity.Direction][]entity.ILane) *laneSensor {
	return &laneSensor{lanes: lanes}
}

// Metrics 获取指定方向的聚合量测
// 功能：统计该方向所有车道的停驶车辆数与平均等待时间
// 参数：dir-放行方向
// 返回：量测结果与错误信息
// 算法说明：
// 1. 排队长度为各车道停驶车辆数之和
// 2. 平均等待时间为累计等待时间除以在场车辆数，无车时为0（不允许除零故障）
func (s *laneSensor) Metrics(dir entity.Direction) (entity.Measurement, error) {
	group, ok := s.lanes[dir]
	if !ok || len(group) == 0 {
		return entity.Measurement{}, fmt.Errorf("sensor: no lanes for direction %v", dir)
	}
	var queue, count int32
	waiting := 0.0
	for _, l := range group {
		queue += l.HaltingCount()
		count += l.VehicleCount()
		waiting += l.TotalWaitingTime()
	}
	avg := 0.0
	if count > 0 {
		avg = waiting / float64(count)
	}
	return entity.Measurement{QueueLength: queue, WaitingTime: avg}, nil
}
