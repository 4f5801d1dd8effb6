package config

import "fmt"

// ControlStep 指定模拟器模拟时间范围和间隔的配置项
// 功能：定义仿真时间控制参数
// 说明：控制仿真的时间范围与步长
type ControlStep struct {
	Start    int32   `yaml:"start"`    // 开始步数
	Total    int32   `yaml:"total"`    // 总步数
	Interval float64 `yaml:"interval"` // 每步的时间间隔（秒）
}

// Control 模拟器控制配置
type Control struct {
	Step ControlStep `yaml:"step"`
}

// Lane 车道配置
// 功能：定义一条进口车道的到达过程参数
type Lane struct {
	ID          int32   `yaml:"id"`                 // 车道ID
	Direction   string  `yaml:"direction"`          // 所属放行方向（NS或EW）
	ArrivalRate float64 `yaml:"arrival_rate"`       // 车辆到达速率（辆/秒），0表示无到达
	Headway     float64 `yaml:"headway,omitempty"`  // 绿灯放行的饱和车头时距（秒/辆），默认2
}

// Junction 路口配置
// 功能：定义一个信控路口及其进口车道
type Junction struct {
	ID           int32   `yaml:"id"`                      // 路口ID
	DefaultGreen float64 `yaml:"default_green,omitempty"` // 仿真开始时的绿灯时长（秒），默认30
	LaneIDs      []int32 `yaml:"lane_ids"`                // 进口车道ID列表
}

// Config YAML配置文件的根结构
type Config struct {
	Control   Control    `yaml:"control"`   // 模拟过程控制
	Junctions []Junction `yaml:"junctions"` // 路口
	Lanes     []Lane     `yaml:"lanes"`     // 车道
}

// Validate 校验配置
// 功能：检查配置的合法性，在仿真启动前发现配置错误
// 返回：错误信息
func (c Config) Validate() error {
	if c.Control.Step.Interval <= 0 {
		return fmt.Errorf("config: control.step.interval must be positive, got %v", c.Control.Step.Interval)
	}
	if c.Control.Step.Total <= 0 {
		return fmt.Errorf("config: control.step.total must be positive, got %v", c.Control.Step.Total)
	}
	if len(c.Junctions) == 0 {
		return fmt.Errorf("config: no junctions")
	}
	laneIDs := make(map[int32]struct{}, len(c.Lanes))
	for _, l := range c.Lanes {
		if _, ok := laneIDs[l.ID]; ok {
			return fmt.Errorf("config: duplicate lane id %d", l.ID)
		}
		laneIDs[l.ID] = struct{}{}
		if l.Direction != "NS" && l.Direction != "EW" {
			return fmt.Errorf("config: lane %d has bad direction %q (expect NS or EW)", l.ID, l.Direction)
		}
		if l.ArrivalRate < 0 {
			return fmt.Errorf("config: lane %d has negative arrival_rate", l.ID)
		}
		if l.Headway < 0 {
			return fmt.Errorf("config: lane %d has negative headway", l.ID)
		}
	}
	junctionIDs := make(map[int32]struct{}, len(c.Junctions))
	for _, j := range c.Junctions {
		if _, ok := junctionIDs[j.ID]; ok {
			return fmt.Errorf("config: duplicate junction id %d", j.ID)
		}
		junctionIDs[j.ID] = struct{}{}
		if j.DefaultGreen < 0 {
			return fmt.Errorf("config: junction %d has negative default_green", j.ID)
		}
		for _, id := range j.LaneIDs {
			if _, ok := laneIDs[id]; !ok {
				return fmt.Errorf("config: junction %d references unknown lane %d", j.ID, id)
			}
		}
	}
	return nil
}
