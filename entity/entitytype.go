package entity

import "fmt"

// Direction 路口放行方向
type Direction int32

const (
	DirectionNS Direction = 0 // 南北方向
	DirectionEW Direction = 1 // 东西方向
)

// String 获取方向的字符串表示
func (d Direction) String() string {
	switch d {
	case DirectionNS:
		return "NS"
	case DirectionEW:
		return "EW"
	default:
		return fmt.Sprintf("Direction(%d)", int32(d))
	}
}

// Opposite 获取相反方向
func (d Direction) Opposite() Direction {
	if d == DirectionNS {
		return DirectionEW
	}
	return DirectionNS
}

// ParseDirection 解析配置文件中的方向字符串
// 参数：s-方向字符串（NS或EW）
// 返回：方向与错误信息
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "NS":
		return DirectionNS, nil
	case "EW":
		return DirectionEW, nil
	default:
		return 0, fmt.Errorf("bad direction %q (expect NS or EW)", s)
	}
}

// Phase 信号相位
// 说明：相位索引是与外部信号机约定的固定编码，
// 四个相位构成固定循环：NS绿->NS黄->EW绿->EW黄->NS绿
type Phase int32

const (
	PhaseNSGreen  Phase = 0 // 南北绿灯
	PhaseNSYellow Phase = 1 // 南北黄灯
	PhaseEWGreen  Phase = 2 // 东西绿灯
	PhaseEWYellow Phase = 3 // 东西黄灯

	NumPhases = 4
)

// Next 获取循环中的下一个相位
// 说明：固定四相位循环保证绿灯切换之间必然经过黄灯清空相位，
// 且任意时刻只有一个方向有通行权
func (p Phase) Next() Phase {
	return (p + 1) % NumPhases
}

// IsGreen 判断是否为绿灯相位
func (p Phase) IsGreen() bool {
	return p == PhaseNSGreen || p == PhaseEWGreen
}

// IsYellow 判断是否为黄灯（清空）相位
func (p Phase) IsYellow() bool {
	return p == PhaseNSYellow || p == PhaseEWYellow
}

// Direction 获取相位拥有通行权的方向
func (p Phase) Direction() Direction {
	if p == PhaseNSGreen || p == PhaseNSYellow {
		return DirectionNS
	}
	return DirectionEW
}

// Valid 判断相位索引是否合法
func (p Phase) Valid() bool {
	return p >= 0 && p < NumPhases
}

// String 获取相位的字符串表示
func (p Phase) String() string {
	switch p {
	case PhaseNSGreen:
		return "NS_GREEN"
	case PhaseNSYellow:
		return "NS_YELLOW"
	case PhaseEWGreen:
		return "EW_GREEN"
	case PhaseEWYellow:
		return "EW_YELLOW"
	default:
		return fmt.Sprintf("Phase(%d)", int32(p))
	}
}

// LightState 车道信号灯状态
type LightState int32

const (
	LightStateRed    LightState = 0 // 红灯
	LightStateYellow LightState = 1 // 黄灯
	LightStateGreen  LightState = 2 // 绿灯
)

// String 获取信号灯状态的字符串表示
func (s LightState) String() string {
	switch s {
	case LightStateRed:
		return "RED"
	case LightStateYellow:
		return "YELLOW"
	case LightStateGreen:
		return "GREEN"
	default:
		return fmt.Sprintf("LightState(%d)", int32(s))
	}
}

// Measurement 按方向聚合的一次交通量测
// 说明：由传感器在黄灯结束时产生，被决策引擎消费一次，不保留
type Measurement struct {
	QueueLength int32   // 排队（停驶）车辆数，非负
	WaitingTime float64 // 平均等待时间（秒），无车时为0
}

// TransitionEvent 相位切换事件
// 说明：每次相位切换产生一个事件，供统计输出观测，核心不回读
type TransitionEvent struct {
	Time       float64 // 切换发生的仿真时间（秒）
	JunctionID int32   // 路口ID
	Phase      Phase   // 切换后的新相位
	Duration   float64 // 新相位的时长（秒）
}

// 给信控模块提供的车道信号灯写入接口
type ILaneLightSetter interface {
	// 设置车道信号灯状态与本相位总时长、剩余时长
	SetLight(state LightState, totalTime, remainingTime float64)
}

// entity/lane/lane.go的依赖倒置
type ILane interface {
	ILaneLightSetter

	ID() int32            // 获取车道ID
	Direction() Direction // 获取车道所属放行方向
	Light() LightState    // 获取当前信号灯状态

	HaltingCount() int32       // 获取停驶（排队）车辆数
	VehicleCount() int32       // 获取车道上的车辆总数
	TotalWaitingTime() float64 // 获取车道上所有车辆的累计等待时间（秒）
	Departed() int32           // 获取累计通过路口的车辆数
}
