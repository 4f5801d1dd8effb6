package junction

import (
	"github.com/tsinghua-fib-lab/fuzzylight-sim/entity"
)

// 依赖倒置，表达junction对信控实现的接口需求

// 给外部观测提供的信控读取接口
type ITrafficLightGetter interface {
	Phase() entity.Phase    // 当前相位
	GreenTime() float64     // 当前/下一个绿灯相位的时长
	RemainingTime() float64 // 当前相位剩余时长
	PhaseChanges() int32    // 累计相位切换次数
}

// 信号灯接口
type ITrafficLight interface {
	ITrafficLightGetter
	Prepare()      // 准备阶段，将信控结果写入到lane中
	Update() error // 更新阶段，推进相位状态机，执行器失败时返回错误
}
