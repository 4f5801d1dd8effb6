// 随机数引擎，包装了golang.org/x/exp/rand，提供了仿真所需的随机数生成方法
package randengine

import (
	"flag"

	"golang.org/x/exp/rand"
)

var (
	seedOffset = flag.Uint64("rand.seed_offset", 0, "seed offset") // 种子偏移量，用于调整随机数生成
)

// Engine 随机数引擎
// 功能：提供确定性的随机数生成功能，相同种子产生相同序列
// 说明：基于golang.org/x/exp/rand库，每个车道持有独立实例，互不干扰
type Engine struct {
	*rand.Rand // 底层随机数生成器
}

// New 创建随机数引擎
// 功能：初始化一个新的随机数引擎实例
// 参数：seed-随机数种子
// 返回：随机数引擎指针
// 说明：种子偏移量允许在不修改代码的情况下调整随机数序列
func New(seed uint64) *Engine {
	return &Engine{Rand: rand.New(rand.NewSource(seed + *seedOffset))}
}

// Exponential 生成指数分布随机数
// 功能：按给定速率生成指数分布的随机间隔
// 参数：rate-事件速率（次/秒），必须为正
// 返回：随机间隔（秒）
// 说明：用于泊松到达过程的车辆到达间隔采样
func (e *Engine) Exponential(rate float64) float64 {
	return e.ExpFloat64() / rate
}

// PTrue 以指定概率返回true
// 功能：根据给定概率返回布尔值
// 参数：p-返回true的概率（0.0到1.0之间）
// 返回：true或false
func (e *Engine) PTrue(p float64) bool {
	return e.Float64() < p
}
