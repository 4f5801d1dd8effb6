package task

import (
	"github.com/tsinghua-fib-lab/fuzzylight-sim/clock"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/entity"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/entity/junction"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/entity/lane"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/stats"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/utils/config"
)

// Context 仿真任务上下文
// 功能：包含一次仿真任务的所有变量和状态，替代原来的全局变量
// 说明：管理仿真系统的所有组件，包括时钟、管理器、配置、统计输出
type Context struct {
	// 任务名
	job string

	// 时钟
	clock *clock.Clock

	// Lane管理器
	laneManager entity.ILaneManager
	// Junction管理器
	junctionManager entity.IJunctionManager

	// 统计记录器
	recorder *stats.Recorder

	// 运行时配置文件
	runtimeConfig *config.RuntimeConfig
}

// NewContext 创建新的仿真任务上下文
// 功能：初始化仿真系统的所有组件和配置
// 参数：job-任务名称，c-配置对象
// 返回：初始化完成的Context实例
func NewContext(job string, c config.Config) *Context {
	ctx := &Context{
		job:      job,
		recorder: stats.NewRecorder(),
	}
	ctx.clock = clock.New(c.Control.Step)
	ctx.runtimeConfig = config.NewRuntimeConfig(c)

	// 新建各类模拟对象
	ctx.laneManager = lane.NewManager(ctx)
	ctx.junctionManager = junction.NewManager(ctx)

	return ctx
}

func (ctx *Context) Clock() *clock.Clock {
	return ctx.clock
}

func (ctx *Context) LaneManager() entity.ILaneManager {
	return ctx.laneManager
}

func (ctx *Context) JunctionManager() entity.IJunctionManager {
	return ctx.junctionManager
}

func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}

func (ctx *Context) Stats() entity.IStatsSink {
	return ctx.recorder
}

// Recorder 获取统计记录器（用于输出汇总）
func (ctx *Context) Recorder() *stats.Recorder {
	return ctx.recorder
}

// Init 初始化仿真任务
// 功能：重置时钟并按依赖顺序初始化各管理器
// 说明：lane先于junction初始化，junction需要从lane管理器查找进口车道
func (ctx *Context) Init() {
	ctx.clock.Init()

	c := ctx.runtimeConfig.All
	log.Infof("Lane: %v", len(c.Lanes))
	log.Infof("Junction: %v", len(c.Junctions))

	ctx.laneManager.Init(c.Lanes)
	ctx.junctionManager.Init(c.Junctions, ctx.laneManager)
}
