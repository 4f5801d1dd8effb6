// 模糊推理引擎，根据排队长度与平均等待时间计算绿灯时长
// 采用标准Mamdani推理：模糊化->规则激活->聚合->重心法解模糊
package fuzzy

import "fmt"

// TermConfig 隶属度函数配置
// 说明：A/B/C为三角形断点，要求A≤B≤C
type TermConfig struct {
	Label   string
	A, B, C float64
}

// VariableConfig 语言变量配置
type VariableConfig struct {
	Lo, Hi     float64 // 论域边界
	Resolution float64 // 离散化步长
	Terms      []TermConfig
}

// Config 模糊推理引擎配置
// 说明：包含三个语言变量的隶属度函数断点与规则库，
// 构造引擎后不再修改
type Config struct {
	QueueLength VariableConfig
	WaitingTime VariableConfig
	GreenTime   VariableConfig
	Rules       []Rule
}

// DefaultConfig 获取默认配置
// 功能：返回信号控制使用的标准断点与9条规则
// 说明：断点为输出兼容性约定的固定常量，修改会改变控制结果
func DefaultConfig() Config {
	return Config{
		QueueLength: VariableConfig{
			Lo: 0, Hi: 50, Resolution: 1,
			Terms: []TermConfig{
				{Label: "low", A: 0, B: 0, C: 15},
				{Label: "medium", A: 10, B: 25, C: 40},
				{Label: "high", A: 35, B: 50, C: 50},
			},
		},
		WaitingTime: VariableConfig{
			Lo: 0, Hi: 300, Resolution: 1,
			Terms: []TermConfig{
				{Label: "short", A: 0, B: 0, C: 100},
				{Label: "medium", A: 60, B: 150, C: 240},
				{Label: "long", A: 200, B: 300, C: 300},
			},
		},
		GreenTime: VariableConfig{
			Lo: 10, Hi: 90, Resolution: 1,
			Terms: []TermConfig{
				{Label: "short", A: 10, B: 10, C: 30},
				{Label: "medium", A: 25, B: 50, C: 75},
				{Label: "long", A: 60, B: 90, C: 90},
			},
		},
		Rules: []Rule{
			{Queue: "low", Wait: "short", Green: "short"},
			{Queue: "low", Wait: "medium", Green: "short"},
			{Queue: "low", Wait: "long", Green: "medium"},
			{Queue: "medium", Wait: "short", Green: "medium"},
			{Queue: "medium", Wait: "medium", Green: "medium"},
			{Queue: "medium", Wait: "long", Green: "long"},
			{Queue: "high", Wait: "short", Green: "medium"},
			{Queue: "high", Wait: "medium", Green: "long"},
			{Queue: "high", Wait: "long", Green: "long"},
		},
	}
}

// Engine 模糊推理引擎
// 功能：根据排队长度与平均等待时间计算推荐绿灯时长
// 说明：构造后不可变，计算过程无内部状态，
// 可以被多个路口并发调用而无需加锁
type Engine struct {
	queue *Variable
	wait  *Variable
	green *Variable
	rules []Rule
}

// New 创建模糊推理引擎
// 功能：根据配置构造引擎并完成全部校验
// 参数：cfg-引擎配置
// 返回：引擎实例与错误信息
// 算法说明：
// 1. 构造三个语言变量（校验断点、标签唯一性与论域覆盖）
// 2. 校验规则库（标签存在、组合完整且无冲突）
func New(cfg Config) (*Engine, error) {
	queue, err := newVariable("queue_length", cfg.QueueLength)
	if err != nil {
		return nil, err
	}
	wait, err := newVariable("waiting_time", cfg.WaitingTime)
	if err != nil {
		return nil, err
	}
	green, err := newVariable("green_time", cfg.GreenTime)
	if err != nil {
		return nil, err
	}
	if err := validateRules(cfg.Rules, queue, wait, green); err != nil {
		return nil, err
	}
	return &Engine{
		queue: queue,
		wait:  wait,
		green: green,
		rules: cfg.Rules,
	}, nil
}

// newVariable 根据配置构造语言变量
func newVariable(name string, cfg VariableConfig) (*Variable, error) {
	terms := make([]Term, 0, len(cfg.Terms))
	for _, t := range cfg.Terms {
		mf, err := NewTriangle(t.A, t.B, t.C)
		if err != nil {
			return nil, fmt.Errorf("fuzzy: variable %s term %s: %w", name, t.Label, err)
		}
		terms = append(terms, Term{Label: t.Label, MF: mf})
	}
	return NewVariable(name, cfg.Lo, cfg.Hi, cfg.Resolution, terms)
}

// ComputeGreenTime 计算推荐绿灯时长
// 功能：根据当前排队长度与平均等待时间推理绿灯时长
// 参数：queueLength-排队车辆数，waitingTime-平均等待时间（秒）
// 返回：推荐绿灯时长（秒），保证落在green_time论域内
// 算法说明：
// 1. 模糊化：输入先饱和到论域内，再求各标签隶属度
// 2. 规则激活：每条规则的激活强度为两个前件隶属度的最小值
// 3. 聚合：同一后件标签取所有规则激活强度的最大值
// 4. 解模糊：各输出隶属度函数按聚合强度截断后取逐点最大，
//    在论域上按步长采样求重心
func (e *Engine) ComputeGreenTime(queueLength, waitingTime float64) float64 {
	queueDegrees := e.queue.Fuzzify(queueLength)
	waitDegrees := e.wait.Fuzzify(waitingTime)

	strengths := make(map[string]float64, len(e.green.terms))
	for _, r := range e.rules {
		s := min(queueDegrees[r.Queue], waitDegrees[r.Wait])
		if s > strengths[r.Green] {
			strengths[r.Green] = s
		}
	}
	return e.defuzzify(strengths)
}

// defuzzify 重心法解模糊
// 功能：将各输出标签的聚合强度转换为一个精确值
// 参数：strengths-标签到聚合强度的映射
// 返回：重心值
// 说明：聚合强度全为0时无法求重心（分母为0），
// 此时返回论域中点而不是报错，调用方可按异常记录
func (e *Engine) defuzzify(strengths map[string]float64) float64 {
	num, den := 0.0, 0.0
	for i := 0; i <= e.green.steps(); i++ {
		x := e.green.sample(i)
		mu := 0.0
		for _, term := range e.green.terms {
			d := min(strengths[term.Label], term.MF.Degree(x))
			if d > mu {
				mu = d
			}
		}
		num += x * mu
		den += mu
	}
	if den == 0 {
		return (e.green.lo + e.green.hi) / 2
	}
	return num / den
}
