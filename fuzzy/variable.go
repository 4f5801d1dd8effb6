package fuzzy

import "fmt"

// Term 语言变量中的一个标签及其隶属度函数
type Term struct {
	Label string
	MF    MembershipFunction
}

// Variable 语言变量
// 功能：表示一个带论域的模糊语言变量（如queue_length、waiting_time、green_time）
// 说明：论域为[lo,hi]，resolution为离散化步长，terms为有序标签列表，
// 构造后不可变；标签唯一且其支撑集必须覆盖整个论域（构造时校验）
type Variable struct {
	name       string
	lo, hi     float64
	resolution float64
	terms      []Term
}

// NewVariable 创建语言变量
// 功能：构造语言变量并校验论域、标签唯一性与覆盖性
// 参数：name-变量名，lo/hi-论域边界，resolution-离散化步长，terms-标签列表
// 返回：语言变量与错误信息
// 算法说明：
// 1. 校验论域与步长合法
// 2. 校验标签非空且互不重复
// 3. 按resolution采样整个论域，每个采样点至少有一个标签隶属度大于0，
//    否则存在静默输出为0的空洞，返回错误
func NewVariable(name string, lo, hi, resolution float64, terms []Term) (*Variable, error) {
	if lo >= hi {
		return nil, fmt.Errorf("fuzzy: variable %s has bad universe [%v, %v]", name, lo, hi)
	}
	if resolution <= 0 {
		return nil, fmt.Errorf("fuzzy: variable %s has bad resolution %v", name, resolution)
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("fuzzy: variable %s has no terms", name)
	}
	labels := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		if term.Label == "" {
			return nil, fmt.Errorf("fuzzy: variable %s has empty term label", name)
		}
		if _, ok := labels[term.Label]; ok {
			return nil, fmt.Errorf("fuzzy: variable %s has duplicate term %s", name, term.Label)
		}
		labels[term.Label] = struct{}{}
	}
	v := &Variable{
		name:       name,
		lo:         lo,
		hi:         hi,
		resolution: resolution,
		terms:      terms,
	}
	for i := 0; i <= v.steps(); i++ {
		x := v.sample(i)
		covered := false
		for _, term := range terms {
			if term.MF.Degree(x) > 0 {
				covered = true
				break
			}
		}
		if !covered {
			return nil, fmt.Errorf("fuzzy: variable %s has coverage gap at %v", name, x)
		}
	}
	return v, nil
}

// Name 获取变量名
func (v *Variable) Name() string {
	return v.name
}

// steps 论域采样步数
// 说明：采样点为lo+i*resolution，i∈[0,steps]，含论域两端
func (v *Variable) steps() int {
	return int((v.hi - v.lo) / v.resolution)
}

// sample 获取第i个采样点
func (v *Variable) sample(i int) float64 {
	return v.lo + float64(i)*v.resolution
}

// Clamp 将输入限制在论域内
// 功能：超出论域的输入饱和到边界而不是报错
// 参数：x-输入值
// 返回：限制后的值
// 说明：传感器噪声或极值不允许中断控制回路，越界按边界处理
func (v *Variable) Clamp(x float64) float64 {
	if x < v.lo {
		return v.lo
	}
	if x > v.hi {
		return v.hi
	}
	return x
}

// Fuzzify 模糊化
// 功能：将一个精确输入转换为各标签的隶属度
// 参数：x-输入值（先做Clamp）
// 返回：标签到隶属度（[0,1]）的映射
func (v *Variable) Fuzzify(x float64) map[string]float64 {
	x = v.Clamp(x)
	degrees := make(map[string]float64, len(v.terms))
	for _, term := range v.terms {
		degrees[term.Label] = term.MF.Degree(x)
	}
	return degrees
}

// hasLabel 判断标签是否存在
func (v *Variable) hasLabel(label string) bool {
	for _, term := range v.terms {
		if term.Label == label {
			return true
		}
	}
	return false
}
