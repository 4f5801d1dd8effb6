package fuzzy

import "fmt"

// MembershipFunction 三角形隶属度函数
// 功能：表示一个模糊集合的分段线性（三角形）隶属度函数
// 说明：由三个断点(a,b,c)定义，a≤b≤c，在b处隶属度为1，
// 在[a,c]之外隶属度为0；a==b或b==c时退化为左/右肩形，
// 构造后不可变
type MembershipFunction struct {
	a, b, c float64
}

// NewTriangle 创建三角形隶属度函数
// 功能：根据三个断点构造隶属度函数并校验参数
// 参数：a,b,c-三角形断点，要求a≤b≤c
// 返回：隶属度函数与错误信息
func NewTriangle(a, b, c float64) (MembershipFunction, error) {
	if !(a <= b && b <= c) {
		return MembershipFunction{}, fmt.Errorf("fuzzy: bad triangle breakpoints (%v, %v, %v)", a, b, c)
	}
	return MembershipFunction{a: a, b: b, c: c}, nil
}

// Degree 计算输入的隶属度
// 功能：求输入值对该模糊集合的隶属程度
// 参数：x-输入值
// 返回：隶属度，范围[0,1]
// 算法说明：
// 1. x在[a,c]之外时隶属度为0
// 2. x==b时隶属度为1（肩形函数的平台点）
// 3. 上升沿：(x-a)/(b-a)；下降沿：(c-x)/(c-b)
func (m MembershipFunction) Degree(x float64) float64 {
	switch {
	case x < m.a || x > m.c:
		return 0
	case x == m.b:
		return 1
	case x < m.b:
		return (x - m.a) / (m.b - m.a)
	default:
		return (m.c - x) / (m.c - m.b)
	}
}
