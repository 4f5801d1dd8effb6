package fuzzy

import "fmt"

// Rule 模糊规则
// 功能：表示一条"IF queue_length is X AND waiting_time is Y THEN green_time is Z"规则
// 说明：前件为两个输入标签的合取（取最小），后件为green_time的一个标签
type Rule struct {
	Queue string // queue_length标签
	Wait  string // waiting_time标签
	Green string // green_time标签（后件）
}

// validateRules 校验规则库
// 功能：校验规则库的完整性与一致性
// 参数：rules-规则列表，queue/wait/green-三个语言变量
// 返回：错误信息
// 算法说明：
// 1. 每条规则的三个标签必须存在于对应变量中
// 2. 每个(queue, wait)标签组合恰好出现一次：
//    重复出现（可能指定不同后件）为冲突，缺失则规则库不完整
func validateRules(rules []Rule, queue, wait, green *Variable) error {
	seen := make(map[[2]string]string, len(rules))
	for _, r := range rules {
		if !queue.hasLabel(r.Queue) {
			return fmt.Errorf("fuzzy: rule references unknown %s label %s", queue.Name(), r.Queue)
		}
		if !wait.hasLabel(r.Wait) {
			return fmt.Errorf("fuzzy: rule references unknown %s label %s", wait.Name(), r.Wait)
		}
		if !green.hasLabel(r.Green) {
			return fmt.Errorf("fuzzy: rule references unknown %s label %s", green.Name(), r.Green)
		}
		key := [2]string{r.Queue, r.Wait}
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("fuzzy: conflicting rules for (%s, %s): %s and %s", r.Queue, r.Wait, prev, r.Green)
		}
		seen[key] = r.Green
	}
	for _, qt := range queue.terms {
		for _, wt := range wait.terms {
			if _, ok := seen[[2]string{qt.Label, wt.Label}]; !ok {
				return fmt.Errorf("fuzzy: no rule for (%s, %s)", qt.Label, wt.Label)
			}
		}
	}
	return nil
}
