package layout

// LimitPolicy 描述每个字段允许显示的最大行数。
// 取值顺序：字段级配置 > 全局上限 > 不限行。
// 策略在一次填充运行前构建完成，运行期间只读；没有任何增量修改共享状态的入口。
type LimitPolicy struct {
	global    int
	hasGlobal bool
	fields    map[string]int
}

// Unbounded 返回不做任何截断的策略。
func Unbounded() LimitPolicy { return LimitPolicy{} }

// GlobalLimit 返回对所有字段生效的全局行数上限。
func GlobalLimit(n int) LimitPolicy {
	return LimitPolicy{global: n, hasGlobal: true}
}

// WithFieldLimits 在现有策略上叠加字段级上限，返回新策略（原策略不变）。
func (p LimitPolicy) WithFieldLimits(limits map[string]int) LimitPolicy {
	merged := make(map[string]int, len(p.fields)+len(limits))
	for name, n := range p.fields {
		merged[name] = n
	}
	for name, n := range limits {
		merged[name] = n
	}
	p.fields = merged
	return p
}

// Resolve 返回字段的有效行数上限；第二个返回值为 false 表示不限行。
func (p LimitPolicy) Resolve(field string) (int, bool) {
	if n, ok := p.fields[field]; ok {
		return n, true
	}
	if p.hasGlobal {
		return p.global, true
	}
	return 0, false
}

// SplitAtCap 把整行序列拆成显示前缀与溢出后缀。
// 恒等式：len(displayed) + len(overflow) == len(lines)。
func SplitAtCap(lines []string, cap int) (displayed, overflow []string) {
	if cap < 0 {
		cap = 0
	}
	if len(lines) <= cap {
		return lines, nil
	}
	return lines[:cap], lines[cap:]
}
