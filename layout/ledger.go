package layout

import "strings"

// OverflowRecord 记录一个字段的整行统计与被截断的尾部。
// 恒等式：DisplayedLines + len(OverflowLines) == TotalLines。
type OverflowRecord struct {
	TotalLines     int      `json:"totalLines"`
	DisplayedLines int      `json:"displayedLines"`
	OverflowLines  []string `json:"overflowLines"`
	OriginalText   string   `json:"originalText"`
}

// OverflowText 返回该字段溢出部分拼接后的文本。
func (r OverflowRecord) OverflowText() string {
	return strings.Join(r.OverflowLines, " ")
}

// Ledger 是单次填充运行的溢出台账，按字段名记录，运行结束后可查询。
// 同一字段在一次运行内重复填充时后写覆盖先写。
// 台账实例归属于单次运行，不得在并发运行之间共享。
type Ledger struct {
	records map[string]OverflowRecord
	order   []string // 记录首次写入顺序，保证 CombinedOverflow 输出确定
}

// NewLedger 创建空台账。
func NewLedger() *Ledger {
	return &Ledger{records: map[string]OverflowRecord{}}
}

// Record 写入（或覆盖）一个字段的溢出记录。
func (l *Ledger) Record(field string, rec OverflowRecord) {
	if _, ok := l.records[field]; !ok {
		l.order = append(l.order, field)
	}
	l.records[field] = rec
}

// Get 返回指定字段的记录；第二个返回值表示是否存在。
func (l *Ledger) Get(field string) (OverflowRecord, bool) {
	rec, ok := l.records[field]
	return rec, ok
}

// All 返回全部记录的副本。
func (l *Ledger) All() map[string]OverflowRecord {
	out := make(map[string]OverflowRecord, len(l.records))
	for name, rec := range l.records {
		out[name] = rec
	}
	return out
}

// OverflowCount 返回存在非空溢出的字段数量。
func (l *Ledger) OverflowCount() int {
	n := 0
	for _, rec := range l.records {
		if len(rec.OverflowLines) > 0 {
			n++
		}
	}
	return n
}

// CombinedOverflow 把所有字段的溢出文本按写入顺序拼接，供附录类用途使用。
// 每个字段的格式为 "[字段名]: 溢出文本"，字段之间用 separator 连接。
func (l *Ledger) CombinedOverflow(separator string) string {
	var parts []string
	for _, name := range l.order {
		rec := l.records[name]
		if len(rec.OverflowLines) == 0 {
			continue
		}
		parts = append(parts, "["+name+"]: "+rec.OverflowText())
	}
	return strings.Join(parts, separator)
}
