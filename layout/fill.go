package layout

import (
	"fmt"
	"strings"

	"github.com/ByLCY/formfill/binding"
)

// 填充引擎：对每个有值的字段执行 换行 → 限行 → 放置，生成绘制指令与溢出台账。
// 字段之间互不依赖，处理顺序即输入顺序；字段内部的行序严格自上而下。

// Values 是字段名到待填文本的映射（数据源）。
type Values map[string]string

// FillOptions 配置填充阶段的可选依赖。
type FillOptions struct {
	// Measurer 为空时使用内置的近似宽度估算。
	Measurer Measurer
	// Diagnostics 为空时仍然收集（内部创建），通过 Result 返回。
	Diagnostics *Diagnostics
	// Data 非空时，字段值与模板默认值中的 ${path} 占位符会先做插值。
	Data any
}

// Result 汇总一次填充运行的全部输出。
type Result struct {
	Document *Document
	Ledger   *Ledger
	Diags    *Diagnostics
	Filled   int // 实际填充的字段数
	Skipped  int // 因缺值或缺几何信息被跳过的字段数
}

// checkboxTruthy 判断勾选框取值是否视为选中（大小写不敏感）。
func checkboxTruthy(value string) bool {
	switch strings.ToLower(value) {
	case "yes", "true", "1", "on", "checked":
		return true
	}
	return false
}

// Fill 是填充引擎的唯一入口。
// 任何单字段的故障都只产生诊断事件，不会阻止其余字段被处理。
func Fill(pages []Page, fields []Field, values Values, policy LimitPolicy, cfg Config, opts FillOptions) *Result {
	diag := opts.Diagnostics
	if diag == nil {
		diag = NewDiagnostics(nil)
	}
	ledger := NewLedger()
	doc := &Document{Pages: pages}
	res := &Result{Document: doc, Ledger: ledger, Diags: diag}

	for _, field := range fields {
		value, ok := values[field.Name]
		if !ok {
			value = field.Default
		}
		if opts.Data != nil {
			value = binding.Interpolate(value, opts.Data)
		}
		if value == "" {
			if !ok && field.Default == "" {
				diag.reportf(DiagNoValue, field.Name, "数据源中没有该字段的值")
			}
			res.Skipped++
			continue
		}
		if !field.HasBox {
			diag.report(DiagMissingBox, field.Name, &MissingBoxError{Field: field.Name})
			res.Skipped++
			continue
		}

		switch field.Type {
		case FieldCheckbox:
			if checkboxTruthy(value) {
				doc.Strokes = append(doc.Strokes, checkboxStrokes(field)...)
			}
		default:
			fillText(doc, ledger, diag, field, value, policy, cfg, opts.Measurer)
		}
		res.Filled++
	}
	return res
}

// fillText 填充文本字段（FieldText 与未知类型均走此路径）。
func fillText(doc *Document, ledger *Ledger, diag *Diagnostics, field Field, text string, policy LimitPolicy, cfg Config, m Measurer) {
	est := &widthEstimator{m: m, diag: diag, field: field.Name}
	availableWidth := cfg.AvailableWidth(field.Box)

	allLines := wrapWidth(text, availableWidth, cfg.FontSize, est.width)

	displayed := allLines
	var overflow []string
	if cap, ok := policy.Resolve(field.Name); ok {
		displayed, overflow = SplitAtCap(allLines, cap)
	}

	// 无论是否截断都记录，下游可以统一查询"这个字段本来需要多少行"。
	ledger.Record(field.Name, OverflowRecord{
		TotalLines:     len(allLines),
		DisplayedLines: len(displayed),
		OverflowLines:  overflow,
		OriginalText:   text,
	})

	placed, clipped := PlaceLines(displayed, field.Box, cfg)
	if clipped > 0 {
		diag.reportf(DiagHeightClipped, field.Name,
			fmt.Sprintf("矩形高度不足，丢弃 %d 行（字号保持 %g 不变）", clipped, cfg.FontSize))
	}
	for _, line := range placed {
		doc.Texts = append(doc.Texts, TextCommand{
			Page:     field.Page,
			X:        line.X,
			Y:        line.Y,
			Text:     line.Text,
			FontSize: cfg.FontSize,
			Color:    Black,
		})
	}
}

// checkboxStrokes 生成勾选标记：矩形内缩 2pt 的两条对角线。
func checkboxStrokes(field Field) []StrokeCommand {
	b := field.Box
	const inset = 2.0
	const strokeWidth = 2.0
	return []StrokeCommand{
		{Page: field.Page, X1: b.X0 + inset, Y1: b.Y0 + inset, X2: b.X1 - inset, Y2: b.Y1 - inset, Width: strokeWidth, Color: Black},
		{Page: field.Page, X1: b.X1 - inset, Y1: b.Y0 + inset, X2: b.X0 + inset, Y2: b.Y1 - inset, Width: strokeWidth, Color: Black},
	}
}
