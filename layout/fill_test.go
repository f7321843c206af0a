package layout

import (
	"strings"
	"testing"
)

func onePage() []Page { return []Page{{Width: 612, Height: 792}} }

// 勾选框取真值时生成恰好两条对角线；否则零条。
func TestCheckboxYesDrawsTwoStrokes(t *testing.T) {
	field := Field{Name: "agree", Type: FieldCheckbox, Box: Box{X0: 10, Y0: 10, X1: 22, Y1: 22}, HasBox: true}

	res := Fill(onePage(), []Field{field}, Values{"agree": "Yes"}, Unbounded(), DefaultConfig(), FillOptions{})
	if len(res.Document.Strokes) != 2 {
		t.Fatalf("应生成两条对角线，实际 %d", len(res.Document.Strokes))
	}
	s0, s1 := res.Document.Strokes[0], res.Document.Strokes[1]
	if s0.X1 != 12 || s0.Y1 != 12 || s0.X2 != 20 || s0.Y2 != 20 {
		t.Fatalf("第一条对角线坐标不符: %+v", s0)
	}
	if s1.X1 != 20 || s1.Y1 != 12 || s1.X2 != 12 || s1.Y2 != 20 {
		t.Fatalf("第二条对角线坐标不符: %+v", s1)
	}

	res = Fill(onePage(), []Field{field}, Values{"agree": "no"}, Unbounded(), DefaultConfig(), FillOptions{})
	if len(res.Document.Strokes) != 0 {
		t.Fatalf("否定值不应绘制勾选标记: %d", len(res.Document.Strokes))
	}
}

func TestCheckboxTruthySetCaseInsensitive(t *testing.T) {
	field := Field{Name: "cb", Type: FieldCheckbox, Box: Box{X0: 0, Y0: 0, X1: 12, Y1: 12}, HasBox: true}
	for _, v := range []string{"YES", "TrUe", "1", "on", "CHECKED"} {
		res := Fill(onePage(), []Field{field}, Values{"cb": v}, Unbounded(), DefaultConfig(), FillOptions{})
		if len(res.Document.Strokes) != 2 {
			t.Fatalf("值 %q 应视为选中", v)
		}
	}
	for _, v := range []string{"0", "off", "nope"} {
		res := Fill(onePage(), []Field{field}, Values{"cb": v}, Unbounded(), DefaultConfig(), FillOptions{})
		if len(res.Document.Strokes) != 0 {
			t.Fatalf("值 %q 不应视为选中", v)
		}
	}
}

// 缺少几何信息的字段被跳过并留下诊断，不影响其余字段。
func TestFillMissingBoxSkipsField(t *testing.T) {
	fields := []Field{
		{Name: "broken", Type: FieldText},
		{Name: "ok", Type: FieldText, Box: Box{X0: 0, Y0: 0, X1: 300, Y1: 100}, HasBox: true},
	}
	res := Fill(onePage(), fields, Values{"broken": "x", "ok": "hello"}, Unbounded(), DefaultConfig(), FillOptions{})

	if res.Skipped != 1 || res.Filled != 1 {
		t.Fatalf("应跳过 1 个、填充 1 个: skipped=%d filled=%d", res.Skipped, res.Filled)
	}
	if res.Diags.Count(DiagMissingBox) != 1 {
		t.Fatalf("应记录缺几何诊断")
	}
	if len(res.Document.Texts) == 0 {
		t.Fatalf("正常字段应照常填充")
	}
	if _, ok := res.Ledger.Get("broken"); ok {
		t.Fatalf("被跳过的字段不应有台账记录")
	}
}

// 文本产生 10 行、上限 4 ⇒ 显示 4 行、溢出 6 行、总计 10。
func TestFillRecordsOverflowLedger(t *testing.T) {
	// 可用宽度 40：单词 badger(6 字符, 29.7pt) 单独成行，两词放不下
	field := Field{Name: "story", Type: FieldText, Box: Box{X0: 0, Y0: 0, X1: 41, Y1: 700}, HasBox: true}
	text := strings.TrimSpace(strings.Repeat("badger ", 10))
	policy := Unbounded().WithFieldLimits(map[string]int{"story": 4})

	res := Fill(onePage(), []Field{field}, Values{"story": text}, policy, DefaultConfig(), FillOptions{})

	rec, ok := res.Ledger.Get("story")
	if !ok {
		t.Fatalf("台账记录缺失")
	}
	if rec.TotalLines != 10 || rec.DisplayedLines != 4 || len(rec.OverflowLines) != 6 {
		t.Fatalf("溢出统计不符: %+v", rec)
	}
	if rec.DisplayedLines+len(rec.OverflowLines) != rec.TotalLines {
		t.Fatalf("恒等式不成立: %+v", rec)
	}
	if rec.OriginalText != text {
		t.Fatalf("原文应完整保留")
	}
	if len(res.Document.Texts) != 4 {
		t.Fatalf("绘制指令应只含显示行: %d", len(res.Document.Texts))
	}
}

// 未截断时也要写台账，下游可以统一查询总行数。
func TestFillRecordsLedgerWithoutTruncation(t *testing.T) {
	field := Field{Name: "short", Type: FieldText, Box: Box{X0: 0, Y0: 0, X1: 500, Y1: 100}, HasBox: true}
	res := Fill(onePage(), []Field{field}, Values{"short": "hello world"}, Unbounded(), DefaultConfig(), FillOptions{})

	rec, ok := res.Ledger.Get("short")
	if !ok {
		t.Fatalf("未截断字段也应有台账记录")
	}
	if rec.TotalLines != 1 || rec.DisplayedLines != 1 || len(rec.OverflowLines) != 0 {
		t.Fatalf("统计不符: %+v", rec)
	}
}

func TestFillNoValueLeavesDiagnostic(t *testing.T) {
	field := Field{Name: "empty", Type: FieldText, Box: Box{X0: 0, Y0: 0, X1: 100, Y1: 50}, HasBox: true}
	res := Fill(onePage(), []Field{field}, Values{}, Unbounded(), DefaultConfig(), FillOptions{})

	if res.Skipped != 1 {
		t.Fatalf("无值字段应被跳过")
	}
	if res.Diags.Count(DiagNoValue) != 1 {
		t.Fatalf("应记录缺值诊断")
	}
	if _, ok := res.Ledger.Get("empty"); ok {
		t.Fatalf("无值字段不应有台账记录")
	}
}

func TestFillUsesTemplateDefault(t *testing.T) {
	field := Field{Name: "state", Type: FieldText, Box: Box{X0: 0, Y0: 0, X1: 200, Y1: 50}, HasBox: true, Default: "N/A"}
	res := Fill(onePage(), []Field{field}, Values{}, Unbounded(), DefaultConfig(), FillOptions{})

	if res.Filled != 1 || len(res.Document.Texts) != 1 {
		t.Fatalf("默认值应被填充: filled=%d texts=%d", res.Filled, len(res.Document.Texts))
	}
	if res.Document.Texts[0].Text != "N/A" {
		t.Fatalf("填充内容不符: %q", res.Document.Texts[0].Text)
	}
}

func TestFillInterpolatesPlaceholders(t *testing.T) {
	field := Field{Name: "greet", Type: FieldText, Box: Box{X0: 0, Y0: 0, X1: 400, Y1: 50}, HasBox: true}
	data := map[string]interface{}{"who": "World"}
	res := Fill(onePage(), []Field{field}, Values{"greet": "Hello ${who}"}, Unbounded(), DefaultConfig(), FillOptions{Data: data})

	if len(res.Document.Texts) != 1 || res.Document.Texts[0].Text != "Hello World" {
		t.Fatalf("占位符应被插值: %#v", res.Document.Texts)
	}
}

// 字段值之间可以用 ${Name[0]} 互相引用：数据源的键就是带下标的字段名。
func TestFillInterpolatesCrossFieldReferences(t *testing.T) {
	fields := []Field{
		{Name: "Name[0]", Type: FieldText, Box: Box{X0: 0, Y0: 0, X1: 400, Y1: 50}, HasBox: true},
		{Name: "Summary[0]", Type: FieldText, Box: Box{X0: 0, Y0: 60, X1: 400, Y1: 110}, HasBox: true},
	}
	values := Values{
		"Name[0]":    "Sarah Johnson",
		"Summary[0]": "Applicant: ${Name[0]}",
	}
	data := make(map[string]interface{}, len(values))
	for k, v := range values {
		data[k] = v
	}
	res := Fill(onePage(), fields, values, Unbounded(), DefaultConfig(), FillOptions{Data: data})

	if len(res.Document.Texts) != 2 {
		t.Fatalf("两个字段都应被填充: %d", len(res.Document.Texts))
	}
	if got := res.Document.Texts[1].Text; got != "Applicant: Sarah Johnson" {
		t.Fatalf("跨字段引用应被插值: %q", got)
	}
}

// 高度不足时放置阶段静默丢行（台账保持限行器的统计不变），但留下诊断。
func TestFillHeightClipDiagnosticKeepsLedgerCounts(t *testing.T) {
	// 40pt 高，默认参数下只能放 1 行
	field := Field{Name: "tight", Type: FieldText, Box: Box{X0: 0, Y0: 100, X1: 41, Y1: 140}, HasBox: true}
	text := "badger badger badger"

	res := Fill(onePage(), []Field{field}, Values{"tight": text}, Unbounded(), DefaultConfig(), FillOptions{})

	rec, _ := res.Ledger.Get("tight")
	if rec.DisplayedLines != 3 {
		t.Fatalf("限行器统计应为 3 行显示: %+v", rec)
	}
	if len(res.Document.Texts) != 1 {
		t.Fatalf("实际只应绘制 1 行: %d", len(res.Document.Texts))
	}
	if res.Diags.Count(DiagHeightClipped) != 1 {
		t.Fatalf("应记录高度裁剪诊断")
	}
}

// 度量器故障只产生诊断与保守回退，字段仍被填充。
func TestFillSurvivesMeasurerFailure(t *testing.T) {
	field := Field{Name: "f", Type: FieldText, Box: Box{X0: 0, Y0: 0, X1: 300, Y1: 100}, HasBox: true}
	res := Fill(onePage(), []Field{field}, Values{"f": "some resilient text"}, Unbounded(), DefaultConfig(), FillOptions{Measurer: failingMeasurer{}})

	if res.Filled != 1 || len(res.Document.Texts) == 0 {
		t.Fatalf("估算失败不应阻止填充")
	}
	if res.Diags.Count(DiagEstimateFallback) != 1 {
		t.Fatalf("应记录估算回退诊断")
	}
}
