package layout

import "log/slog"

// 诊断通道：填充过程中的每次回退/跳过都会留下事件，与主结果分开，
// 测试可以断言"发生过回退"而不是只能断言"没有崩溃"。

// DiagKind 标识诊断事件的类别。
type DiagKind string

const (
	DiagMissingBox       DiagKind = "missing-box"       // 字段缺少几何信息，被跳过
	DiagNoValue          DiagKind = "no-value"          // 数据源中没有该字段的值
	DiagEstimateFallback DiagKind = "estimate-fallback" // 宽度估算失败，使用保守系数
	DiagHeightClipped    DiagKind = "height-clipped"    // 放置阶段因矩形高度不足丢行
	DiagRenderError      DiagKind = "render-error"      // 单条绘制指令失败
)

// Event 是一条诊断记录。
type Event struct {
	Kind    DiagKind `json:"kind"`
	Field   string   `json:"field"`
	Message string   `json:"message,omitempty"`
	Err     error    `json:"-"`
}

// Diagnostics 按运行收集诊断事件，并可镜像到 slog。
// 与 Ledger 一样归属于单次运行。
type Diagnostics struct {
	logger *slog.Logger
	events []Event
}

// NewDiagnostics 创建诊断收集器；logger 可以为 nil（只收集不打日志）。
func NewDiagnostics(logger *slog.Logger) *Diagnostics {
	return &Diagnostics{logger: logger}
}

func (d *Diagnostics) report(kind DiagKind, field string, err error) {
	if d == nil {
		return
	}
	ev := Event{Kind: kind, Field: field, Err: err}
	if err != nil {
		ev.Message = err.Error()
	}
	d.events = append(d.events, ev)
	if d.logger != nil {
		d.logger.Warn(string(kind), "field", field, "err", err)
	}
}

func (d *Diagnostics) reportf(kind DiagKind, field, message string) {
	if d == nil {
		return
	}
	d.events = append(d.events, Event{Kind: kind, Field: field, Message: message})
	if d.logger != nil {
		d.logger.Warn(string(kind), "field", field, "detail", message)
	}
}

// ReportRender 供渲染器上报单条绘制指令的失败（记录后继续绘制）。
func (d *Diagnostics) ReportRender(err *RenderError) {
	field := ""
	if err != nil {
		field = err.Text
	}
	d.report(DiagRenderError, field, err)
}

// Events 返回已收集事件的副本。
func (d *Diagnostics) Events() []Event {
	if d == nil {
		return nil
	}
	out := make([]Event, len(d.events))
	copy(out, d.events)
	return out
}

// Count 返回指定类别的事件数。
func (d *Diagnostics) Count(kind DiagKind) int {
	if d == nil {
		return 0
	}
	n := 0
	for _, ev := range d.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
