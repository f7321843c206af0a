package layout

import "fmt"

// 错误分类：所有错误都是"可恢复并上报"的，单个字段的故障不会中断整次运行。

// MissingBoxError 表示字段没有几何信息，该字段被跳过。
type MissingBoxError struct {
	Field string
}

func (e *MissingBoxError) Error() string {
	return fmt.Sprintf("字段 %s 缺少矩形区域，已跳过", e.Field)
}

// EstimationError 表示宽度估算失败，已回退到保守系数。
type EstimationError struct {
	Field string
	Err   error
}

func (e *EstimationError) Error() string {
	return fmt.Sprintf("估算字段 %s 的文本宽度失败，已使用保守回退: %v", e.Field, e.Err)
}

func (e *EstimationError) Unwrap() error { return e.Err }

// RenderError 表示某条绘制指令失败，渲染器记录后继续绘制其余内容。
type RenderError struct {
	Text string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("绘制文本 %q 失败: %v", e.Text, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
