package layout

import "unicode/utf8"

// 宽度估算：在没有目标字体真实度量的前提下，用 字符数 × 字号 × 系数 近似文本宽度。
// 这是刻意的近似而非缺陷；只要估算对文本长度单调不减，后续换行/放置算法都不受影响。

const (
	// widthFactor 对应 Helvetica 11pt 的平均字符宽度系数。
	widthFactor = 0.45
	// conservativeWidthFactor 仅在外部度量器报错时作为保守回退使用。
	conservativeWidthFactor = 0.5
)

// Estimate 返回文本在给定字号下的估算宽度（pt），非负。
func Estimate(text string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(text)) * fontSize * widthFactor
}

// conservativeEstimate 是估算失败时的保守回退。
func conservativeEstimate(text string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(text)) * fontSize * conservativeWidthFactor
}

// Measurer 允许调用方替换为真实字体度量（例如 canvas 渲染器的字体面）。
// 返回错误时引擎回退到保守估算并记录诊断，绝不中断运行。
type Measurer interface {
	TextWidth(text string, fontSize float64) (float64, error)
}

// WidthFunc 是换行算法内部使用的宽度函数签名。
type WidthFunc func(text string, fontSize float64) float64

// widthEstimator 将可能失败的 Measurer 包装成不会失败的 WidthFunc。
// 每个字段最多上报一次回退诊断，避免逐次测量刷屏。
type widthEstimator struct {
	m        Measurer
	diag     *Diagnostics
	field    string
	reported bool
}

func (e *widthEstimator) width(text string, fontSize float64) float64 {
	if e.m == nil {
		return Estimate(text, fontSize)
	}
	w, err := e.m.TextWidth(text, fontSize)
	if err != nil {
		if !e.reported {
			e.diag.report(DiagEstimateFallback, e.field, &EstimationError{Field: e.field, Err: err})
			e.reported = true
		}
		return conservativeEstimate(text, fontSize)
	}
	return w
}
