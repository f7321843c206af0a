package layout

// Config 是一次填充运行的不可变布局参数。
// 不存在任何包级可变配置：并发运行各自携带自己的 Config。
type Config struct {
	FontSize     float64 // 字号（pt），固定 11
	LineSpacing  float64 // 行距倍数，固定 2.20
	LeftMargin   float64
	RightMargin  float64
	TopPadding   float64
	BottomMargin float64
}

// DefaultConfig 返回与源文档一致的默认参数。
func DefaultConfig() Config {
	return Config{
		FontSize:     11,
		LineSpacing:  2.20,
		LeftMargin:   1,
		RightMargin:  0,
		TopPadding:   6,
		BottomMargin: 2,
	}
}

// LineHeight 返回单行占用的高度（pt）。
func (c Config) LineHeight() float64 { return c.FontSize * c.LineSpacing }

// AvailableWidth 返回扣除左右边距后的可用宽度。
func (c Config) AvailableWidth(box Box) float64 {
	return box.Width() - c.LeftMargin - c.RightMargin
}
