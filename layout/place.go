package layout

// PlaceLines 为每一行计算绝对基线坐标，超出矩形下边界时立即停止。
//
// startY = box.Y0 + TopPadding + FontSize；第 i 行 y = startY + i×行高。
// 已知的不对称：限行器判定为"显示"的行仍可能因为矩形高度不足在这里被丢弃，
// 且不会回写进溢出记录（保留源系统行为）。被丢弃的行数通过第二个返回值暴露，
// 由调用方决定是否上报诊断。
func PlaceLines(lines []string, box Box, cfg Config) ([]PlacedLine, int) {
	startX := box.X0 + cfg.LeftMargin
	startY := box.Y0 + cfg.TopPadding + cfg.FontSize
	bottom := box.Y1 - cfg.BottomMargin

	placed := make([]PlacedLine, 0, len(lines))
	for i, line := range lines {
		y := startY + float64(i)*cfg.LineHeight()
		if y > bottom {
			break
		}
		placed = append(placed, PlacedLine{Text: line, X: startX, Y: y})
	}
	return placed, len(lines) - len(placed)
}
