package layout

// pt 与 mm 的换算常量。填充引擎全程使用 pt；渲染器在与 canvas 交互的边界做转换。
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)
