package layout

// 该文件定义表单填充的几何类型与绘制指令，供填充引擎、渲染器与调试 JSON 共用。
// 坐标系与源文档一致：左上角为原点，单位为 pt。

// Box 表示字段的矩形区域（左/上/右/下）。
type Box struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Width 返回矩形宽度（pt）。
func (b Box) Width() float64 { return b.X1 - b.X0 }

// Height 返回矩形高度（pt）。
func (b Box) Height() float64 { return b.Y1 - b.Y0 }

// FieldType 区分字段的填充方式。
type FieldType int

const (
	FieldText FieldType = iota
	FieldCheckbox
	FieldOther // 未知类型按文本处理（与源系统一致）
)

// String 返回类型的可读名称。
func (t FieldType) String() string {
	switch t {
	case FieldText:
		return "text"
	case FieldCheckbox:
		return "checkbox"
	default:
		return "other"
	}
}

// Field 描述文档中的一个可填充区域。
// Name 在整个文档内唯一，作为限行策略与溢出台账的键。
type Field struct {
	Name    string    `json:"name"`
	Type    FieldType `json:"type"`
	Page    int       `json:"page"`
	Box     Box       `json:"box"`
	HasBox  bool      `json:"hasBox"`
	Default string    `json:"default,omitempty"`
}

// Page 记录页面尺寸（pt）。
type Page struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Black 是默认的填充颜色。
var Black = Color{R: 0, G: 0, B: 0}

// TextCommand 表示在绝对坐标绘制一行文本。
// Y 为基线坐标（与放置算法的输出一致）。
type TextCommand struct {
	Page     int     `json:"page"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Text     string  `json:"text"`
	FontSize float64 `json:"fontSize"`
	Color    Color   `json:"color"`
}

// StrokeCommand 表示一条线段（用于勾选框的两条对角线）。
type StrokeCommand struct {
	Page  int     `json:"page"`
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Width float64 `json:"width"`
	Color Color   `json:"color"`
}

// Document 是一次填充运行的绘制结果，交给渲染器输出 PDF。
type Document struct {
	Pages   []Page          `json:"pages"`
	Texts   []TextCommand   `json:"texts"`
	Strokes []StrokeCommand `json:"strokes,omitempty"`
}

// PlacedLine 是放置算法输出的一行文本及其基线坐标。
type PlacedLine struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}
