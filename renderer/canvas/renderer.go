package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/formfill/fonts"
	"github.com/ByLCY/formfill/layout"
	"github.com/ByLCY/formfill/renderer"
)

// Renderer 通过 github.com/tdewolff/canvas 把绘制指令输出为 PDF。
// 绘制指令的坐标与尺寸均为 pt（左上角原点），在与 canvas 交互的边界转换为 mm。
type Renderer struct {
	diag *layout.Diagnostics

	fontMu  sync.Mutex
	family  *canvas.FontFamily
	loadErr error
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Measurer   = (*Renderer)(nil)
)

// New 创建渲染器。
func New() *Renderer { return NewWithDiagnostics(nil) }

// NewWithDiagnostics 创建渲染器并挂接诊断通道；
// 单条指令绘制失败只上报诊断并继续，不会中断整页渲染。
func NewWithDiagnostics(diag *layout.Diagnostics) *Renderer {
	return &Renderer{diag: diag}
}

// Render 把绘制指令渲染成 PDF 字节切片。
func (r *Renderer) Render(doc *layout.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if len(doc.Pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, toMm(doc.Pages[0].Width), toMm(doc.Pages[0].Height), nil)
	for i, page := range doc.Pages {
		if i > 0 {
			writer.NewPage(toMm(page.Width), toMm(page.Height))
		}
		c := canvas.New(toMm(page.Width), toMm(page.Height))
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与填充引擎保持左上角为原点

		r.drawStrokes(ctx, doc.Strokes, i)
		r.drawTexts(ctx, doc.Texts, i)
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawTexts(ctx *canvas.Context, cmds []layout.TextCommand, page int) {
	for _, cmd := range cmds {
		if cmd.Page != page {
			continue
		}
		face, err := r.fontFace(cmd.FontSize, cmd.Color)
		if err != nil {
			r.reportRenderError(cmd.Text, err)
			continue
		}
		line := canvas.NewTextLine(face, cmd.Text, canvas.Left)
		// cmd.Y 已经是基线坐标，直接转换单位后绘制
		ctx.DrawText(toMm(cmd.X), toMm(cmd.Y), line)
	}
}

func (r *Renderer) drawStrokes(ctx *canvas.Context, cmds []layout.StrokeCommand, page int) {
	for _, cmd := range cmds {
		if cmd.Page != page {
			continue
		}
		w := cmd.Width
		if w <= 0 {
			w = 1
		}
		ctx.SetStrokeColor(colorFromLayout(cmd.Color))
		ctx.SetStrokeWidth(toMm(w))
		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.LineTo(toMm(cmd.X2-cmd.X1), toMm(cmd.Y2-cmd.Y1))
		ctx.DrawPath(toMm(cmd.X1), toMm(cmd.Y1), p)
	}
}

// TextWidth 实现 layout.Measurer：用内置字体的真实度量替代近似估算。
// fontSize 与返回值均为 pt。
func (r *Renderer) TextWidth(text string, fontSize float64) (float64, error) {
	face, err := r.fontFace(fontSize, layout.Black)
	if err != nil {
		return 0, err
	}
	return face.TextWidth(text) * layout.MmToPt, nil
}

func (r *Renderer) fontFace(sizePt float64, col layout.Color) (*canvas.FontFace, error) {
	family, err := r.ensureFamily()
	if err != nil {
		return nil, err
	}
	return family.Face(sizePt, colorFromLayout(col), canvas.FontRegular, canvas.FontNormal), nil
}

func (r *Renderer) ensureFamily() (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()
	if r.family != nil || r.loadErr != nil {
		return r.family, r.loadErr
	}
	data, err := fonts.Load("DejaVu/DejaVuSans.ttf")
	if err != nil {
		r.loadErr = err
		return nil, err
	}
	family := canvas.NewFontFamily("formfill")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		r.loadErr = fmt.Errorf("加载内置字体失败: %w", err)
		return nil, r.loadErr
	}
	r.family = family
	return family, nil
}

func (r *Renderer) reportRenderError(text string, err error) {
	if r.diag == nil {
		return
	}
	r.diag.ReportRender(&layout.RenderError{Text: text, Err: err})
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}

// toMm 将点(pt)转换为毫米(mm)。
func toMm(pt float64) float64 { return pt * layout.PtToMm }
