package renderer

import "github.com/ByLCY/formfill/layout"

// Renderer 将填充后的绘制指令输出为最终文件，例如 PDF。
// Render 返回生成的二进制数据以及可能的错误。
type Renderer interface {
	Render(doc *layout.Document) ([]byte, error)
}
