package layout

import (
	"fmt"

	"github.com/ByLCY/formfill/dsl"
)

// TemplateLayout 把模板 AST 转换成填充引擎需要的页面与字段序列。
// 字段名在整个模板内必须唯一（它是限行策略与溢出台账的键）。
func TemplateLayout(form *dsl.Form) ([]Page, []Field, error) {
	if form == nil {
		return nil, nil, fmt.Errorf("模板为空")
	}
	if len(form.Pages) == 0 {
		return nil, nil, fmt.Errorf("模板 %s 没有页面", form.Name)
	}

	pages := make([]Page, 0, len(form.Pages))
	var fields []Field
	seen := map[string]bool{}

	for pageIndex, page := range form.Pages {
		if page.Width <= 0 || page.Height <= 0 {
			return nil, nil, fmt.Errorf("第 %d 页尺寸非法: %g x %g", pageIndex+1, float64(page.Width), float64(page.Height))
		}
		pages = append(pages, Page{Width: float64(page.Width), Height: float64(page.Height)})

		for _, decl := range page.Fields {
			name := string(decl.Name)
			if name == "" {
				return nil, nil, fmt.Errorf("第 %d 页存在空字段名", pageIndex+1)
			}
			if seen[name] {
				return nil, nil, fmt.Errorf("字段名重复: %s", name)
			}
			seen[name] = true

			field := Field{
				Name: name,
				Type: parseFieldType(decl.Type),
				Page: pageIndex,
			}
			if decl.Rect != nil {
				field.Box = Box{
					X0: float64(decl.Rect.X0),
					Y0: float64(decl.Rect.Y0),
					X1: float64(decl.Rect.X1),
					Y1: float64(decl.Rect.Y1),
				}
				field.HasBox = true
			}
			if decl.Default != nil {
				field.Default = string(*decl.Default)
			}
			fields = append(fields, field)
		}
	}
	return pages, fields, nil
}

func parseFieldType(s string) FieldType {
	switch s {
	case "text":
		return FieldText
	case "checkbox":
		return FieldCheckbox
	default:
		return FieldOther
	}
}
