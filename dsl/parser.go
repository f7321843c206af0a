package dsl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// 表单模板 DSL：描述文档页面尺寸与各命名字段的类型、矩形区域。
// 模板是字段来源（Field Source）：填充引擎只消费 名称/类型/矩形。
//
// 示例：
//
//	form ssa-3373 v1 {
//	  page 612 792 {
//	    field "Name[0]" text rect 72 96 300 118
//	    field "N5text[0]" text rect 40 140 560 300
//	    field "CheckA[0]" checkbox rect 40 320 52 332
//	  }
//	}

var (
	formLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+)(?:pt)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	formParser = participle.MustBuild[Form](
		participle.Lexer(formLexer),
		participle.Elide("Whitespace", "LineComment", "HashComment"),
	)
)

// Form is the root AST node for a form template file.
type Form struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Name    string         `parser:"Newline* 'form' @Ident"`
	Version string         `parser:"@Ident"`
	Pages   []*PageDecl    `parser:"'{' Newline* ( @@ Newline* )* '}' Newline*"`
}

// PageDecl 声明一页的宽高（pt）与其中的字段。
type PageDecl struct {
	Width  Number       `parser:"'page' @Number"`
	Height Number       `parser:"@Number"`
	Fields []*FieldDecl `parser:"'{' Newline* ( @@ Newline* )* '}'"`
}

// FieldDecl 声明一个命名字段。rect 可省略（字段存在但没有几何信息）。
type FieldDecl struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Name    StringLiteral  `parser:"'field' @String"`
	Type    string         `parser:"@Ident"`
	Rect    *RectDecl      `parser:"( @@ )?"`
	Default *StringLiteral `parser:"( 'default' @String )?"`
}

// RectDecl 为字段的矩形区域：左 上 右 下（pt）。
type RectDecl struct {
	X0 Number `parser:"'rect' @Number"`
	Y0 Number `parser:"@Number"`
	X1 Number `parser:"@Number"`
	Y1 Number `parser:"@Number"`
}

// Number 捕获数值字面量，允许可选的 pt 后缀。
type Number float64

// Capture implements participle.Capture.
func (n *Number) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("number capture requires value")
	}
	raw := strings.TrimSuffix(values[0], "pt")
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses template content from an io.Reader.
func Parse(r io.Reader) (*Form, error) {
	return formParser.Parse("", r)
}

// ParseString parses template content from a string.
func ParseString(input string) (*Form, error) {
	return formParser.ParseString("", input)
}
