package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/formfill/dsl"
	"github.com/ByLCY/formfill/layout"
	"github.com/ByLCY/formfill/renderer"
	canvasrenderer "github.com/ByLCY/formfill/renderer/canvas"
	"github.com/ByLCY/formfill/server"
)

func main() {
	template := flag.String("template", "templates/ssa-3373.form", "表单模板路径")
	data := flag.String("data", "", "字段数据 JSON 文件路径")
	output := flag.String("out", "", "PDF 输出路径（默认在模板名后加 _filled）")
	limitsPath := flag.String("limits", "", "字段级行数上限 JSON 文件路径")
	maxLines := flag.Int("max-lines", 0, "全局行数上限（0 表示不限行）")
	debug := flag.String("debug", "", "填充调试 JSON 输出路径")
	exactWidth := flag.Bool("exact-width", false, "使用内置字体的真实度量代替近似估宽")
	httpAddr := flag.String("http", "", "以 HTTP 服务方式运行，例如 :8000")
	templateDir := flag.String("templates", "templates", "HTTP 模式下的模板目录")
	flag.Parse()

	if *httpAddr != "" {
		srv := server.New(server.Config{Addr: *httpAddr, TemplateDir: *templateDir})
		log.Fatalf("HTTP 服务退出: %v", srv.Start())
	}

	if *data == "" {
		log.Fatalf("缺少 -data 参数（字段数据 JSON）")
	}

	out := *output
	if out == "" {
		base := strings.TrimSuffix(*template, filepath.Ext(*template))
		out = base + "_filled.pdf"
	}

	r := canvasrenderer.New()
	if err := run(*template, *data, out, *limitsPath, *debug, *maxLines, *exactWidth, r); err != nil {
		log.Fatalf("填充表单失败: %v", err)
	}
	fmt.Printf("已生成 PDF：%s\n", out)
}

// run 串联模板解析、数据加载、填充与渲染。
func run(templatePath, dataPath, outputPath, limitsPath, debugPath string, maxLines int, exactWidth bool, r renderer.Renderer) error {
	if r == nil {
		return fmt.Errorf("renderer 不能为空")
	}

	file, err := os.Open(templatePath)
	if err != nil {
		return fmt.Errorf("无法打开模板文件 %s: %w", templatePath, err)
	}
	defer file.Close()

	form, err := dsl.Parse(file)
	if err != nil {
		return fmt.Errorf("解析模板失败: %w", err)
	}
	pages, fields, err := layout.TemplateLayout(form)
	if err != nil {
		return fmt.Errorf("模板布局失败: %w", err)
	}

	rawData, values, err := loadValues(dataPath)
	if err != nil {
		return err
	}
	policy, err := loadPolicy(limitsPath, maxLines)
	if err != nil {
		return err
	}

	diag := layout.NewDiagnostics(nil)
	opts := layout.FillOptions{Diagnostics: diag, Data: rawData}
	if exactWidth {
		if m, ok := r.(layout.Measurer); ok {
			opts.Measurer = m
		}
	}
	result := layout.Fill(pages, fields, values, policy, layout.DefaultConfig(), opts)

	if debugPath != "" {
		if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
			return fmt.Errorf("创建调试目录失败: %w", err)
		}
		if err := layout.WriteDebugJSON(result.Dump(), debugPath); err != nil {
			return fmt.Errorf("输出调试 JSON 失败: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	pdfBytes, err := r.Render(result.Document)
	if err != nil {
		return fmt.Errorf("渲染 PDF 失败: %w", err)
	}
	if err := os.WriteFile(outputPath, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("写入 PDF 文件失败: %w", err)
	}

	fmt.Printf("填充 %d 个字段，跳过 %d 个\n", result.Filled, result.Skipped)
	if n := result.Ledger.OverflowCount(); n > 0 {
		fmt.Printf("%d 个字段存在溢出，合并溢出文本：\n%s\n", n, result.Ledger.CombinedOverflow("\n\n"))
	}
	return nil
}

// loadValues 读取字段数据 JSON；非字符串值按 fmt.Sprint 转成文本（与源系统一致）。
func loadValues(path string) (map[string]any, layout.Values, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("无法读取数据文件 %s: %w", path, err)
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, nil, fmt.Errorf("解析数据 JSON 失败: %w", err)
	}
	values := make(layout.Values, len(data))
	for name, v := range data {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			values[name] = s
		} else {
			values[name] = fmt.Sprint(v)
		}
	}
	return data, values, nil
}

func loadPolicy(limitsPath string, maxLines int) (layout.LimitPolicy, error) {
	policy := layout.Unbounded()
	if maxLines > 0 {
		policy = layout.GlobalLimit(maxLines)
	}
	if limitsPath == "" {
		return policy, nil
	}
	raw, err := os.ReadFile(limitsPath)
	if err != nil {
		return policy, fmt.Errorf("无法读取限行配置 %s: %w", limitsPath, err)
	}
	var limits map[string]int
	if err := json.Unmarshal(raw, &limits); err != nil {
		return policy, fmt.Errorf("解析限行配置失败: %w", err)
	}
	return policy.WithFieldLimits(limits), nil
}
