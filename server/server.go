// Package server 提供表单填充的 HTTP 封装：接收字段数据与限行配置，返回填好的 PDF。
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ByLCY/formfill/dsl"
	"github.com/ByLCY/formfill/layout"
	canvasrenderer "github.com/ByLCY/formfill/renderer/canvas"
)

const serviceVersion = "1.0.0"

// Config holds server configuration.
type Config struct {
	Addr            string
	TemplateDir     string
	DefaultTemplate string
}

// Server 持有路由与模板目录；每次填充请求使用独立的台账与诊断实例。
type Server struct {
	cfg    Config
	mux    *http.ServeMux
	logger *slog.Logger
}

// New 创建服务实例并注册路由。
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8000"
	}
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "templates"
	}
	if cfg.DefaultTemplate == "" {
		cfg.DefaultTemplate = "ssa-3373.form"
	}

	s := &Server{cfg: cfg, logger: slog.Default()}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /fill", s.handleFill)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /form-info", s.handleFormInfo)
	mux.HandleFunc("GET /line-limits", s.handleLineLimits)
	mux.HandleFunc("GET /{$}", s.handleRoot)
	s.mux = mux
	return s
}

// Handler 暴露路由供测试使用。
func (s *Server) Handler() http.Handler { return s.mux }

// Start 启动 HTTP 服务并阻塞。
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.logger.Info("formfill 服务启动", "addr", s.cfg.Addr, "templates", s.cfg.TemplateDir)
	return srv.ListenAndServe()
}

// fillRequest 对应 POST /fill 的请求体。
type fillRequest struct {
	Fields     map[string]string `json:"fields"`
	LineLimits map[string]int    `json:"line_limits,omitempty"`
	Template   string            `json:"template,omitempty"`
}

func (s *Server) handleFill(w http.ResponseWriter, r *http.Request) {
	var req fillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("请求体不是合法 JSON: %v", err))
		return
	}
	if len(req.Fields) == 0 {
		s.writeError(w, http.StatusBadRequest, "fields 不能为空")
		return
	}

	name := req.Template
	if name == "" {
		name = s.cfg.DefaultTemplate
	}
	if name != filepath.Base(name) {
		s.writeError(w, http.StatusBadRequest, "模板名不允许包含路径")
		return
	}
	src, err := os.ReadFile(filepath.Join(s.cfg.TemplateDir, name))
	if errors.Is(err, fs.ErrNotExist) {
		s.writeError(w, http.StatusNotFound,
			fmt.Sprintf("模板 %s 不存在，可用模板: %s", name, strings.Join(s.availableTemplates(), ", ")))
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("读取模板失败: %v", err))
		return
	}

	form, err := dsl.ParseString(string(src))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("解析模板失败: %v", err))
		return
	}
	pages, fields, err := layout.TemplateLayout(form)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("模板布局失败: %v", err))
		return
	}

	limits := req.LineLimits
	if limits == nil {
		limits = DefaultLineLimits()
	}
	policy := layout.Unbounded().WithFieldLimits(limits)

	// 插值数据源：字段值之间可以用 ${Name[0]} 互相引用
	data := make(map[string]interface{}, len(req.Fields))
	for k, v := range req.Fields {
		data[k] = v
	}

	diag := layout.NewDiagnostics(s.logger)
	result := layout.Fill(pages, fields, req.Fields, policy, layout.DefaultConfig(), layout.FillOptions{
		Diagnostics: diag,
		Data:        data,
	})

	pdfBytes, err := canvasrenderer.NewWithDiagnostics(diag).Render(result.Document)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("渲染 PDF 失败: %v", err))
		return
	}

	s.logger.Info("表单填充完成",
		"template", name,
		"filled", result.Filled,
		"skipped", result.Skipped,
		"overflowFields", result.Ledger.OverflowCount(),
	)

	base := strings.TrimSuffix(name, filepath.Ext(name))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename=filled_`+base+`.pdf`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("X-Overflow-Fields", strconv.Itoa(result.Ledger.OverflowCount()))
	_, _ = w.Write(pdfBytes)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "formfill",
		"version": serviceVersion,
	})
}

func (s *Server) handleFormInfo(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"available_templates":       s.availableTemplates(),
		"default_template":          s.cfg.DefaultTemplate,
		"default_line_limits_count": len(DefaultLineLimits()),
		"api_endpoints": map[string]string{
			"fill":        "/fill",
			"health":      "/health",
			"form_info":   "/form-info",
			"line_limits": "/line-limits",
		},
	})
}

func (s *Server) handleLineLimits(w http.ResponseWriter, _ *http.Request) {
	limits := DefaultLineLimits()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"default_line_limits":      limits,
		"total_fields_with_limits": len(limits),
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message":       "formfill 表单填充服务",
		"version":       serviceVersion,
		"health_check":  "/health",
		"form_info":     "/form-info",
		"main_endpoint": "/fill",
	})
}

func (s *Server) availableTemplates() []string {
	entries, err := os.ReadDir(s.cfg.TemplateDir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".form") {
			names = append(names, e.Name())
		}
	}
	return names
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("写入响应失败", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.logger.Warn("请求失败", "status", status, "detail", msg)
	s.writeJSON(w, status, map[string]any{"status": "error", "error": msg})
}
