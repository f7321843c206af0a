package layout

import (
	"encoding/json"
	"os"
)

// DebugDump 汇总一次填充运行的可序列化快照，便于调试或可视化。
type DebugDump struct {
	Document *Document                 `json:"document"`
	Overflow map[string]OverflowRecord `json:"overflow"`
	Events   []Event                   `json:"events,omitempty"`
}

// Dump 从填充结果构造调试快照。
func (r *Result) Dump() *DebugDump {
	return &DebugDump{
		Document: r.Document,
		Overflow: r.Ledger.All(),
		Events:   r.Diags.Events(),
	}
}

// WriteDebugJSON 将调试快照写入 JSON 文件。
func WriteDebugJSON(dump *DebugDump, path string) error {
	if dump == nil {
		return nil
	}
	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
