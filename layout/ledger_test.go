package layout

import "testing"

func TestLedgerUpsertLastWriteWins(t *testing.T) {
	l := NewLedger()
	l.Record("f", OverflowRecord{TotalLines: 3, DisplayedLines: 3})
	l.Record("f", OverflowRecord{TotalLines: 8, DisplayedLines: 5, OverflowLines: []string{"x"}})

	rec, ok := l.Get("f")
	if !ok {
		t.Fatalf("记录应存在")
	}
	if rec.TotalLines != 8 || rec.DisplayedLines != 5 {
		t.Fatalf("后写应覆盖先写: %+v", rec)
	}
	if len(l.All()) != 1 {
		t.Fatalf("覆盖写不应新增记录: %d", len(l.All()))
	}
}

func TestLedgerGetAbsent(t *testing.T) {
	l := NewLedger()
	if _, ok := l.Get("missing"); ok {
		t.Fatalf("不存在的字段不应返回记录")
	}
}

func TestCombinedOverflowFormat(t *testing.T) {
	l := NewLedger()
	l.Record("first", OverflowRecord{TotalLines: 5, DisplayedLines: 3, OverflowLines: []string{"lost", "words"}})
	l.Record("clean", OverflowRecord{TotalLines: 2, DisplayedLines: 2})
	l.Record("second", OverflowRecord{TotalLines: 4, DisplayedLines: 3, OverflowLines: []string{"tail"}})

	got := l.CombinedOverflow("\n\n")
	want := "[first]: lost words\n\n[second]: tail"
	if got != want {
		t.Fatalf("合并溢出文本不符:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestCombinedOverflowEmptyWhenNoTruncation(t *testing.T) {
	l := NewLedger()
	l.Record("a", OverflowRecord{TotalLines: 1, DisplayedLines: 1})
	if got := l.CombinedOverflow(", "); got != "" {
		t.Fatalf("无溢出时应返回空串: %q", got)
	}
	if l.OverflowCount() != 0 {
		t.Fatalf("无溢出时计数应为 0")
	}
}

func TestOverflowCount(t *testing.T) {
	l := NewLedger()
	l.Record("a", OverflowRecord{TotalLines: 3, DisplayedLines: 2, OverflowLines: []string{"x"}})
	l.Record("b", OverflowRecord{TotalLines: 1, DisplayedLines: 1})
	l.Record("c", OverflowRecord{TotalLines: 9, DisplayedLines: 4, OverflowLines: []string{"y", "z"}})
	if n := l.OverflowCount(); n != 2 {
		t.Fatalf("存在溢出的字段数应为 2，实际 %d", n)
	}
}
