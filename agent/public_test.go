package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/nboran/wealth"
	"github.com/nboran/wealth/renderer"
)

func TestParseDate(t *testing.T) {
	on, err := parseDate(map[string]any{"date": "2025-03-01"})
	if err != nil {
		t.Fatalf("parseDate() error = %v", err)
	}
	if got, want := on.String(), "2025-03-01"; got != want {
		t.Errorf("parseDate() = %q, want %q", got, want)
	}

	if on, err := parseDate(map[string]any{}); err != nil || on != wealth.Today() {
		t.Errorf("parseDate(no date) = %v, %v, want today", on, err)
	}

	if _, err := parseDate(map[string]any{"date": 12}); err == nil {
		t.Error("parseDate(non-string) expected an error")
	}
}

func TestTopicFunc(t *testing.T) {
	fresp := topicFunc.Call(context.Background(), "id-1", map[string]any{"name": "events"})
	out, ok := fresp.Response["output"].(string)
	if !ok {
		t.Fatalf("Topic(events) failed: %v", fresp.Response["error"])
	}
	if !strings.Contains(out, "# Events") {
		t.Errorf("Topic(events) = %q, want the events topic", out)
	}

	fresp = topicFunc.Call(context.Background(), "id-2", map[string]any{"name": "no-such-topic"})
	if _, hasErr := fresp.Response["error"]; !hasErr {
		t.Error("Topic(no-such-topic) expected an error response")
	}
}

func TestReportFunc(t *testing.T) {
	t.Chdir(t.TempDir())

	ledger := wealth.NewLedger()
	open := wealth.NewOpenAsset(wealth.MustParse("2025-01-01"), "", "TFSA", wealth.TypeSavings, wealth.M(1000, ""), wealth.Quantity{}, true)
	if err := ledger.Append(open); err != nil {
		t.Fatal(err)
	}
	if err := wealth.SaveLedger(wealth.DefaultLedgerFile, ledger); err != nil {
		t.Fatal(err)
	}

	fn := reportFunc("Summary", "the wealth summary", renderer.Summary)
	fresp := fn.Call(context.Background(), "id-1", map[string]any{"date": "2025-02-01"})
	out, ok := fresp.Response["output"].(string)
	if !ok {
		t.Fatalf("Summary failed: %v", fresp.Response["error"])
	}
	if !strings.Contains(out, "TFSA") {
		t.Errorf("Summary = %q, want it to mention TFSA", out)
	}

	fresp = fn.Call(context.Background(), "id-2", map[string]any{"date": "not a date"})
	if _, hasErr := fresp.Response["error"]; !hasErr {
		t.Error("Summary(bad date) expected an error response")
	}
}
