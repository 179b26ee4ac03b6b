package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerRecordsPhasesInOrder(t *testing.T) {
	tm := NewTimer()
	parse := tm.Begin("parse")
	layout := tm.Begin("layout")
	tm.End(layout, "4 signatures")
	tm.End(parse, "")
	tm.End(99, "ignored")

	phases := tm.Phases()
	if len(phases) != 2 || phases[0].Name != "parse" || phases[1].Name != "layout" {
		t.Fatalf("unexpected phases: %+v", phases)
	}
	if phases[1].Note != "4 signatures" {
		t.Errorf("note = %q", phases[1].Note)
	}
	if tm.Total() != phases[0].Dur+phases[1].Dur {
		t.Errorf("Total does not sum phases")
	}
}

func TestSummary(t *testing.T) {
	tm := &Timer{phases: []Phase{
		{Name: "parse", Dur: 1500 * time.Microsecond},
		{Name: "emit", Dur: 500 * time.Microsecond, Note: "120 bytes"},
	}}
	want := "timings:\n" +
		"  parse       1.50 ms\n" +
		"  emit        0.50 ms  (120 bytes)\n" +
		"  total       2.00 ms\n"
	if got := tm.Summary(); got != want {
		t.Errorf("Summary =\n%q\nwant\n%q", got, want)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	idx := tm.Begin("parse")
	tm.End(idx, "")
	if tm.Phases() != nil || tm.Total() != 0 {
		t.Error("nil timer should record nothing")
	}
	if !strings.HasPrefix(tm.Summary(), "timings:\n") {
		t.Error("nil timer summary should still render a header")
	}
}
