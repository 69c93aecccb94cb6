package monitor

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSampleKeepsPeak(t *testing.T) {
	// The peak is a max-fold, so any ordering of the same samples must land on
	// the same value.
	orderings := [][]uint64{
		{10, 2000, 500},
		{2000, 10, 500},
		{500, 10, 2000},
		{2000, 2000, 2000},
	}

	for _, samples := range orderings {
		db := NewDatabase()
		db.Register(42, "locker")

		for _, kb := range samples {
			db.Sample(42, kb)
		}

		if peak := db.Records()[42].PeakKb; peak != 2000 {
			t.Errorf("unexpected peak for samples %v. want=%d have=%d", samples, 2000, peak)
		}
	}
}

func TestSampleNeverDecreases(t *testing.T) {
	db := NewDatabase()
	db.Register(42, "locker")

	db.Sample(42, 800)
	db.Sample(42, 100)

	if peak := db.Records()[42].PeakKb; peak != 800 {
		t.Errorf("unexpected peak. want=%d have=%d", 800, peak)
	}
}

func TestRegisterIdempotent(t *testing.T) {
	db := NewDatabase()
	db.Register(42, "locker")
	db.Sample(42, 800)
	db.Register(42, "locker")

	if peak := db.Records()[42].PeakKb; peak != 800 {
		t.Errorf("re-registration clobbered the peak. want=%d have=%d", 800, peak)
	}
}

func TestSampleUnknownPid(t *testing.T) {
	db := NewDatabase()
	db.Register(42, "locker")
	db.Sample(7, 800)

	expected := map[int]Record{
		42: {Name: "locker"},
	}
	if diff := cmp.Diff(expected, db.Records()); diff != "" {
		t.Errorf("unexpected records (-want +got): %s", diff)
	}
}

func TestContains(t *testing.T) {
	db := NewDatabase()
	db.Register(42, "locker")

	if !db.Contains(42) {
		t.Errorf("expected pid %d to be registered", 42)
	}
	if db.Contains(7) {
		t.Errorf("expected pid %d to be unregistered", 7)
	}
}

func TestRender(t *testing.T) {
	db := NewDatabase()
	db.Register(2, "bb")
	db.Register(1, "a")
	db.Sample(1, 10)
	db.Sample(2, 2000)

	// Both names are shorter than the first heading, so the second column
	// starts at the heading width plus the column buffer.
	expected := strings.Join([]string{
		"",
		"Process Name        Max Locked Memory (kb)",
		"============        ======================",
		"a                   10",
		"bb                  2000",
		"==========================================",
	}, "\n")

	if diff := cmp.Diff(expected, db.Render()); diff != "" {
		t.Errorf("unexpected table (-want +got): %s", diff)
	}
}

func TestRenderLongName(t *testing.T) {
	db := NewDatabase()
	db.Register(9, "a-rather-long-process-name")
	db.Sample(9, 64)

	rendered := db.Render()

	lines := strings.Split(rendered, "\n")
	if len(lines) != 5 {
		t.Fatalf("unexpected line count. want=%d have=%d", 5, len(lines))
	}

	// The second column begins where the name plus the column buffer ends.
	offset := len("a-rather-long-process-name") + columnBuffer
	heading := lines[1]
	if have := heading[offset:]; have != "Max Locked Memory (kb)" {
		t.Errorf("unexpected second column heading position. want=%q have=%q", "Max Locked Memory (kb)", have)
	}

	width := offset + len("Max Locked Memory (kb)")
	border := lines[len(lines)-1]
	if len(border) != width || strings.Trim(border, "=") != "" {
		t.Errorf("unexpected bottom border. want width=%d have=%q", width, border)
	}

	for _, line := range lines[1 : len(lines)-1] {
		if len(line) <= offset {
			t.Errorf("row does not reach the second column: %q", line)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	rendered := NewDatabase().Render()

	expected := strings.Join([]string{
		"",
		"Process Name        Max Locked Memory (kb)",
		"============        ======================",
		"==========================================",
	}, "\n")

	if diff := cmp.Diff(expected, rendered); diff != "" {
		t.Errorf("unexpected table (-want +got): %s", diff)
	}
}
