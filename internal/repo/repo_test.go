package repo

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestMemoryRunRepository(t *testing.T) {
	m := NewMemoryRunDB(3)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		run := Run{RequestID: fmt.Sprint(i), Type: "pressure_distribution", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if i == 4 {
			run.HTMLURL = "data:text/html;base64,AAAA"
		}
		if err := m.RecordRun(ctx, run); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := m.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Fatalf("kept %d runs, want 3", len(runs))
	}
	if runs[0].RequestID != "4" || runs[2].RequestID != "2" {
		t.Errorf("order = %s, %s, %s", runs[0].RequestID, runs[1].RequestID, runs[2].RequestID)
	}
	if runs[0].HTMLURL != "" {
		t.Errorf("data url should not be stored, got %q", runs[0].HTMLURL)
	}

	two, _ := m.RecentRuns(ctx, 2)
	if len(two) != 2 {
		t.Errorf("limit ignored: %d", len(two))
	}
}

func TestNullable(t *testing.T) {
	if nullable("") != nil || nullable("data:text/html;base64,xx") != nil {
		t.Error("empty and data urls should be stored as NULL")
	}
	if nullable("https://b.s3/x.html") != "https://b.s3/x.html" {
		t.Error("real urls should be kept")
	}
}
