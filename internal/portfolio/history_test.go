package portfolio

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// resetHistory resets the singleton so each test gets a fresh DB.
func resetHistory(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	// Override HOME so openHistoryDB uses the temp dir.
	t.Setenv("HOME", dir)
	// Reset the singleton.
	historyDB = nil
	historyErr = nil
	historyOnce = sync.Once{}
	return filepath.Join(dir, ".go_portfolio", "history.db")
}

func TestAddScoreSnapshot_Basic(t *testing.T) {
	resetHistory(t)
	ctx := context.Background()

	result, err := AddScoreSnapshot(ctx, ScoreHistoryAddInput{
		Profile: *richProfile(),
		Note:    "before redesign",
	}, fixedNow)
	if err != nil {
		t.Fatalf("AddScoreSnapshot error: %v", err)
	}
	if result.ID <= 0 {
		t.Errorf("expected positive ID, got %d", result.ID)
	}
	if result.OverallScore < 80 {
		t.Errorf("overall = %d, want a high score for the rich profile", result.OverallScore)
	}
	if !strings.Contains(result.Message, "recorded") {
		t.Errorf("message = %q", result.Message)
	}
}

func TestAddScoreSnapshot_EmptyProfile(t *testing.T) {
	resetHistory(t)
	ctx := context.Background()

	result, err := AddScoreSnapshot(ctx, ScoreHistoryAddInput{}, fixedNow)
	if err != nil {
		t.Fatalf("AddScoreSnapshot error: %v", err)
	}
	if result.OverallScore != 0 {
		t.Errorf("empty profile overall = %d, want 0", result.OverallScore)
	}
}

func TestListScoreSnapshots_Empty(t *testing.T) {
	resetHistory(t)
	ctx := context.Background()

	result, err := ListScoreSnapshots(ctx, ScoreHistoryListInput{})
	if err != nil {
		t.Fatalf("ListScoreSnapshots error: %v", err)
	}
	if result.Total != 0 {
		t.Errorf("total = %d, want 0", result.Total)
	}
	if result.Snapshots == nil {
		t.Error("snapshots should not be nil")
	}
}

func TestListScoreSnapshots_NewestFirst(t *testing.T) {
	resetHistory(t)
	ctx := context.Background()

	for _, note := range []string{"first", "second", "third"} {
		if _, err := AddScoreSnapshot(ctx, ScoreHistoryAddInput{Note: note}, fixedNow); err != nil {
			t.Fatalf("AddScoreSnapshot error: %v", err)
		}
	}

	result, err := ListScoreSnapshots(ctx, ScoreHistoryListInput{})
	if err != nil {
		t.Fatalf("ListScoreSnapshots error: %v", err)
	}
	if result.Total != 3 {
		t.Errorf("total = %d, want 3", result.Total)
	}
	if len(result.Snapshots) != 3 {
		t.Fatalf("snapshots len = %d, want 3", len(result.Snapshots))
	}
	if result.Snapshots[0].Note != "third" || result.Snapshots[2].Note != "first" {
		t.Errorf("order = [%s %s %s], want newest first",
			result.Snapshots[0].Note, result.Snapshots[1].Note, result.Snapshots[2].Note)
	}
}

func TestListScoreSnapshots_Limit(t *testing.T) {
	resetHistory(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := AddScoreSnapshot(ctx, ScoreHistoryAddInput{}, fixedNow); err != nil {
			t.Fatalf("AddScoreSnapshot error: %v", err)
		}
	}

	result, err := ListScoreSnapshots(ctx, ScoreHistoryListInput{Limit: 2})
	if err != nil {
		t.Fatalf("ListScoreSnapshots error: %v", err)
	}
	if len(result.Snapshots) != 2 {
		t.Errorf("snapshots len = %d, want 2", len(result.Snapshots))
	}
	// Total still counts everything recorded.
	if result.Total != 5 {
		t.Errorf("total = %d, want 5", result.Total)
	}
}

func TestHistorySchemaIdempotent(t *testing.T) {
	resetHistory(t)
	ctx := context.Background()

	if _, err := AddScoreSnapshot(ctx, ScoreHistoryAddInput{}, fixedNow); err != nil {
		t.Fatalf("first add error: %v", err)
	}

	// Reset singleton but keep same HOME dir (same DB file).
	home := os.Getenv("HOME")
	historyDB = nil
	historyErr = nil
	historyOnce = sync.Once{}
	t.Setenv("HOME", home)

	if _, err := AddScoreSnapshot(ctx, ScoreHistoryAddInput{}, fixedNow); err != nil {
		t.Fatalf("second add after re-open error: %v", err)
	}

	list, _ := ListScoreSnapshots(ctx, ScoreHistoryListInput{})
	if list.Total != 2 {
		t.Errorf("total = %d, want 2", list.Total)
	}
}
