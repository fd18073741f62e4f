package storage

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndTopRounds(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveRound(RoundRecord{Score: score, DurationMS: int64(score) * 100, SpeedScale: 1.1}); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	rounds, err := store.TopRounds(10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(rounds))
	}

	expected := []int{200, 100, 50}
	for i, r := range rounds {
		if r.Score != expected[i] {
			t.Errorf("round %d score = %d, expected %d", i, r.Score, expected[i])
		}
	}
	if rounds[0].DurationMS != 20000 || rounds[0].Difficulty != "normal" {
		t.Errorf("unexpected round fields: %+v", rounds[0])
	}
	if rounds[0].CreatedAt.IsZero() {
		t.Error("created_at should be set")
	}
}

func TestStoreTopRoundsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRound(RoundRecord{Score: (i + 1) * 100})
	}

	rounds, err := store.TopRounds(3)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds with limit, got %d", len(rounds))
	}
	if rounds[0].Score != 500 || rounds[1].Score != 400 || rounds[2].Score != 300 {
		t.Errorf("Rounds not in expected order: %v", rounds)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score of 0 with no rounds, got %d", best)
	}

	store.SaveRound(RoundRecord{Score: 100})
	store.SaveRound(RoundRecord{Score: 300})
	store.SaveRound(RoundRecord{Score: 200})

	best, err = store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score of 300, got %d", best)
	}
}

func TestStoreClearRoundsKeepsValues(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(RoundRecord{Score: 100})
	store.RaiseValue("highScore", 100)

	if err := store.ClearRounds(); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	rounds, _ := store.TopRounds(10)
	if len(rounds) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(rounds))
	}
	if v, err := store.GetValue("highScore"); err != nil || v != "100" {
		t.Errorf("kv cell should survive ClearRounds, got %q, %v", v, err)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Rounds != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveRound(RoundRecord{Score: 100, DurationMS: 10000})
	store.SaveRound(RoundRecord{Score: 300, DurationMS: 30000})

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Rounds != 2 || stats.BestScore != 300 || stats.AvgScore != 200 || stats.TotalMS != 40000 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreKeyValue(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.GetValue("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetValue(missing) error = %v, expected ErrNotFound", err)
	}

	tests := []struct {
		name  string
		value int
		want  string
	}{
		{"first write", 120, "120"},
		{"higher replaces", 450, "450"},
		{"lower is ignored", 300, "450"},
		{"equal is ignored", 450, "450"},
	}
	for _, tc := range tests {
		if err := store.RaiseValue("highScore", tc.value); err != nil {
			t.Fatalf("%s: RaiseValue(%d) failed: %v", tc.name, tc.value, err)
		}
		got, err := store.GetValue("highScore")
		if err != nil {
			t.Fatalf("%s: GetValue failed: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: GetValue = %q, expected %q", tc.name, got, tc.want)
		}
	}
}

func TestStoreRaiseValueConcurrent(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			if err := store.RaiseValue("highScore", v*10); err != nil {
				t.Errorf("RaiseValue(%d) failed: %v", v*10, err)
			}
		}(i)
	}
	wg.Wait()

	if got, err := store.GetValue("highScore"); err != nil || got != "200" {
		t.Errorf("GetValue = %q, %v, expected the largest write \"200\"", got, err)
	}
}
