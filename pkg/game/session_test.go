package game

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func testPool(n int) []string {
	pool := make([]string, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, fmt.Sprintf("photo_%02d.png", i))
	}
	return pool
}

func TestNewSession(t *testing.T) {
	pool := testPool(40)
	s := NewSessionWithSeed(pool, 1)

	if s.ID == uuid.Nil {
		t.Error("expected non-nil session ID")
	}
	if s.StepsRemaining != TotalSteps {
		t.Errorf("expected %d steps, got %d", TotalSteps, s.StepsRemaining)
	}
	if len(s.CurrentOptions) != 2 {
		t.Fatalf("expected 2 options, got %d", len(s.CurrentOptions))
	}
	if s.CurrentPrompt == "" {
		t.Error("expected a prompt to be assigned")
	}
	if s.Started || s.Complete {
		t.Error("new session should be neither started nor complete")
	}

	if s.CurrentOptions[0].PhotoID == s.CurrentOptions[1].PhotoID {
		t.Error("option pair should be two different photos")
	}
	for _, opt := range s.CurrentOptions {
		if opt.Size < optionMinSize || opt.Size > optionMaxSize {
			t.Errorf("option size %f outside [%d, %d]", opt.Size, optionMinSize, optionMaxSize)
		}
	}
}

func TestSession_OptionPlacement(t *testing.T) {
	pool := testPool(40)

	for seed := int64(0); seed < 50; seed++ {
		s := NewSessionWithSeed(pool, seed)
		if len(s.CurrentOptions) != 2 {
			t.Fatalf("seed %d: expected 2 options", seed)
		}

		a, b := s.CurrentOptions[0], s.CurrentOptions[1]
		dist := math.Hypot(b.X-a.X, b.Y-a.Y)
		if dist < minPairDistance {
			t.Errorf("seed %d: options %f apart, want at least %d", seed, dist, minPairDistance)
		}

		side := 60 + float64(maxEstimatedSize)/2
		for _, opt := range []PhotoOption{a, b} {
			if opt.X < side || opt.X > s.Width-side {
				t.Errorf("seed %d: option x=%f outside side margins", seed, opt.X)
			}
		}
	}
}

func TestSession_Select(t *testing.T) {
	pool := testPool(40)
	s := NewSessionWithSeed(pool, 2)

	chosen := s.CurrentOptions[0].PhotoID
	passed := s.CurrentOptions[1].PhotoID
	prompt := s.CurrentPrompt

	if !s.Select(chosen, pool) {
		t.Fatal("selecting an offered photo should succeed")
	}

	if s.StepsRemaining != TotalSteps-1 {
		t.Errorf("expected %d steps remaining, got %d", TotalSteps-1, s.StepsRemaining)
	}
	if len(s.ChosenPhotos) != 1 || s.ChosenPhotos[0].PhotoID != chosen {
		t.Errorf("chosen photos = %v, want [%s]", s.ChosenPhotos, chosen)
	}
	if len(s.ChosenPrompts) != 1 || s.ChosenPrompts[0].Prompt != prompt {
		t.Errorf("chosen prompts = %v, want prompt %q", s.ChosenPrompts, prompt)
	}
	if !contains(s.ExcludedPhotos, passed) {
		t.Errorf("unchosen photo %s should be excluded", passed)
	}

	// A fresh pair is dealt, and neither photo from the first round
	// reappears.
	if len(s.CurrentOptions) != 2 {
		t.Fatalf("expected new pair of options, got %d", len(s.CurrentOptions))
	}
	for _, opt := range s.CurrentOptions {
		if opt.PhotoID == chosen || opt.PhotoID == passed {
			t.Errorf("photo %s should not be offered again", opt.PhotoID)
		}
	}
}

func TestSession_SelectRejectsUnoffered(t *testing.T) {
	pool := testPool(40)
	s := NewSessionWithSeed(pool, 3)

	if s.Select("not_offered.png", pool) {
		t.Error("selecting a photo not on offer should fail")
	}
	if s.StepsRemaining != TotalSteps {
		t.Error("failed selection should not consume a step")
	}
}

func TestSession_FullGame(t *testing.T) {
	pool := testPool(40)
	s := NewSessionWithSeed(pool, 4)
	s.Start()

	for i := 0; i < TotalSteps; i++ {
		if s.Complete {
			t.Fatalf("game complete after %d steps, want %d", i, TotalSteps)
		}
		if len(s.CurrentOptions) == 0 {
			t.Fatalf("no options at step %d", i)
		}
		if !s.Select(s.CurrentOptions[0].PhotoID, pool) {
			t.Fatalf("selection failed at step %d", i)
		}
	}

	if !s.Complete {
		t.Error("game should be complete after all steps")
	}
	if s.StepsRemaining != 0 {
		t.Errorf("expected 0 steps remaining, got %d", s.StepsRemaining)
	}
	if len(s.ChosenPhotos) != TotalSteps {
		t.Errorf("expected %d chosen photos, got %d", TotalSteps, len(s.ChosenPhotos))
	}

	// Completed games reject further input.
	if s.Select(s.CurrentOptions[0].PhotoID, pool) {
		t.Error("completed game should reject selections")
	}

	// Each step showed a distinct prompt (the table is large enough for
	// one full game).
	seen := make(map[string]bool)
	for _, cp := range s.ChosenPrompts {
		if seen[cp.Prompt] {
			t.Errorf("prompt %q shown twice", cp.Prompt)
		}
		seen[cp.Prompt] = true
	}
}

func TestSession_SmallPool(t *testing.T) {
	t.Run("single photo", func(t *testing.T) {
		s := NewSessionWithSeed(testPool(1), 5)
		if len(s.CurrentOptions) != 1 {
			t.Errorf("expected 1 option from a 1-photo pool, got %d", len(s.CurrentOptions))
		}
	})

	t.Run("empty pool", func(t *testing.T) {
		s := NewSessionWithSeed(nil, 5)
		if len(s.CurrentOptions) != 0 {
			t.Errorf("expected no options from an empty pool, got %d", len(s.CurrentOptions))
		}
	})
}

func TestSession_CollageLayout(t *testing.T) {
	pool := testPool(40)
	s := NewSessionWithSeed(pool, 6)
	for i := 0; i < 6; i++ {
		s.Select(s.CurrentOptions[0].PhotoID, pool)
	}

	items := s.CollageLayout()
	if len(items) != 6 {
		t.Fatalf("expected 6 collage items, got %d", len(items))
	}

	for i, item := range items {
		if item.ZIndex != i {
			t.Errorf("item %d: z_index %d", i, item.ZIndex)
		}
		if item.Rotation != 0 {
			t.Errorf("item %d: rotation %f, want 0", i, item.Rotation)
		}
		if item.Size < optionMinSize || item.Size > optionMaxSize {
			t.Errorf("item %d: size %f not carried over from selection", i, item.Size)
		}
	}

	// Grid x positions repeat every three items.
	if items[0].X != items[3].X {
		t.Error("rows should align in columns")
	}
	if items[0].Y == items[3].Y {
		t.Error("second row should sit below the first")
	}
}

func TestSession_CollageLayoutEmpty(t *testing.T) {
	s := NewSessionWithSeed(testPool(10), 7)
	if items := s.CollageLayout(); len(items) != 0 {
		t.Errorf("expected empty collage, got %d items", len(items))
	}
}

func TestSession_SelectedPrompts(t *testing.T) {
	pool := testPool(40)
	s := NewSessionWithSeed(pool, 8)
	for i := 0; i < TotalSteps; i++ {
		s.Select(s.CurrentOptions[0].PhotoID, pool)
	}

	photoIDs, prompts := s.SelectedPrompts()
	if len(photoIDs) != 4 {
		t.Fatalf("expected 4 sampled photos, got %d", len(photoIDs))
	}
	if len(prompts) != 4 {
		t.Fatalf("expected 4 prompts, got %d", len(prompts))
	}

	// Every sampled prompt must belong to its photo.
	for i, photoID := range photoIDs {
		var want string
		for _, cp := range s.ChosenPrompts {
			if cp.PhotoID == photoID {
				want = cp.Prompt
				break
			}
		}
		if prompts[i] != want {
			t.Errorf("photo %s: prompt %q, want %q", photoID, prompts[i], want)
		}
	}
}

func TestSession_SelectedPromptsFewChosen(t *testing.T) {
	pool := testPool(40)
	s := NewSessionWithSeed(pool, 9)
	s.Select(s.CurrentOptions[0].PhotoID, pool)
	s.Select(s.CurrentOptions[0].PhotoID, pool)

	photoIDs, prompts := s.SelectedPrompts()
	if len(photoIDs) != 2 || len(prompts) != 2 {
		t.Errorf("expected all 2 chosen photos, got %d photos and %d prompts", len(photoIDs), len(prompts))
	}
}

func TestWorldPrompt(t *testing.T) {
	combined := WorldPrompt([]string{"Blue rain", "Dark fire"})
	if !strings.Contains(combined, "Blue rain, Dark fire") {
		t.Errorf("combined prompt should join the inputs: %q", combined)
	}
	if !strings.HasPrefix(combined, "Abstract 3D surrealist collage world combining:") {
		t.Errorf("unexpected prefix: %q", combined)
	}

	fallback := WorldPrompt(nil)
	if !strings.Contains(fallback, "dreamlike landscape") {
		t.Errorf("fallback prompt missing description: %q", fallback)
	}
}

func TestSession_DominantColor(t *testing.T) {
	s := NewSessionWithSeed(testPool(10), 10)

	gray := Color{R: 150, G: 150, B: 150}
	if got := s.DominantColor(); got != gray {
		t.Errorf("session with no choices should get gray, got %v", got)
	}

	s.Select(s.CurrentOptions[0].PhotoID, testPool(10))
	got := s.DominantColor()
	found := false
	for _, c := range worldPalette {
		if got == c {
			found = true
		}
	}
	if !found {
		t.Errorf("color %v not in palette", got)
	}
}
