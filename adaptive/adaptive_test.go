package adaptive_test

import (
	"math"
	"testing"

	"github.com/dronaai/drona-go-sdk/adaptive"
	"github.com/dronaai/drona-go-sdk/core"
)

func TestWindow_Eviction(t *testing.T) {
	w := adaptive.NewWindow(3)

	for _, s := range []float64{1, 2, 3} {
		w.Push(s)
	}
	if w.Len() != 3 {
		t.Fatalf("expected window length 3, got %d", w.Len())
	}

	// Fourth push evicts the oldest (1), leaving [2, 3, 4]
	w.Push(4)
	if w.Len() != 3 {
		t.Fatalf("expected window length 3 after eviction, got %d", w.Len())
	}
	if got, want := w.Average(), 3.0; got != want {
		t.Errorf("expected average %v after eviction, got %v", want, got)
	}
}

func TestWindow_PartialFill(t *testing.T) {
	w := adaptive.NewWindow(3)
	w.Push(9)

	if got, want := w.Average(), 9.0; got != want {
		t.Errorf("expected average over single entry %v, got %v", want, got)
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		avg  float64
		want core.Difficulty
	}{
		{9.5, core.DifficultyTough},
		{8.01, core.DifficultyTough},
		{8, core.DifficultyModerate}, // boundary: avg > 8 required for Tough
		{6.67, core.DifficultyModerate},
		{5.01, core.DifficultyModerate},
		{5, core.DifficultyEasy}, // boundary: avg > 5 required for Moderate
		{2, core.DifficultyEasy},
		{0, core.DifficultyEasy},
	}

	for _, tt := range tests {
		if got := adaptive.TierFor(tt.avg); got != tt.want {
			t.Errorf("TierFor(%v) = %s, want %s", tt.avg, got, tt.want)
		}
	}
}

func TestController_Transitions(t *testing.T) {
	c := adaptive.NewController(3)

	if got := c.Current(); got != core.DifficultyModerate {
		t.Fatalf("expected initial tier Moderate, got %s", got)
	}

	// [9, 9, 9] -> Tough
	c.Observe(9)
	c.Observe(9)
	if got := c.Observe(9); got != core.DifficultyTough {
		t.Errorf("expected Tough for [9,9,9], got %s", got)
	}

	// Window slides to [9, 9, 2], average 6.67 -> Moderate
	if got := c.Observe(2); got != core.DifficultyModerate {
		t.Errorf("expected Moderate for [9,9,2], got %s", got)
	}

	// Slide down to [2, 2, 2] -> Easy
	c.Observe(2)
	if got := c.Observe(2); got != core.DifficultyEasy {
		t.Errorf("expected Easy for [2,2,2], got %s", got)
	}
}

func TestComputeScore(t *testing.T) {
	if got := adaptive.ComputeScore(5, 10); got != 5 {
		t.Errorf("expected 5, got %v", got)
	}
	if got := adaptive.ComputeScore(2, 3); math.Abs(got-6.67) > 1e-9 {
		t.Errorf("expected 6.67, got %v", got)
	}
	if got := adaptive.ComputeScore(5, 0); got != 0 {
		t.Errorf("expected 0 for zero total, got %v", got)
	}
}

func TestPerformanceLabel(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{90, "Expert"},
		{85, "Expert"},
		{70, "Proficient"},
		{50, "Developing"},
		{49.9, "Needs Practice"},
	}
	for _, tt := range tests {
		if got := adaptive.PerformanceLabel(tt.percent); got != tt.want {
			t.Errorf("PerformanceLabel(%v) = %q, want %q", tt.percent, got, tt.want)
		}
	}
}

func TestTopicPercentMap(t *testing.T) {
	answers := []adaptive.Answer{
		{Topic: "graphs", MarksEarned: 3, MarksTotal: 5},
		{Topic: "graphs", MarksEarned: 5, MarksTotal: 5},
		{Topic: "concurrency", MarksEarned: 1, MarksTotal: 10},
		{Topic: "", MarksEarned: 2, MarksTotal: 5},
	}

	m := adaptive.TopicPercentMap(answers)
	if got, want := m["graphs"], 80.0; got != want {
		t.Errorf("graphs = %v, want %v", got, want)
	}
	if got, want := m["concurrency"], 10.0; got != want {
		t.Errorf("concurrency = %v, want %v", got, want)
	}
	if got, want := m["General"], 40.0; got != want {
		t.Errorf("General (empty topic) = %v, want %v", got, want)
	}

	weak := adaptive.WeakTopics(answers, 60)
	if len(weak) != 2 || weak[0] != "General" || weak[1] != "concurrency" {
		t.Errorf("unexpected weak topics: %v", weak)
	}
}
