package plan

import (
	"math/rand"
	"testing"
)

func TestPlanSource(t *testing.T) {
	p := Plan{25, 25, 25, 26}
	src := p.Source()

	for i, expected := range p {
		size, ok := src.Next()
		if !ok {
			t.Fatalf("source exhausted after %d steps, want %d", i, len(p))
		}
		if size != expected {
			t.Errorf("step %d: expected %d, got %d", i, expected, size)
		}
	}

	if size, ok := src.Next(); ok {
		t.Errorf("expected exhausted source, got size %d", size)
	}
}

func TestUniformBounds(t *testing.T) {
	src, err := Uniform(3, 9, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Uniform failed: %v", err)
	}

	lowHalf, highHalf := 0, 0
	for i := 0; i < 10000; i++ {
		size, ok := src.Next()
		if !ok {
			t.Fatal("uniform source must never exhaust")
		}
		if size < 3 || size > 9 {
			t.Fatalf("draw %d outside [3, 9]", size)
		}
		if size <= 5 {
			lowHalf++
		} else {
			highHalf++
		}
	}

	// Loose two-sided check: neither half of the range may be starved.
	if lowHalf < 2000 || highHalf < 2000 {
		t.Errorf("draws systematically favor one end: low=%d high=%d", lowHalf, highHalf)
	}
}

func TestUniformDegenerateRange(t *testing.T) {
	src, err := Uniform(5, 5, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Uniform failed: %v", err)
	}
	for i := 0; i < 100; i++ {
		size, _ := src.Next()
		if size != 5 {
			t.Fatalf("expected every draw to be 5, got %d", size)
		}
	}
}

func TestUniformValidation(t *testing.T) {
	tests := []struct {
		name     string
		min, max int64
	}{
		{"zero min", 0, 5},
		{"negative min", -1, 5},
		{"max below min", 9, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Uniform(tt.min, tt.max, nil); err == nil {
				t.Errorf("Uniform(%d, %d): expected error", tt.min, tt.max)
			}
		})
	}
}
