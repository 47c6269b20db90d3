package barwave

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestFrameAccumulatesByStep(t *testing.T) {
	m := New(800)
	for range 5 {
		m.Tick()
	}
	if got := m.Frame(); got != 5 {
		t.Fatalf("expected frame 5, got %d", got)
	}
}

func TestReverseTogglesStepSign(t *testing.T) {
	m := New(800)
	if got := m.Step(); got != 1 {
		t.Fatalf("expected initial step +1, got %d", got)
	}

	m.Reverse()
	if got := m.Step(); got != -1 {
		t.Fatalf("expected step -1 after reverse, got %d", got)
	}

	m.Tick()
	m.Tick()
	if got := m.Frame(); got != -2 {
		t.Fatalf("expected frame -2 after reversed ticks, got %d", got)
	}

	m.Reverse()
	if got := m.Step(); got != 1 {
		t.Fatalf("expected step +1 after second reverse, got %d", got)
	}
}

func TestHueAtFrameZero(t *testing.T) {
	m := New(800)
	bars := m.Bars()
	for i := 0; i < bars; i++ {
		want := math.Mod(360/float64(bars)*float64(i), 360)
		if got := m.Hue(i); math.Abs(got-want) > epsilon {
			t.Fatalf("bar %d: expected hue %v, got %v", i, want, got)
		}
	}
}

func TestHueStaysInRangeWhenReversed(t *testing.T) {
	m := New(800)
	m.Reverse()
	for range 500 {
		m.Tick()
	}
	for i := 0; i < m.Bars(); i++ {
		h := m.Hue(i)
		if h < 0 || h >= 360 {
			t.Fatalf("bar %d: hue %v out of [0, 360)", i, h)
		}
	}
}

func TestBarCountDerivedFromWidth(t *testing.T) {
	cases := []struct {
		width int
		want  int
	}{
		{width: 0, want: 1},
		{width: 19, want: 1},
		{width: 400, want: 20},
		{width: 1200, want: 60},
		{width: 5000, want: MaxBars},
	}
	for _, tc := range cases {
		m := New(tc.width)
		if got := m.Bars(); got != tc.want {
			t.Fatalf("width %d: expected %d bars, got %d", tc.width, tc.want, got)
		}
	}
}

func TestBarWidthIsWindowShare(t *testing.T) {
	m := New(400)
	want := 100 / float64(m.Bars())
	if got := m.BarWidth(); math.Abs(got-want) > epsilon {
		t.Fatalf("expected bar width %v%%, got %v", want, got)
	}
}

func TestLevelStaysInUnitRange(t *testing.T) {
	m := New(1000)
	for range 1000 {
		m.Tick()
		for i := 0; i < m.Bars(); i++ {
			l := m.Level(i)
			if l <= 0 || l >= 1 {
				t.Fatalf("frame %d bar %d: level %v out of (0, 1)", m.Frame(), i, l)
			}
		}
	}
}

func TestSpringsConvergeOnTarget(t *testing.T) {
	s := NewSprings(60)
	s.Resize(3)

	var got float64
	for range 600 {
		got = s.Step(1, 0.7)
	}
	if math.Abs(got-0.7) > 1e-3 {
		t.Fatalf("expected spring to settle near 0.7, got %v", got)
	}
}

func TestSpringsResizeKeepsStateForSameCount(t *testing.T) {
	s := NewSprings(60)
	s.Resize(4)
	s.Step(0, 1)
	before := s.pos[0]
	s.Resize(4)
	if s.pos[0] != before {
		t.Fatal("expected same-size resize to keep spring state")
	}

	s.Resize(8)
	if s.pos[0] != 0 {
		t.Fatal("expected changed-size resize to reset spring state")
	}
}
