package barwave

import "github.com/charmbracelet/harmonica"

// Springs eases rendered bar levels toward their sine targets so direction
// reversals and resizes land softly instead of snapping.
type Springs struct {
	spring harmonica.Spring
	pos    []float64
	vel    []float64
}

// NewSprings builds an easing field tuned for the given frame rate.
func NewSprings(fps int) *Springs {
	return &Springs{spring: harmonica.NewSpring(harmonica.FPS(fps), 7.0, 0.75)}
}

// Resize resets the field to n bars. State is kept when n is unchanged.
func (s *Springs) Resize(n int) {
	if len(s.pos) == n {
		return
	}
	s.pos = make([]float64, n)
	s.vel = make([]float64, n)
}

// Step advances bar i toward target and returns its eased level.
func (s *Springs) Step(i int, target float64) float64 {
	p, v := s.spring.Update(s.pos[i], s.vel[i], target)
	s.pos[i] = p
	s.vel[i] = v
	return p
}
