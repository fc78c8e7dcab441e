package hardware

import (
	"image"
	"image/color"
)

const (
	scopeWidth  = 512
	scopeHeight = 128
)

// scope keeps the most recent samples and renders them as a rolling
// oscilloscope trace for the gui
type scope struct {
	samples [scopeWidth]uint16
	idx     int
}

func newScope() *scope {
	return &scope{}
}

func (s *scope) push(sample uint16) {
	s.samples[s.idx] = sample
	s.idx = (s.idx + 1) % scopeWidth
}

var (
	scopeBackground = color.RGBA{R: 10, G: 10, B: 10, A: 255}
	scopeTrace      = color.RGBA{R: 60, G: 220, B: 60, A: 255}
)

// render the trace into a fresh image. oldest sample on the left. the
// returned image is not reused so the gui can hold on to it for as long as
// it likes
func (s *scope) render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, scopeWidth, scopeHeight))
	for x := range scopeWidth {
		for y := range scopeHeight {
			img.SetRGBA(x, y, scopeBackground)
		}
	}

	prev := scopeHeight - 1
	for x := range scopeWidth {
		sample := s.samples[(s.idx+x)%scopeWidth]

		// 14-bit amplitude to pixel row, maximum amplitude at the top
		y := scopeHeight - 1 - int(sample>>7)

		// join this column to the previous one so that square edges read as
		// vertical lines rather than scattered dots
		lo, hi := min(y, prev), max(y, prev)
		for v := lo; v <= hi; v++ {
			img.SetRGBA(x, v, scopeTrace)
		}
		prev = y
	}

	return img
}
