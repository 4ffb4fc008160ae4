package element

import "github.com/go-theft-auto/guikit"

// Bounded is a value element whose value stays inside an inclusive range.
// The range defaults to everything T can represent. The value is clamped
// after every paint, every SetCurrValue and every SetRange.
type Bounded[T Number] struct {
	ValueElement[T]
	numRange[T]
}

func newBounded[T Number](label string, value T) Bounded[T] {
	b := Bounded[T]{ValueElement: newValueElement(label, value), numRange: fullRange[T]()}
	b.value = b.Clamp(value)
	return b
}

// SetRange sets the inclusive bounds, swapping them if lo > hi, and clamps
// the current value into them.
func (b *Bounded[T]) SetRange(lo, hi T) {
	b.setRange(lo, hi)
	b.value = b.Clamp(b.value)
}

// SetCurrValue sets the value, clamped into the range.
func (b *Bounded[T]) SetCurrValue(value T) {
	b.value = b.Clamp(value)
}

// SpinBox is a number field with -/+ step buttons.
type SpinBox[T Number] struct {
	Bounded[T]
	step   T
	format string
}

// NewSpinBox creates a spin box holding value with a step of 1.
func NewSpinBox[T Number](label string, value T) *SpinBox[T] {
	return &SpinBox[T]{Bounded: newBounded(label, value), step: 1}
}

// Step returns the amount the buttons, wheel and arrow keys move the value.
func (s *SpinBox[T]) Step() T { return s.step }

// SetStep sets the step. Zero or negative steps reset it to 1.
func (s *SpinBox[T]) SetStep(step T) {
	if step <= 0 {
		step = 1
	}
	s.step = step
}

// SetFormat sets the printf verb used to display the value ("%.2f").
func (s *SpinBox[T]) SetFormat(format string) { s.format = format }

// Paint draws the spin box.
func (s *SpinBox[T]) Paint(ctx *guikit.Context) {
	s.scope(ctx, func() {
		if s.input(ctx, s.label, &s.value, s.step, formatOpts(s.format)...) {
			s.markChanged()
		}
	})
	s.value = s.Clamp(s.value)
}

// SpinBoxPair edits two values of the same kind side by side. Each half
// has its own range; both share one step. A change to either half raises
// one change flag.
type SpinBoxPair[T Number] struct {
	ValueElement[[2]T]
	ranges [2]numRange[T]
	step   T
	format string
}

// NewSpinBoxPair creates a pair holding first and second with a step of 1.
func NewSpinBoxPair[T Number](label string, first, second T) *SpinBoxPair[T] {
	p := &SpinBoxPair[T]{
		ValueElement: newValueElement(label, [2]T{first, second}),
		ranges:       [2]numRange[T]{fullRange[T](), fullRange[T]()},
		step:         1,
	}
	p.value = p.clamp(p.value)
	return p
}

// SetRange sets the same bounds on both halves and clamps them into it.
func (p *SpinBoxPair[T]) SetRange(lo, hi T) {
	p.ranges[0].setRange(lo, hi)
	p.ranges[1].setRange(lo, hi)
	p.value = p.clamp(p.value)
}

// SetRangeFirst sets the bounds of the first half only.
func (p *SpinBoxPair[T]) SetRangeFirst(lo, hi T) {
	p.ranges[0].setRange(lo, hi)
	p.value[0] = p.ranges[0].Clamp(p.value[0])
}

// SetRangeSecond sets the bounds of the second half only.
func (p *SpinBoxPair[T]) SetRangeSecond(lo, hi T) {
	p.ranges[1].setRange(lo, hi)
	p.value[1] = p.ranges[1].Clamp(p.value[1])
}

// RangeFirst returns the inclusive bounds of the first half.
func (p *SpinBoxPair[T]) RangeFirst() (lo, hi T) { return p.ranges[0].Range() }

// RangeSecond returns the inclusive bounds of the second half.
func (p *SpinBoxPair[T]) RangeSecond() (lo, hi T) { return p.ranges[1].Range() }

// SetCurrValue sets both halves, each clamped into its own range.
func (p *SpinBoxPair[T]) SetCurrValue(value [2]T) {
	p.value = p.clamp(value)
}

func (p *SpinBoxPair[T]) clamp(v [2]T) [2]T {
	return [2]T{p.ranges[0].Clamp(v[0]), p.ranges[1].Clamp(v[1])}
}

// Step returns the step both halves use.
func (p *SpinBoxPair[T]) Step() T { return p.step }

// SetStep sets the step. Zero or negative steps reset it to 1.
func (p *SpinBoxPair[T]) SetStep(step T) {
	if step <= 0 {
		step = 1
	}
	p.step = step
}

// SetFormat sets the printf verb used to display both values.
func (p *SpinBoxPair[T]) SetFormat(format string) { p.format = format }

// Paint draws both fields on one row followed by the label.
func (p *SpinBoxPair[T]) Paint(ctx *guikit.Context) {
	p.scope(ctx, func() {
		gap := ctx.Style().ItemSpacing
		half := (ctx.ItemWidth() - gap) / 2
		opts := append(formatOpts(p.format), guikit.WithWidth(half))

		changed := false
		ctx.HStack(guikit.Gap(gap))(func() {
			if p.ranges[0].input(ctx, "##first", &p.value[0], p.step, opts...) {
				changed = true
			}
			if p.ranges[1].input(ctx, "##second", &p.value[1], p.step, opts...) {
				changed = true
			}
			if text := guikit.DisplayLabel(p.label); text != "" {
				ctx.Text(text)
			}
		})
		if changed {
			p.markChanged()
		}
	})
	p.value = p.clamp(p.value)
}

// Slider is a horizontal track with a draggable handle.
type Slider[T Number] struct {
	Bounded[T]
	format string
}

// NewSlider creates a slider holding value. Set a range before painting;
// the default full range of T is rarely useful on a track.
func NewSlider[T Number](label string, value T) *Slider[T] {
	return &Slider[T]{Bounded: newBounded(label, value)}
}

// SetFormat sets the printf verb used to display the value.
func (s *Slider[T]) SetFormat(format string) { s.format = format }

// Paint draws the slider.
func (s *Slider[T]) Paint(ctx *guikit.Context) {
	s.scope(ctx, func() {
		if s.slider(ctx, s.label, &s.value, formatOpts(s.format)...) {
			s.markChanged()
		}
	})
	s.value = s.Clamp(s.value)
}

func formatOpts(format string) []guikit.Option {
	if format == "" {
		return nil
	}
	return []guikit.Option{guikit.WithFormat(format)}
}
