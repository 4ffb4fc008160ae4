package main

import (
	"fmt"

	"github.com/go-theft-auto/guikit"
	"github.com/go-theft-auto/guikit/element"
	"github.com/go-theft-auto/guikit/shell"
)

var logger = guikit.NewLogger("demo")

type quality int

const (
	qualityLow quality = iota
	qualityMedium
	qualityHigh
)

const logLines = 8

// demo owns the showcase elements and the panels that host them.
type demo struct {
	status   *element.Label
	reset    *element.Button
	mute     *element.Checkbox
	quality  *element.Combo[quality]
	count    *element.SpinBox[uint8]
	size     *element.SpinBoxPair[int]
	volume   *element.Slider[float32]
	controls *shell.Panel

	log      *eventLog
	logPanel *shell.Panel
	presses  int
}

func newDemo() *demo {
	d := &demo{
		status: element.NewLabel("Edit a control; changes appear in the Log panel."),
		reset:  element.NewButton("Reset"),
		mute:   element.NewCheckbox("Mute", false),
		quality: element.NewCombo("Quality",
			element.ComboItem[quality]{Value: qualityLow, Text: "Low"},
			element.ComboItem[quality]{Value: qualityMedium, Text: "Medium"},
			element.ComboItem[quality]{Value: qualityHigh, Text: "High"},
		),
		count:  element.NewSpinBox[uint8]("Count", 3),
		size:   element.NewSpinBoxPair("Size", 640, 480),
		volume: element.NewSlider[float32]("Volume", 0.8),
		log:    newEventLog(logLines),
	}
	d.quality.SetCurrValue(qualityMedium)
	d.count.SetRange(0, 16)
	d.size.SetRangeFirst(0, 4096)
	d.size.SetRangeSecond(0, 2160)
	d.size.SetStep(16)
	d.volume.SetRange(0, 1)
	d.volume.SetFormat("%.2f")

	d.controls = shell.NewPanel("Controls").Add(
		d.status, d.reset, d.mute, d.quality, d.count, d.size, d.volume,
	)
	d.controls.OnChange(d.reset, d.onReset)
	d.controls.OnChange(d.mute, func() { d.log.add(fmt.Sprintf("mute = %t", d.mute.CurrValue())) })
	d.controls.OnChange(d.quality, func() {
		d.log.add(fmt.Sprintf("quality = %s (index %d)", d.quality.SelectedText(), d.quality.Selected()))
	})
	d.controls.OnChange(d.count, func() { d.log.add(fmt.Sprintf("count = %d", d.count.CurrValue())) })
	d.controls.OnChange(d.size, func() {
		v := d.size.CurrValue()
		d.log.add(fmt.Sprintf("size = %dx%d", v[0], v[1]))
	})
	d.controls.OnChange(d.volume, func() { d.log.add(fmt.Sprintf("volume = %.2f", d.volume.CurrValue())) })

	d.logPanel = shell.NewPanel("Log").Add(d.log.elements()...)
	return d
}

// install docks the demo panels.
func (d *demo) install(dock *shell.DockSpace) error {
	if err := dock.Add(d.controls, shell.DockLeft); err != nil {
		return err
	}
	return dock.Add(d.logPanel, shell.DockBottom)
}

func (d *demo) onReset() {
	d.presses++
	d.mute.SetCurrValue(false)
	d.quality.SetCurrValue(qualityMedium)
	d.count.SetCurrValue(3)
	d.size.SetCurrValue([2]int{640, 480})
	d.volume.SetCurrValue(0.8)
	d.log.add(fmt.Sprintf("reset (%d)", d.presses))
}

// eventLog shows the most recent messages, newest last, in a fixed set of
// labels so the log panel's elements never change identity.
type eventLog struct {
	lines []*element.Label
	msgs  []string
	total int
}

func newEventLog(n int) *eventLog {
	l := &eventLog{lines: make([]*element.Label, n)}
	for i := range l.lines {
		l.lines[i] = element.NewLabel("")
	}
	return l
}

func (l *eventLog) elements() []element.Element {
	out := make([]element.Element, len(l.lines))
	for i, line := range l.lines {
		out[i] = line
	}
	return out
}

func (l *eventLog) add(msg string) {
	l.total++
	logger.Debug("event", "n", l.total, "msg", msg)
	l.msgs = append(l.msgs, fmt.Sprintf("%3d  %s", l.total, msg))
	if over := len(l.msgs) - len(l.lines); over > 0 {
		l.msgs = l.msgs[over:]
	}
	for i, line := range l.lines {
		text := ""
		if i < len(l.msgs) {
			text = l.msgs[i]
		}
		line.SetCurrValue(text)
	}
}
