package statsview

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

var chartLabelColor = color.NRGBA{R: 180, G: 180, B: 180, A: 255}

// barChart draws one row of value bars with a label strip underneath.
// Bars are plain canvas rectangles positioned by chartLayout.
type barChart struct {
	container *fyne.Container
	barColor  color.Color
}

func newBarChart(barColor color.Color) *barChart {
	return &barChart{
		container: container.New(&chartLayout{}),
		barColor:  barColor,
	}
}

// SetData replaces the chart contents. Labels may be empty strings to thin
// out crowded axes. Must run on the Fyne goroutine.
func (chart *barChart) SetData(values []int, labels []string) {
	objects := make([]fyne.CanvasObject, 0, len(values)*2)
	for range values {
		objects = append(objects, canvas.NewRectangle(chart.barColor))
	}
	for index := range values {
		label := ""
		if index < len(labels) {
			label = labels[index]
		}
		text := canvas.NewText(label, chartLabelColor)
		text.TextSize = 10
		text.Alignment = fyne.TextAlignCenter
		objects = append(objects, text)
	}

	chart.container.Layout = &chartLayout{values: values}
	chart.container.Objects = objects
	chart.container.Refresh()
}

// chartLayout positions len(values) bars followed by len(values) labels.
type chartLayout struct {
	values []int
}

func (layout *chartLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	count := len(layout.values)
	// An unusable draw target is skipped silently; chart state is untouched.
	if count == 0 || len(objects) < count*2 || size.Width <= 0 || size.Height <= 0 {
		return
	}

	const labelStrip = float32(16)
	plotHeight := size.Height - labelStrip
	if plotHeight < 0 {
		plotHeight = 0
	}

	maxValue := 0
	for _, value := range layout.values {
		if value > maxValue {
			maxValue = value
		}
	}

	slot := size.Width / float32(count)
	barWidth := slot * 0.68
	for index, value := range layout.values {
		barHeight := float32(0)
		if maxValue > 0 && value > 0 {
			barHeight = plotHeight * float32(value) / float32(maxValue)
			if barHeight < 2 {
				barHeight = 2
			}
		}
		x := float32(index)*slot + (slot-barWidth)/2
		objects[index].Move(fyne.NewPos(x, plotHeight-barHeight))
		objects[index].Resize(fyne.NewSize(barWidth, barHeight))

		label := objects[count+index]
		label.Move(fyne.NewPos(float32(index)*slot, plotHeight))
		label.Resize(fyne.NewSize(slot, labelStrip))
	}
}

func (layout *chartLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(260, 120)
}
