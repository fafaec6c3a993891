package views

import (
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/thelolagemann/gochip8/pkg/display/event"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Performance plots the time between recent frames.
type Performance struct {
}

func (p *Performance) Title() string {
	return "Performance"
}

func (p *Performance) Run(window fyne.Window, events <-chan event.Event) error {
	// create an image for the frametime
	frameTimeImage := image.NewRGBA(image.Rect(0, 0, 640, 480))

	c := vgimg.NewWith(vgimg.UseImage(frameTimeImage))
	if err := drawFrameTimes(c, plotter.XYs{{}}); err != nil {
		return err
	}

	frameTimeCanvas := canvas.NewRasterFromImage(c.Image())
	frameTimeCanvas.ScaleMode = canvas.ImageScalePixels
	frameTimeCanvas.SetMinSize(fyne.NewSize(640, 480))

	save := widget.NewButton("Save", func() {
		saveImage(c.Image(), "frame-time.png", p.Title())
	})
	window.SetContent(container.NewBorder(nil, save, nil, nil, frameTimeCanvas))

	go func() {
		for e := range events {
			switch e.Type {
			case event.Quit:
				return
			case event.FrameTime:
				xys := frameTimeXYs(e.Data.([]time.Duration))
				if len(xys) == 0 {
					continue
				}
				if err := drawFrameTimes(c, xys); err != nil {
					showError(err, p.Title())
					return
				}
				frameTimeCanvas.Refresh()
			}
		}
	}()

	return nil
}

// drawFrameTimes plots the frame times onto c. The plot is rebuilt
// each time so that the axes follow the data.
func drawFrameTimes(c *vgimg.Canvas, xys plotter.XYs) error {
	frameTimePlot := plot.New()
	frameTimePlot.Title.Text = "Frame Time"
	frameTimePlot.X.Label.Text = "Frame"
	frameTimePlot.Y.Label.Text = "ms"

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	frameTimePlot.Add(line)
	frameTimePlot.Draw(draw.New(c))

	return nil
}

// frameTimeXYs converts frame times to points in milliseconds,
// skipping samples not yet taken.
func frameTimeXYs(frameTimes []time.Duration) plotter.XYs {
	xys := make(plotter.XYs, 0, len(frameTimes))
	for i, frameTime := range frameTimes {
		if frameTime == 0 {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(i), Y: float64(frameTime) / float64(time.Millisecond)})
	}
	return xys
}
