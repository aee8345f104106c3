// Package glfwinput opens a GLFW window and emulates touch input with the
// mouse so the gesture detector can be driven on a desktop.
//
// Left drag is a one-finger drag. Right drag is a two-finger pinch mirrored
// around the point where the button went down: moving away from it spreads
// the fingers. The scroll wheel zooms directly.
package glfwinput

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gekko3d/orbitview"
)

// ScrollZoomStep is the manipulator scroll delta per wheel notch.
const ScrollZoomStep = 1.0

type Window struct {
	win *glfw.Window

	width, height int
	resized       bool

	scroll float64

	mouse orbitview.MouseEmulator
}

type WindowModule struct {
	Width  int
	Height int
	Title  string
}

func (m WindowModule) Install(app *orbitview.App, cmd *orbitview.Commands) {
	win, err := Open(m.Width, m.Height, m.Title)
	if err != nil {
		app.Logger().Errorf("open window: %v", err)
		panic(err)
	}
	app.Logger().Infof("window %dx%d '%s'", m.Width, m.Height, m.Title)
	cmd.AddResources(win)
	cmd.UseSystem(
		orbitview.System(pollSystem).
			InStage(orbitview.PreUpdate),
	)
	cmd.UseSystem(
		orbitview.System(titleSystem).
			InStage(orbitview.PostRender),
	)
}

// Open creates the window on the calling thread, which must stay the main
// thread for the life of the window.
func Open(width, height int, title string) (*Window, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}

	w := &Window{win: win, width: width, height: height, resized: true}
	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		w.scroll += yoff
	})
	win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width, w.height = width, height
		w.resized = true
	})
	return w, nil
}

func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}

func pollSystem(w *Window, queue *orbitview.TouchQueue, viewer *orbitview.Viewer, cmd *orbitview.Commands) {
	glfw.PollEvents()

	if w.win.ShouldClose() {
		cmd.Quit()
		return
	}

	if w.resized {
		viewer.Resize(w.width, w.height)
		w.resized = false
	}

	if w.scroll != 0 {
		x, y := w.win.GetCursorPos()
		// Wheel up zooms in, which is a negative delta.
		viewer.Manipulator.Scroll(int(x), w.height-int(y), -w.scroll*ScrollZoomStep)
		w.scroll = 0
	}

	x, y := w.win.GetCursorPos()
	left := w.win.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
	right := w.win.GetMouseButton(glfw.MouseButtonRight) == glfw.Press
	queue.Push(w.mouse.Update(orbitview.Point{X: float32(x), Y: float32(y)}, left, right)...)
}

func titleSystem(w *Window, viewer *orbitview.Viewer) {
	if viewer.Camera.ViewportWidth == 0 {
		return
	}
	eye := viewer.Camera.Eye
	w.win.SetTitle(fmt.Sprintf("orbitview - %s - eye (%.2f, %.2f, %.2f)", viewer.Gestures.Gesture(), eye.X(), eye.Y(), eye.Z()))
}
