// Package trace records and replays touch streams. Traces are YAML so they can
// be written by hand or captured from a device and checked into tests.
package trace

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/gekko3d/orbitview"
)

var ErrEmptyTrace = errors.New("trace has no events")

// Trace is a recorded touch stream for a viewport of a fixed size.
type Trace struct {
	Name       string  `yaml:"name,omitempty"`
	ViewWidth  int     `yaml:"view_width"`
	ViewHeight int     `yaml:"view_height"`
	Events     []Event `yaml:"events"`
}

// Event is one motion event; pointers are [x, y] pairs with a top-left origin.
type Event struct {
	Action   orbitview.TouchAction `yaml:"action"`
	Pointers [][2]float32          `yaml:"pointers,flow,omitempty"`
}

func FromMotionEvent(ev orbitview.MotionEvent) Event {
	e := Event{Action: ev.Action}
	for _, p := range ev.Pointers {
		e.Pointers = append(e.Pointers, [2]float32{p.X, p.Y})
	}
	return e
}

func (e Event) MotionEvent() orbitview.MotionEvent {
	ev := orbitview.MotionEvent{Action: e.Action}
	for _, p := range e.Pointers {
		ev.Pointers = append(ev.Pointers, orbitview.Point{X: p[0], Y: p[1]})
	}
	return ev
}

func Load(r io.Reader) (*Trace, error) {
	var t Trace
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("decode trace: %w", err)
	}
	if len(t.Events) == 0 {
		return nil, ErrEmptyTrace
	}
	if t.ViewHeight <= 0 {
		return nil, fmt.Errorf("decode trace: view_height must be positive, got %d", t.ViewHeight)
	}
	return &t, nil
}

func LoadFile(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func (t *Trace) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encode trace: %w", err)
	}
	return enc.Close()
}

// Recorder captures motion events as they are dispatched.
type Recorder struct {
	trace Trace
}

func NewRecorder(name string, width, height int) *Recorder {
	return &Recorder{trace: Trace{Name: name, ViewWidth: width, ViewHeight: height}}
}

func (r *Recorder) Record(ev orbitview.MotionEvent) {
	r.trace.Events = append(r.trace.Events, FromMotionEvent(ev))
}

func (r *Recorder) Trace() *Trace {
	t := r.trace
	t.Events = append([]Event(nil), r.trace.Events...)
	return &t
}

// Step is the state after one replayed event.
type Step struct {
	Index     int
	Event     orbitview.MotionEvent
	Sample    orbitview.TouchSample
	Gesture   orbitview.Gesture
	ZoomDelta float64
	Eye       mgl64.Vec3
}

// Replay feeds every event of t to the viewer in order and records the
// outcome of each.
func Replay(t *Trace, v *orbitview.Viewer) []Step {
	v.Resize(t.ViewWidth, t.ViewHeight)
	steps := make([]Step, 0, len(t.Events))
	for i, e := range t.Events {
		ev := e.MotionEvent()
		v.OnTouchEvent(ev)
		v.Sync()
		eye, _, _ := v.Manipulator.LookAt()
		steps = append(steps, Step{
			Index:     i,
			Event:     ev,
			Sample:    orbitview.NewTouchSample(ev, t.ViewHeight),
			Gesture:   v.Gestures.Gesture(),
			ZoomDelta: v.Gestures.ZoomDelta(),
			Eye:       eye,
		})
	}
	return steps
}
