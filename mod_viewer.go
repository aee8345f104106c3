package orbitview

// Viewer ties together the camera, the manipulator driving it and the
// gesture detector feeding the manipulator. Touch events go in, and once per
// frame the camera picks up the manipulator's look-at.
type Viewer struct {
	Camera      *Camera
	Manipulator CameraManipulator
	Gestures    *GestureDetector

	log Logger
}

type viewportSetter interface {
	SetViewport(width, height int)
}

// NewViewer builds a viewer. A nil manipulator gets an OrbitManipulator from
// cfg.Manipulator.
func NewViewer(cfg Config, manipulator CameraManipulator, log Logger) *Viewer {
	if log == nil {
		log = NewNopLogger()
	}
	if manipulator == nil {
		manipulator = NewOrbitManipulator(cfg.Manipulator)
	}
	gestures := NewGestureDetector(manipulator, cfg.Gesture)
	gestures.SetLogger(componentLogger(log, "gesture"))

	v := &Viewer{
		Camera:      NewCamera(cfg.Camera),
		Manipulator: manipulator,
		Gestures:    gestures,
		log:         log,
	}
	v.Resize(cfg.Window.Width, cfg.Window.Height)
	v.Sync()
	return v
}

func (v *Viewer) OnTouchEvent(ev MotionEvent) {
	v.Gestures.OnTouchEvent(ev)
}

// Resize updates every viewport-dependent piece.
func (v *Viewer) Resize(width, height int) {
	v.Camera.ViewportWidth = width
	v.Camera.ViewportHeight = height
	v.Gestures.SetViewHeight(height)
	if s, ok := v.Manipulator.(viewportSetter); ok {
		s.SetViewport(width, height)
	}
	v.log.Debugf("viewport %dx%d", width, height)
}

// Sync copies the manipulator's look-at into the camera.
func (v *Viewer) Sync() {
	v.Camera.SetLookAt(v.Manipulator.LookAt())
}

// ApplyConfig swaps speeds, thresholds and lens settings in place. The camera
// pose and any gesture in progress are kept.
func (v *Viewer) ApplyConfig(cfg Config) {
	v.Gestures.SetConfig(cfg.Gesture)
	v.Camera.CameraConfig = cfg.Camera
	if m, ok := v.Manipulator.(*OrbitManipulator); ok {
		m.SetSpeeds(cfg.Manipulator.OrbitSpeed, cfg.Manipulator.ZoomSpeed)
	}
	v.log.Infof("viewer config applied (zoom speed %.3f, pan enabled %v)", cfg.Gesture.ZoomSpeed, cfg.Gesture.PanEnabled)
}

// ViewerModule installs a Viewer and a TouchQueue. Touch events pushed to the
// queue are classified in PreUpdate; the camera is synced in PreRender.
type ViewerModule struct {
	Config Config
	// Manipulator overrides the default OrbitManipulator.
	Manipulator CameraManipulator
}

func (m ViewerModule) Install(app *App, cmd *Commands) {
	viewer := NewViewer(m.Config, m.Manipulator, app.Logger())
	cmd.AddResources(viewer, &TouchQueue{})

	cmd.UseSystem(
		System(touchDispatchSystem).
			InStage(PreUpdate),
	)
	cmd.UseSystem(
		System(cameraSyncSystem).
			InStage(PreRender),
	)
}

func touchDispatchSystem(queue *TouchQueue, viewer *Viewer) {
	for _, ev := range queue.Drain() {
		viewer.OnTouchEvent(ev)
	}
}

func cameraSyncSystem(viewer *Viewer) {
	viewer.Sync()
}
