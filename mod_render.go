package orbitview

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// DrawCommand is one mesh to draw this frame.
type DrawCommand struct {
	Entity      EntityId
	Mesh        AssetId
	MeshVersion uint
	Model       mgl32.Mat4
}

// DrawList is what an external renderer consumes once per frame.
type DrawList struct {
	Frame      uint64
	TimeNanos  int64
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Eye        mgl32.Vec3
	EV100      float32
	Commands   []DrawCommand
}

// RendererTag marks that a draw list producer has been installed into the App.
type RendererTag struct {
	Name string
}

// RenderModule fills the DrawList in the Render stage. It needs the Time,
// Viewer, Scene and AssetServer resources.
type RenderModule struct {
	Name string
}

func (m RenderModule) Install(app *App, cmd *Commands) {
	name := m.Name
	if name == "" {
		name = "drawlist"
	}
	ensureSingleRenderer(app, name)

	cmd.AddResources(&DrawList{})
	cmd.UseSystem(
		System(drawListSystem).
			InStage(Render),
	)
}

func ensureSingleRenderer(app *App, name string) {
	if tag, ok := Resource[RendererTag](app); ok {
		if tag.Name != name {
			app.Logger().Errorf("Multiple renderers installed: %s and %s", tag.Name, name)
			panic(fmt.Sprintf("Multiple renderers installed: %s and %s", tag.Name, name))
		}
		return
	}
	app.addResources(&RendererTag{Name: name})
}

func drawListSystem(list *DrawList, t *Time, viewer *Viewer, scene *Scene, assets *AssetServer) {
	cam := viewer.Camera

	list.Frame = t.Frame
	list.TimeNanos = t.TimeNanos()
	list.View = cam.ViewMatrix()
	list.Projection = cam.ProjectionMatrix()
	list.Eye = cam.Eye
	list.EV100 = cam.EV100()
	list.Commands = list.Commands[:0]

	for _, r := range scene.Entities() {
		if r.Hidden {
			continue
		}
		mesh, ok := assets.Mesh(r.Mesh)
		if !ok {
			continue
		}
		list.Commands = append(list.Commands, DrawCommand{
			Entity:      r.Id,
			Mesh:        r.Mesh,
			MeshVersion: mesh.Version,
			Model:       r.Transform.Matrix,
		})
	}
}
