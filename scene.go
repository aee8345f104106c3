package orbitview

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/orbitview/geom"
)

type EntityId uint64

type TransformComponent struct {
	Matrix mgl32.Mat4
}

func IdentityTransform() TransformComponent {
	return TransformComponent{Matrix: mgl32.Ident4()}
}

// Renderable is a mesh placed in the scene.
type Renderable struct {
	Id        EntityId
	Name      string
	Mesh      AssetId
	Transform TransformComponent
	Hidden    bool
}

// Scene keeps renderables in insertion order.
type Scene struct {
	nextId   EntityId
	entities map[EntityId]*Renderable
	order    []EntityId
}

func NewScene() *Scene {
	return &Scene{
		entities: make(map[EntityId]*Renderable),
	}
}

func (s *Scene) AddEntity(name string, mesh AssetId, transform TransformComponent) EntityId {
	id := s.nextId
	s.nextId++
	s.entities[id] = &Renderable{
		Id:        id,
		Name:      name,
		Mesh:      mesh,
		Transform: transform,
	}
	s.order = append(s.order, id)
	return id
}

func (s *Scene) Entity(id EntityId) (*Renderable, bool) {
	r, ok := s.entities[id]
	return r, ok
}

// Find returns the first renderable with the given name.
func (s *Scene) Find(name string) (*Renderable, bool) {
	for _, id := range s.order {
		if r := s.entities[id]; r.Name == name {
			return r, true
		}
	}
	return nil, false
}

func (s *Scene) RemoveEntity(id EntityId) {
	if _, ok := s.entities[id]; !ok {
		return
	}
	delete(s.entities, id)
	for i, eid := range s.order {
		if eid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Scene) Entities() []*Renderable {
	out := make([]*Renderable, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entities[id])
	}
	return out
}

func (s *Scene) Len() int {
	return len(s.order)
}

// TranslateEntity overwrites the translation column and keeps rotation and
// scale.
func (s *Scene) TranslateEntity(id EntityId, x, y, z float32) error {
	r, ok := s.entities[id]
	if !ok {
		return fmt.Errorf("translate entity %d: not found", id)
	}
	r.Transform.Matrix[12] = x
	r.Transform.Matrix[13] = y
	r.Transform.Matrix[14] = z
	return nil
}

// ClearTransform resets an entity to the identity transform.
func (s *Scene) ClearTransform(id EntityId) error {
	r, ok := s.entities[id]
	if !ok {
		return fmt.Errorf("clear transform %d: not found", id)
	}
	r.Transform = IdentityTransform()
	return nil
}

// SceneDef describes ad-hoc meshes to build at startup.
type SceneDef struct {
	Meshes []MeshDef `yaml:"meshes" toml:"meshes"`
}

// MeshDef describes one generated mesh.
//
// Type is one of "triangle", "lines", "quad", "cylinder", "quadratic_curve"
// or "cubic_curve". Points carries the corners or control points; curves use
// the X and Z of their control points. Cylinders use Radius, Height and
// Segments around the origin.
type MeshDef struct {
	Name     string       `yaml:"name" toml:"name"`
	Type     string       `yaml:"type" toml:"type"`
	Points   []mgl32.Vec3 `yaml:"points" toml:"points"`
	Radius   float32      `yaml:"radius" toml:"radius"`
	Height   float32      `yaml:"height" toml:"height"`
	Segments int          `yaml:"segments" toml:"segments"`
	Position mgl32.Vec3   `yaml:"position" toml:"position"`
	Color    [4]uint8     `yaml:"color" toml:"color"`
}

// LoadScene builds every mesh in def, registers it and spawns an entity.
func LoadScene(scene *Scene, assets *AssetServer, def *SceneDef) error {
	for i, md := range def.Meshes {
		id, err := buildMesh(assets, md)
		if err != nil {
			return fmt.Errorf("scene mesh %d (%s): %w", i, md.Name, err)
		}
		tr := IdentityTransform()
		tr.Matrix[12], tr.Matrix[13], tr.Matrix[14] = md.Position.X(), md.Position.Y(), md.Position.Z()
		scene.AddEntity(md.Name, id, tr)
	}
	return nil
}

func buildMesh(assets *AssetServer, md MeshDef) (AssetId, error) {
	switch md.Type {
	case "triangle":
		if len(md.Points) != 3 {
			return "", fmt.Errorf("triangle needs 3 points, got %d", len(md.Points))
		}
		indices, _ := geom.SequentialIndices(3)
		return assets.LoadMesh(colored(md.Points, md.Color), geom.PositionColorStride, indices, PrimitiveTriangles)

	case "lines":
		if len(md.Points) < 2 {
			return "", fmt.Errorf("lines need at least 2 points, got %d", len(md.Points))
		}
		indices, err := geom.SequentialIndices(len(md.Points))
		if err != nil {
			return "", err
		}
		return assets.LoadMesh(geom.PositionBuffer(md.Points), geom.PositionStride, indices, PrimitiveLineStrip)

	case "quad":
		if len(md.Points) != 4 {
			return "", fmt.Errorf("quad needs 4 points, got %d", len(md.Points))
		}
		q := geom.Quad{TopLeft: md.Points[0], BottomLeft: md.Points[1], TopRight: md.Points[2], BottomRight: md.Points[3]}
		indices, _ := geom.QuadIndices(1)
		return assets.LoadMesh(geom.QuadBuffer(q), geom.PositionStride, indices, PrimitiveTriangles)

	case "cylinder":
		quads, err := geom.Cylinder(mgl32.Vec3{}, md.Radius, 0, md.Height, md.Segments)
		if err != nil {
			return "", err
		}
		indices, err := geom.QuadIndices(len(quads))
		if err != nil {
			return "", fmt.Errorf("cylinder with %d segments: %w", md.Segments, err)
		}
		return assets.LoadMesh(geom.QuadsBuffer(quads), geom.PositionStride, indices, PrimitiveTriangles)

	case "quadratic_curve", "cubic_curve":
		points, err := curvePoints(md)
		if err != nil {
			return "", err
		}
		lifted := geom.Lift(points, 0)
		indices, err := geom.SequentialIndices(len(lifted))
		if err != nil {
			return "", err
		}
		return assets.LoadMesh(geom.PositionBuffer(lifted), geom.PositionStride, indices, PrimitiveLineStrip)
	}
	return "", fmt.Errorf("unknown mesh type %q", md.Type)
}

func curvePoints(md MeshDef) ([]mgl32.Vec2, error) {
	ctrl := make([]mgl32.Vec2, len(md.Points))
	for i, p := range md.Points {
		ctrl[i] = mgl32.Vec2{p.X(), p.Z()}
	}
	if md.Type == "quadratic_curve" {
		if len(ctrl) != 3 {
			return nil, fmt.Errorf("quadratic curve needs 3 control points, got %d", len(ctrl))
		}
		return geom.QuadraticBezier(ctrl[0], ctrl[1], ctrl[2], md.Segments)
	}
	if len(ctrl) != 4 {
		return nil, fmt.Errorf("cubic curve needs 4 control points, got %d", len(ctrl))
	}
	return geom.CubicBezier(ctrl[0], ctrl[1], ctrl[2], ctrl[3], md.Segments)
}

func colored(points []mgl32.Vec3, c [4]uint8) []float32 {
	color := geom.PackABGR(c[0], c[1], c[2], c[3])
	vertices := make([]geom.VertexWithColor, len(points))
	for i, p := range points {
		vertices[i] = geom.VertexWithColor{Position: p, Color: color}
	}
	return geom.ColoredBuffer(vertices)
}

// SceneModule installs a Scene and builds Def into it. It needs an
// AssetServer, so install AssetServerModule first.
type SceneModule struct {
	Def *SceneDef
}

func (m SceneModule) Install(app *App, cmd *Commands) {
	scene := NewScene()
	cmd.AddResources(scene)
	if m.Def == nil {
		return
	}

	assets, ok := Resource[AssetServer](app)
	if !ok {
		panic("SceneModule requires AssetServerModule")
	}
	if err := LoadScene(scene, assets, m.Def); err != nil {
		app.Logger().Errorf("load scene: %v", err)
		panic(err)
	}
	app.Logger().Infof("scene loaded with %d meshes", scene.Len())
}
