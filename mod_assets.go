package orbitview

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gekko3d/orbitview/geom"
)

type AssetId string

type Primitive int

const (
	PrimitiveTriangles Primitive = iota
	PrimitiveLines
	PrimitiveLineStrip
	PrimitivePoints
)

func (p Primitive) String() string {
	switch p {
	case PrimitiveTriangles:
		return "triangles"
	case PrimitiveLines:
		return "lines"
	case PrimitiveLineStrip:
		return "line_strip"
	case PrimitivePoints:
		return "points"
	}
	return fmt.Sprintf("Primitive(%d)", int(p))
}

// MeshAsset is a CPU-side vertex/index buffer pair. Stride is in bytes.
type MeshAsset struct {
	Version   uint
	Vertices  []float32
	Stride    int
	Indices   []uint16
	Primitive Primitive
}

func (m MeshAsset) VertexCount() int {
	if m.Stride <= 0 {
		return 0
	}
	return len(m.Vertices) * 4 / m.Stride
}

type AssetServer struct {
	meshes map[AssetId]MeshAsset
}

type AssetServerModule struct{}

func NewAssetServer() *AssetServer {
	return &AssetServer{
		meshes: make(map[AssetId]MeshAsset),
	}
}

func (AssetServerModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewAssetServer())
}

// LoadMesh registers a mesh after checking that the stride tiles the vertex
// data and every index points at a vertex.
func (server *AssetServer) LoadMesh(vertices []float32, stride int, indices []uint16, primitive Primitive) (AssetId, error) {
	mesh := MeshAsset{
		Vertices:  vertices,
		Stride:    stride,
		Indices:   indices,
		Primitive: primitive,
	}
	if err := validateMesh(mesh); err != nil {
		return "", err
	}

	id := makeAssetId()
	server.meshes[id] = mesh
	return id, nil
}

// UpdateMesh replaces vertex data in place, keeping stride and indices, and
// bumps the version so renderers re-upload it.
func (server *AssetServer) UpdateMesh(id AssetId, vertices []float32) error {
	mesh, ok := server.meshes[id]
	if !ok {
		return fmt.Errorf("update mesh %s: not found", id)
	}
	mesh.Vertices = vertices
	if err := validateMesh(mesh); err != nil {
		return fmt.Errorf("update mesh %s: %w", id, err)
	}
	mesh.Version++
	server.meshes[id] = mesh
	return nil
}

func (server *AssetServer) Mesh(id AssetId) (MeshAsset, bool) {
	mesh, ok := server.meshes[id]
	return mesh, ok
}

func (server *AssetServer) RemoveMesh(id AssetId) {
	delete(server.meshes, id)
}

func (server *AssetServer) Len() int {
	return len(server.meshes)
}

func validateMesh(mesh MeshAsset) error {
	if mesh.Stride <= 0 || mesh.Stride%4 != 0 {
		return fmt.Errorf("mesh stride %d is not a positive multiple of 4", mesh.Stride)
	}
	if (len(mesh.Vertices)*4)%mesh.Stride != 0 {
		return fmt.Errorf("%d floats do not fill whole %d-byte vertices", len(mesh.Vertices), mesh.Stride)
	}
	count := mesh.VertexCount()
	if count > geom.MaxIndexedVertices {
		return fmt.Errorf("%d vertices exceed the %d a 16-bit index can address", count, geom.MaxIndexedVertices)
	}
	for i, idx := range mesh.Indices {
		if int(idx) >= count {
			return fmt.Errorf("index %d at %d is out of range for %d vertices", idx, i, count)
		}
	}
	return nil
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
