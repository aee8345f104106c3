package main

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/orbitview"
)

// sampleScene is a 20.12m by 2.64m pitch with a roller beside it and a
// delivery arc, matching the default camera framing.
var sampleScene = orbitview.SceneDef{
	Meshes: []orbitview.MeshDef{
		{
			Name: "pitch",
			Type: "quad",
			Points: []mgl32.Vec3{
				{-1.32, 0, -10.06},
				{-1.32, 0, 10.06},
				{1.32, 0, -10.06},
				{1.32, 0, 10.06},
			},
		},
		// Cylinders run along Z.
		{Name: "roller", Type: "cylinder", Radius: 0.4, Height: 1.2, Segments: 16, Position: mgl32.Vec3{3, 0.4, -0.6}},
		{
			Name:     "delivery",
			Type:     "quadratic_curve",
			Points:   []mgl32.Vec3{{0, 0, -10}, {0.4, 0, 0}, {0.1, 0, 9}},
			Segments: 32,
			Position: mgl32.Vec3{0, 0.05, 0},
		},
		{
			Name:   "crease",
			Type:   "lines",
			Points: []mgl32.Vec3{{-1.32, 0.01, 8.84}, {1.32, 0.01, 8.84}},
		},
		{
			Name:   "marker",
			Type:   "triangle",
			Points: []mgl32.Vec3{{-0.2, 0.02, 0}, {0.2, 0.02, 0}, {0, 0.02, 0.3}},
			Color:  [4]uint8{255, 64, 64, 255},
		},
	},
}
