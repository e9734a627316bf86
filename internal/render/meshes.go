package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"brick-builder/internal/scene"
)

// cached holds the unit mesh and lit material for one shape. Created lazily on first draw.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
	// centre shifts the unit mesh so its centre sits at the model origin.
	centre rl.Matrix
}

// meshes maps shapes to unit meshes (side, diameter and height 1). Meshes are created on first
// use so that GPU resources are allocated after the window/OpenGL context exists.
type meshes struct {
	cache    map[scene.Shape]cached
	shader   rl.Shader
	loaded   bool
	viewPos  [3]float32
	lightDir [3]float32
}

const cylinderSlices = 16

func newMeshes() *meshes {
	return &meshes{
		cache:    make(map[scene.Shape]cached),
		lightDir: defaultLightDir,
	}
}

// setView sets camera position and direction-to-light for this frame. Call once per frame
// before drawing so the lit shader gets correct shading.
func (m *meshes) setView(viewPos, lightDir [3]float32) {
	m.viewPos = viewPos
	m.lightDir = lightDir
}

func (m *meshes) ensure(shape scene.Shape) (cached, bool) {
	if c, ok := m.cache[shape]; ok {
		return c, true
	}
	if !m.loaded {
		m.shader = rl.LoadShaderFromMemory(litVS, litFS)
		m.loaded = true
	}

	var c cached
	switch shape {
	case scene.ShapeBox:
		c.mesh = rl.GenMeshCube(1, 1, 1)
		c.centre = rl.MatrixIdentity()
	case scene.ShapeCylinder:
		// raylib cylinders stand on Y=0; shift down half the height so the centre is at the origin.
		c.mesh = rl.GenMeshCylinder(0.5, 1, cylinderSlices)
		c.centre = rl.MatrixTranslate(0, -0.5, 0)
	case scene.ShapePlane:
		c.mesh = rl.GenMeshPlane(1, 1, 1, 1)
		c.centre = rl.MatrixIdentity()
	default:
		return cached{}, false
	}
	c.mtl = rl.LoadMaterialDefault()
	if rl.IsShaderValid(m.shader) {
		c.mtl.Shader = m.shader
	}
	m.cache[shape] = c
	return c, true
}

// draw draws one unit mesh of shape scaled to size and placed by model, tinted col.
// Must be called between BeginMode3D and EndMode3D.
func (m *meshes) draw(shape scene.Shape, size [3]float32, model rl.Matrix, col rl.Color) {
	c, ok := m.ensure(shape)
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = col
	}
	setLitUniforms(c.mtl.Shader, m.viewPos, m.lightDir)

	sx, sy, sz := size[0], size[1], size[2]
	if sy == 0 {
		sy = 1
	}
	transform := chain(c.centre, rl.MatrixScale(sx, sy, sz), model)
	rl.DrawMesh(c.mesh, c.mtl, transform)
}

// chain composes transforms applied in argument order (first argument first).
func chain(ms ...rl.Matrix) rl.Matrix {
	out := rl.MatrixIdentity()
	for _, mx := range ms {
		out = rl.MatrixMultiply(out, mx)
	}
	return out
}

func (m *meshes) unload() {
	for _, c := range m.cache {
		rl.UnloadMesh(&c.mesh)
	}
	if m.loaded && rl.IsShaderValid(m.shader) {
		rl.UnloadShader(m.shader)
	}
	m.cache = make(map[scene.Shape]cached)
	m.loaded = false
}
