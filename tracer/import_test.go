package tracer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadOBJ = `# unit quad in the XY plane
v -1 -1 0
v 1 -1 0
v 1 1 0
v -1 1 0
f 1 2 3
f 1 3 4
`

func TestLoadTrianglesOBJ(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "quad.obj")
	require.NoError(t, os.WriteFile(path, []byte(quadOBJ), 0644))

	mat := Diffuse(Magenta)
	tris, err := LoadTriangles(path, ImportOptions{Scale: 2, Material: mat})
	require.NoError(t, err)
	require.Len(t, tris, 2)

	assert.Equal(V(-2, -2, 0), tris[0].A)
	assert.Equal(V(2, -2, 0), tris[0].B)
	assert.Equal(V(2, 2, 0), tris[0].C)
	assert.Equal(mat, tris[1].Material)

	mesh := NewMesh(V(0, 0, -5), Rotation3{}, tris)
	hit, ok := mesh.RayHit(Ray{Origin: V(0.5, -0.5, 0), Direction: V(0, 0, -1)})
	assert.True(ok)
	assertVec(t, V(0.5, -0.5, -5), hit.Point)
}

func TestLoadTrianglesErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTriangles(filepath.Join(dir, "model.ply"), ImportOptions{})
	assert.ErrorContains(t, err, "unsupported mesh format")

	_, err = LoadTriangles(filepath.Join(dir, "missing.obj"), ImportOptions{})
	assert.Error(t, err)

	_, err = LoadTriangles(filepath.Join(dir, "missing.3mf"), ImportOptions{})
	assert.Error(t, err)
}

func TestLoadTrianglesKeepFileMaterials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.OBJ")
	require.NoError(t, os.WriteFile(path, []byte(quadOBJ), 0644))

	// no mtllib, so the file's material is the zero material
	tris, err := LoadTriangles(path, ImportOptions{Material: Diffuse(White), KeepFileMaterials: true})
	require.NoError(t, err)
	require.Len(t, tris, 2)
	assert.Equal(t, Material{}, tris[0].Material)
}
