package tracer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fogleman/pt/pt"
	"github.com/hpinc/go3mf"
)

// ImportOptions controls how triangles read from a mesh file are placed in
// a Mesh's local space.
type ImportOptions struct {
	// Scale multiplies every vertex. Zero means 1.
	Scale float64
	// Material is assigned to every triangle unless KeepFileMaterials is set
	// and the file carries its own.
	Material          Material
	KeepFileMaterials bool
}

func (o ImportOptions) scale() float64 {
	if o.Scale == 0 {
		return 1
	}
	return o.Scale
}

// LoadTriangles reads the triangles of a .obj, .stl or .3mf file.
func LoadTriangles(path string, opts ImportOptions) ([]Triangle, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		m, err := pt.LoadOBJ(path, pt.Material{})
		if err != nil {
			return nil, fmt.Errorf("loading obj: %w", err)
		}
		return fromPT(m, opts), nil
	case ".stl":
		m, err := pt.LoadSTL(path, pt.Material{})
		if err != nil {
			return nil, fmt.Errorf("loading stl: %w", err)
		}
		return fromPT(m, opts), nil
	case ".3mf":
		return load3MF(path, opts)
	}
	return nil, fmt.Errorf("unsupported mesh format %q", filepath.Ext(path))
}

func fromPT(m *pt.Mesh, opts ImportOptions) []Triangle {
	s := opts.scale()
	tris := make([]Triangle, 0, len(m.Triangles))
	for _, t := range m.Triangles {
		mat := opts.Material
		if opts.KeepFileMaterials && t.Material != nil {
			mat = fromPTMaterial(*t.Material)
		}
		tris = append(tris, Triangle{
			A:        V(t.V1.X*s, t.V1.Y*s, t.V1.Z*s),
			B:        V(t.V2.X*s, t.V2.Y*s, t.V2.Z*s),
			C:        V(t.V3.X*s, t.V3.Y*s, t.V3.Z*s),
			Material: mat,
		})
	}
	return tris
}

func fromPTMaterial(m pt.Material) Material {
	mat := Material{
		Color: Color{
			R: uint8(capped(m.Color.R*255, 0, 255)),
			G: uint8(capped(m.Color.G*255, 0, 255)),
			B: uint8(capped(m.Color.B*255, 0, 255)),
		},
		Reflectivity: capped(m.Reflectivity, 0, 1),
	}
	if m.Transparent {
		mat.Transparency = 1
	}
	return mat
}

func load3MF(path string, opts ImportOptions) ([]Triangle, error) {
	var model go3mf.Model
	r, err := go3mf.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening 3mf: %w", err)
	}
	defer r.Close()
	if err := r.Decode(&model); err != nil {
		return nil, fmt.Errorf("decoding 3mf: %w", err)
	}

	s := opts.scale()
	var tris []Triangle
	for _, item := range model.Build.Items {
		obj, ok := model.FindObject(item.ObjectPath(), item.ObjectID)
		if !ok || obj.Mesh == nil {
			continue
		}
		verts := obj.Mesh.Vertices.Vertex
		for _, t := range obj.Mesh.Triangles.Triangle {
			a, b, c := verts[t.V1], verts[t.V2], verts[t.V3]
			tris = append(tris, Triangle{
				A:        V(float64(a.X())*s, float64(a.Y())*s, float64(a.Z())*s),
				B:        V(float64(b.X())*s, float64(b.Y())*s, float64(b.Z())*s),
				C:        V(float64(c.X())*s, float64(c.Y())*s, float64(c.Z())*s),
				Material: opts.Material,
			})
		}
	}
	return tris, nil
}
