package config

// SceneConfig represents the complete description of a renderable scene and
// how the interactive hosts drive it.
type SceneConfig struct {
	Metadata  Metadata  `yaml:"metadata"`
	Viewport  Viewport  `yaml:"viewport"`
	Materials Materials `yaml:"materials"`
	Camera    Camera    `yaml:"camera"`
	Lights    []Light   `yaml:"lights,omitempty"`
	Meshes    []Mesh    `yaml:"meshes,omitempty"`
	Spheres   []Sphere  `yaml:"spheres,omitempty"`
	Controls  Controls  `yaml:"controls"`
}

type Metadata struct {
	Timestamp string `yaml:"timestamp"` // YYYY-MM-DD HH:MM:SS in UTC
	GitCommit string `yaml:"git_commit"`
}

type Viewport struct {
	Width  int `yaml:"width"`  // frame buffer pixels
	Height int `yaml:"height"` // frame buffer pixels
	Scale  int `yaml:"scale"`  // window and PNG upscale factor
	TPS    int `yaml:"tps"`    // ticks per second of the interactive hosts
}

type Materials struct {
	Inline   map[string]Material `yaml:"inline,omitempty"`
	FromFile string              `yaml:"from_file,omitempty"`
}

type Material struct {
	Color        [3]int  `yaml:"color" json:"color"`
	Transparency float64 `yaml:"transparency" json:"transparency"`
	Reflectivity float64 `yaml:"reflectivity" json:"reflectivity"`
}

// Rotation holds Euler angles, in radians unless Degrees is set.
type Rotation struct {
	Yaw     float64 `yaml:"yaw"`
	Pitch   float64 `yaml:"pitch"`
	Roll    float64 `yaml:"roll"`
	Degrees bool    `yaml:"degrees,omitempty"`
}

type Camera struct {
	ID       string     `yaml:"id,omitempty"`
	Position [3]float64 `yaml:"position"`
	Rotation Rotation   `yaml:"rotation"`
	FOV      int        `yaml:"fov"` // degrees
}

type Light struct {
	ID        string     `yaml:"id,omitempty"`
	Position  [3]float64 `yaml:"position"`
	Rotation  Rotation   `yaml:"rotation"`
	Intensity float64    `yaml:"intensity"`
	Color     *[3]int    `yaml:"color,omitempty"` // white when unset
}

// Shapes a mesh entry can take.
const (
	ShapeCube  = "cube"
	ShapePlane = "plane"
	ShapeFile  = "file"
)

type Mesh struct {
	ID       string     `yaml:"id,omitempty"`
	Shape    string     `yaml:"shape"`
	Size     float64    `yaml:"size,omitempty"`  // edge length for cube and plane
	Path     string     `yaml:"path,omitempty"`  // .obj, .stl or .3mf for shape file
	Scale    float64    `yaml:"scale,omitempty"` // vertex scale for shape file
	Position [3]float64 `yaml:"position"`
	Rotation Rotation   `yaml:"rotation"`
	Material string     `yaml:"material"`
	// AccentMaterial colors every other cube triangle. Defaults to Material.
	AccentMaterial string `yaml:"accent_material,omitempty"`
	// KeepFileMaterials uses the colors stored in a mesh file when present.
	KeepFileMaterials bool `yaml:"keep_file_materials,omitempty"`
}

type Sphere struct {
	ID       string     `yaml:"id,omitempty"`
	Center   [3]float64 `yaml:"center"`
	Radius   float64    `yaml:"radius"`
	Material string     `yaml:"material"`
}

// Controls binds held keys to scene objects by id. A zero or omitted step
// means the engine default; steps cannot be negative.
type Controls struct {
	Lights    []string `yaml:"lights,omitempty"`
	Spin      []string `yaml:"spin,omitempty"`
	YawStep   float64  `yaml:"yaw_step,omitempty"`
	RollStep  float64  `yaml:"roll_step,omitempty"`
	FOVStep   int      `yaml:"fov_step,omitempty"`
	LightStep float64  `yaml:"light_step,omitempty"`
	SpinStep  float64  `yaml:"spin_step,omitempty"`
}
