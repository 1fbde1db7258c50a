package prefabs

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrUnknownPreset = errors.New("prefabs: unknown preset")

// RoomSpec describes one room preset: geometry, obstacles, tuning and the
// win predicate.
type RoomSpec struct {
	Name        string         `yaml:"name"`
	TickSeconds float64        `yaml:"tick_seconds"`
	Room        RoomDimsSpec   `yaml:"room"`
	Walls       []WallSpec     `yaml:"walls"`
	Player      PlayerSpec     `yaml:"player"`
	Projectile  ProjectileSpec `yaml:"projectile"`
	Teleport    TeleportSpec   `yaml:"teleport"`
	Barriers    []BarrierSpec  `yaml:"barriers"`
	KillZones   []KillZoneSpec `yaml:"kill_zones"`
	Button      *ButtonSpec    `yaml:"button"`
	Goal        *BoxSpec       `yaml:"goal"`
	Door        *BoxSpec       `yaml:"door"`
	WinScript   string         `yaml:"win_script"`
	Palette     PaletteSpec    `yaml:"palette"`
}

type RoomDimsSpec struct {
	Width  float64    `yaml:"width"`
	Depth  float64    `yaml:"depth"`
	Height float64    `yaml:"height"`
	Margin *float64   `yaml:"margin"`
	Spawn  mgl64.Vec3 `yaml:"spawn"`
}

// WallSpec is a straight wall on the floor plane. Start and End are (x, z).
type WallSpec struct {
	Start  [2]float64 `yaml:"start"`
	End    [2]float64 `yaml:"end"`
	Height float64    `yaml:"height"`
	Rows   int        `yaml:"rows"`
	Cols   int        `yaml:"cols"`
	Gaps   []CellSpec `yaml:"gaps"`
}

type CellSpec struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

type PlayerSpec struct {
	MoveSpeed       float64  `yaml:"move_speed"`
	TurnSpeed       float64  `yaml:"turn_speed"`
	EyeHeight       float64  `yaml:"eye_height"`
	Gravity         *float64 `yaml:"gravity"`
	JumpVelocity    float64  `yaml:"jump_velocity"`
	LookSensitivity float64  `yaml:"look_sensitivity"`
}

type ProjectileSpec struct {
	Speed           float64 `yaml:"speed"`
	Radius          float64 `yaml:"radius"`
	Lifetime        float64 `yaml:"lifetime"`
	SpawnOffset     float64 `yaml:"spawn_offset"`
	DropOutOfBounds bool    `yaml:"drop_out_of_bounds"`
}

type TeleportSpec struct {
	Cooldown          *float64 `yaml:"cooldown"`
	Proximity         float64  `yaml:"proximity"`
	Inset             float64  `yaml:"inset"`
	BoundaryTolerance float64  `yaml:"boundary_tolerance"`
}

type BoxSpec struct {
	Min mgl64.Vec3 `yaml:"min"`
	Max mgl64.Vec3 `yaml:"max"`
}

type BarrierSpec struct {
	Name   string     `yaml:"name"`
	Point  mgl64.Vec3 `yaml:"point"`
	Normal mgl64.Vec3 `yaml:"normal"`
	Bounds BoxSpec    `yaml:"bounds"`
	Holes  []BoxSpec  `yaml:"holes"`
	Gated  bool       `yaml:"gated"`
}

type KillZoneSpec struct {
	Name  string    `yaml:"name"`
	Box   BoxSpec   `yaml:"box"`
	Holes []BoxSpec `yaml:"holes"`
	Gated bool      `yaml:"gated"`
}

type ButtonSpec struct {
	Center    mgl64.Vec3 `yaml:"center"`
	Radius    float64    `yaml:"radius"`
	Height    float64    `yaml:"height"`
	Tolerance float64    `yaml:"tolerance"`
}

type PaletteSpec struct {
	Tile      *YAMLColor `yaml:"tile"`
	MarkerA   *YAMLColor `yaml:"marker_a"`
	MarkerB   *YAMLColor `yaml:"marker_b"`
	Laser     *YAMLColor `yaml:"laser"`
	Button    *YAMLColor `yaml:"button"`
	DoorRed   *YAMLColor `yaml:"door_red"`
	DoorGreen *YAMLColor `yaml:"door_green"`
}

// Float returns a pointer to v, for the tunables where zero is a setting.
func Float(v float64) *float64 {
	return &v
}

// orDefault returns v, or a fresh pointer to def when v is nil. The result
// never aliases the receiver's pointer.
func orDefault(v *float64, def float64) *float64 {
	if v == nil {
		return Float(def)
	}
	return Float(*v)
}

// Normalized fills unset tuning with the defaults of the classic room.
// Margin, gravity and teleport cooldown are unset only when nil, so an
// explicit zero is kept. Every other tunable treats zero as unset.
func (s RoomSpec) Normalized() RoomSpec {
	out := s
	if out.TickSeconds <= 0 {
		out.TickSeconds = 0.016
	}

	r := &out.Room
	if r.Width == 0 {
		r.Width = 20
	}
	if r.Depth == 0 {
		r.Depth = r.Width
	}
	if r.Height == 0 {
		r.Height = 9
	}
	r.Margin = orDefault(r.Margin, 0.1)
	if r.Spawn == (mgl64.Vec3{}) {
		r.Spawn = mgl64.Vec3{r.Width / 2, 0, r.Depth / 2}
	}

	out.Walls = append([]WallSpec(nil), s.Walls...)
	for i := range out.Walls {
		if out.Walls[i].Height == 0 {
			out.Walls[i].Height = r.Height
		}
	}

	p := &out.Player
	if p.MoveSpeed == 0 {
		p.MoveSpeed = 6
	}
	if p.TurnSpeed == 0 {
		p.TurnSpeed = 120
	}
	if p.EyeHeight == 0 {
		p.EyeHeight = 2.5
	}
	p.Gravity = orDefault(p.Gravity, -20)
	if p.LookSensitivity == 0 {
		p.LookSensitivity = 0.2
	}

	pr := &out.Projectile
	if pr.Speed == 0 {
		pr.Speed = 7
	}
	if pr.Radius == 0 {
		pr.Radius = 0.1
	}
	if pr.Lifetime == 0 {
		pr.Lifetime = 5
	}
	if pr.SpawnOffset == 0 {
		pr.SpawnOffset = 0.8
	}

	t := &out.Teleport
	t.Cooldown = orDefault(t.Cooldown, 1)
	if t.Proximity == 0 {
		t.Proximity = 0.5
	}
	if t.Inset == 0 {
		t.Inset = 2
	}
	if t.BoundaryTolerance == 0 {
		t.BoundaryTolerance = 0.1
	}

	if s.Button != nil {
		b := *s.Button
		if b.Radius == 0 {
			b.Radius = 2
		}
		if b.Tolerance == 0 {
			b.Tolerance = 0.1
		}
		out.Button = &b
	}

	return out
}

// PresetFile maps a preset name ("puzzle") or file name ("puzzle.yaml") to
// its prefab file.
func PresetFile(name string) string {
	name = strings.TrimSpace(name)
	if ext := path.Ext(name); ext == ".yaml" || ext == ".yml" {
		return name
	}
	return name + ".yaml"
}

// LoadRoomSpec loads and normalizes a preset by name.
func LoadRoomSpec(name string) (*RoomSpec, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("prefabs: empty preset name: %w", ErrUnknownPreset)
	}
	file := PresetFile(name)
	spec, err := LoadSpec[RoomSpec](file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("prefabs: preset %q: %w", name, ErrUnknownPreset)
		}
		return nil, err
	}
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(file, path.Ext(file))
	}
	normalized := spec.Normalized()
	return &normalized, nil
}

// Presets lists the embedded preset names.
func Presets() []string {
	matches, err := fs.Glob(PrefabsFS, "*.yaml")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(m, ".yaml"))
	}
	sort.Strings(names)
	return names
}
