package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadSpec decodes a prefab file into a zero T.
func LoadSpec[T any](filename string) (T, error) {
	var spec T
	err := LoadInto(filename, &spec)
	return spec, err
}

// LoadInto decodes a prefab file over an already populated value, so
// fields the file leaves out keep their defaults.
func LoadInto[T any](filename string, spec *T) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

// Seconds is a duration written as a plain number of seconds.
type Seconds float64

func (s Seconds) Duration() time.Duration {
	return time.Duration(float64(s) * float64(time.Second))
}

type BoxSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerSpec struct {
	Name               string      `yaml:"name"`
	Box                BoxSpec     `yaml:"box"`
	Mass               float64     `yaml:"mass"`
	Friction           float64     `yaml:"friction"`
	MoveSpeed          float64     `yaml:"move_speed"`
	JumpSpeed          float64     `yaml:"jump_speed"`
	BoostedJumpSpeed   float64     `yaml:"boosted_jump_speed"`
	AirControl         float64     `yaml:"air_control"`
	WingsuitAirControl float64     `yaml:"wingsuit_air_control"`
	WingsuitFallSpeed  float64     `yaml:"wingsuit_fall_speed"`
	ClimbSpeed         float64     `yaml:"climb_speed"`
	RespawnOffsetY     float64     `yaml:"respawn_offset_y"`
	Muzzle             OffsetSpec  `yaml:"muzzle"`
	Colors             []YAMLColor `yaml:"colors"`
}

type OffsetSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Color returns the tint for player index i, falling back to white.
func (s *PlayerSpec) Color(i int) color.RGBA {
	if s == nil || i < 0 || i >= len(s.Colors) {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return s.Colors[i].RGBA
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type NPCSpec struct {
	Name         string    `yaml:"name"`
	Box          BoxSpec   `yaml:"box"`
	Speed        float64   `yaml:"speed"`
	Script       string    `yaml:"script"`
	DestroyOnHit bool      `yaml:"destroy_on_hit"`
	Color        YAMLColor `yaml:"color"`
}

type PlatformSpec struct {
	Speed float64   `yaml:"speed"`
	Color YAMLColor `yaml:"color"`
}

type PickupSpec struct {
	Value        int       `yaml:"value"`
	Size         float64   `yaml:"size"`
	BobAmplitude float64   `yaml:"bob_amplitude"`
	BobSpeed     float64   `yaml:"bob_speed"`
	Color        YAMLColor `yaml:"color"`
}

type TerrainSpec struct {
	Solid     YAMLColor `yaml:"solid"`
	Climbable YAMLColor `yaml:"climbable"`
}

// WorldSpec groups the non-player entities a level may place.
type WorldSpec struct {
	NPC      NPCSpec      `yaml:"npc"`
	Platform PlatformSpec `yaml:"platform"`
	Pickup   PickupSpec   `yaml:"pickup"`
	Terrain  TerrainSpec  `yaml:"terrain"`
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec]("world.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ShopItemSpec struct {
	Item        string `yaml:"item"`
	Cost        int    `yaml:"cost"`
	Description string `yaml:"description"`
}

type ShopSpec struct {
	Items []ShopItemSpec `yaml:"items"`
}

func LoadShopSpec() (*ShopSpec, error) {
	spec, err := LoadSpec[ShopSpec]("shop.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	rgba, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.RGBA = rgba
	return nil
}

// ParseHexColor reads "#rrggbb" or "#rrggbbaa".
func ParseHexColor(v string) (color.RGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var out color.RGBA
	var err error
	if out.R, err = parse(0); err != nil {
		return color.RGBA{}, err
	}
	if out.G, err = parse(2); err != nil {
		return color.RGBA{}, err
	}
	if out.B, err = parse(4); err != nil {
		return color.RGBA{}, err
	}
	out.A = 255
	if len(s) == 8 {
		if out.A, err = parse(6); err != nil {
			return color.RGBA{}, err
		}
	}
	return out, nil
}
