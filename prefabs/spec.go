package prefabs

import (
	"fmt"

	"github.com/milk9111/railshooter/nav"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type FollowerSpec struct {
	Speed float64 `yaml:"speed"`
}

type RailSpec struct {
	Name         string                  `yaml:"name"`
	Followers    map[string]FollowerSpec `yaml:"followers"`
	CameraOffset Vec3Spec                `yaml:"camera_offset"`
}

// FollowerSpeed returns the configured speed for a follower type, falling
// back to nav.DefaultRailSpeed.
func (s RailSpec) FollowerSpeed(followerType string) float64 {
	if f, ok := s.Followers[followerType]; ok && f.Speed > 0 {
		return f.Speed
	}
	return nav.DefaultRailSpeed
}

type ColliderSpec struct {
	Radius     float64 `yaml:"radius"`
	HalfHeight float64 `yaml:"half_height"`
	Sweep      float64 `yaml:"sweep"`
}

type PlayerSpec struct {
	Name         string       `yaml:"name"`
	MaxSpeed     float64      `yaml:"max_speed"`
	RotSpeed     float64      `yaml:"rot_speed"`
	Acceleration float64      `yaml:"acceleration"`
	BulletSpeed  float64      `yaml:"bullet_speed"`
	MuzzleOffset float64      `yaml:"muzzle_offset"`
	StartOffset  Vec3Spec     `yaml:"start_offset"`
	Bounds       Vec3Spec     `yaml:"bounds"`
	Collider     ColliderSpec `yaml:"collider"`
}

// Enemy spawn patterns.
const (
	SpawnPatternRandom = "random"
	SpawnPatternNoise  = "noise"
)

type EnemySpec struct {
	Name          string       `yaml:"name"`
	Speed         float64      `yaml:"speed"`
	SpawnInterval float64      `yaml:"spawn_interval_seconds"`
	SpawnPattern  string       `yaml:"spawn_pattern"`
	Collider      ColliderSpec `yaml:"collider"`
}

type BulletSpec struct {
	Name       string       `yaml:"name"`
	TTLSeconds float64      `yaml:"ttl_seconds"`
	Collider   ColliderSpec `yaml:"collider"`
}

type ExplosionSpec struct {
	TTLSeconds float64 `yaml:"ttl_seconds"`
}

// Config is every prefab spec the game reads, loaded together so a hot
// reload swaps them as one.
type Config struct {
	Rail      RailSpec
	Player    PlayerSpec
	Enemy     EnemySpec
	Bullet    BulletSpec
	Explosion ExplosionSpec
}

const (
	RailFile      = "rail.yaml"
	PlayerFile    = "player.yaml"
	EnemyFile     = "enemy.yaml"
	BulletFile    = "bullet.yaml"
	ExplosionFile = "explosion.yaml"
)

// LoadConfig reads every prefab spec.
func LoadConfig() (*Config, error) {
	var cfg Config
	var err error
	if cfg.Rail, err = LoadSpec[RailSpec](RailFile); err != nil {
		return nil, err
	}
	if cfg.Player, err = LoadSpec[PlayerSpec](PlayerFile); err != nil {
		return nil, err
	}
	if cfg.Enemy, err = LoadSpec[EnemySpec](EnemyFile); err != nil {
		return nil, err
	}
	if cfg.Bullet, err = LoadSpec[BulletSpec](BulletFile); err != nil {
		return nil, err
	}
	if cfg.Explosion, err = LoadSpec[ExplosionSpec](ExplosionFile); err != nil {
		return nil, err
	}
	return &cfg, nil
}
