package config

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults
var defaultFS embed.FS

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics *PhysicsConfig
	Stages  []*StageConfig // campaign order; level N is Stages[N-1]
}

// MaxLevel returns the number of levels in the campaign
func (g *GameConfig) MaxLevel() int {
	return len(g.Stages)
}

// Stage returns the stage for a 1-based level number
func (g *GameConfig) Stage(level int) (*StageConfig, error) {
	if level < 1 || level > len(g.Stages) {
		return nil, fmt.Errorf("%w: level %d not in 1..%d", ErrInvalidStage, level, len(g.Stages))
	}
	return g.Stages[level-1], nil
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// NewDefaultLoader reads the configuration compiled into the binary
func NewDefaultLoader() *Loader {
	sub, err := fs.Sub(defaultFS, "defaults")
	if err != nil {
		// defaults is a fixed embed path
		panic(err)
	}
	return NewFSLoader(sub, "embedded")
}

// LoadPhysics loads physics.yaml
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.yaml: %w", err)
	}

	var cfg PhysicsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadStage loads a stage YAML file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads physics and every campaign stage, then validates them
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	stages := make([]*StageConfig, 0, len(physics.Campaign.Stages))
	for _, name := range physics.Campaign.Stages {
		stage, err := l.LoadStage(name)
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}

	cfg := &GameConfig{
		Physics: physics,
		Stages:  stages,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", l.basePath, err)
	}

	return cfg, nil
}

// Default loads the embedded configuration.
// The embedded files are part of the build, so a failure is a programming error.
func Default() *GameConfig {
	cfg, err := NewDefaultLoader().LoadAll()
	if err != nil {
		panic(err)
	}
	return cfg
}
