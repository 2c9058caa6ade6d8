package viewconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the path to the viewer config file, relative to the process working directory.
const DefaultPath = "config/view.yaml"

// ViewPrefs holds viewer-only preferences (lighting, camera control, statistics, assets). Persisted across runs.
type ViewPrefs struct {
	AutoenablesDefaultLighting bool   `yaml:"autoenables_default_lighting"`
	AllowsCameraControl        bool   `yaml:"allows_camera_control"`
	ShowsStatistics            bool   `yaml:"shows_statistics"`
	AssetDir                   string `yaml:"asset_dir"`
	AuthoredScene              string `yaml:"authored_scene"`
	WindowWidth                int32  `yaml:"window_width"`
	WindowHeight               int32  `yaml:"window_height"`
	Fullscreen                 bool   `yaml:"fullscreen"`
}

// Default returns the default viewer preferences: lighting, camera control and statistics on,
// and the authored campus looked up under assets/. An empty AuthoredScene skips the lookup.
func Default() ViewPrefs {
	return ViewPrefs{
		AutoenablesDefaultLighting: true,
		AllowsCameraControl:        true,
		ShowsStatistics:            true,
		AssetDir:                   "assets",
		AuthoredScene:              "art.scnassets/Campus.scn",
		WindowWidth:                1280,
		WindowHeight:               720,
	}
}

// Load reads viewer preferences from path. If the file is missing or invalid, returns Default()
// and does not create a file. Fields absent from the file keep their default values.
func Load(path string) (ViewPrefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	if p.WindowWidth <= 0 || p.WindowHeight <= 0 {
		d := Default()
		p.WindowWidth, p.WindowHeight = d.WindowWidth, d.WindowHeight
	}
	return p, nil
}

// Save writes viewer preferences to path, creating the config directory if needed.
func Save(path string, p ViewPrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
