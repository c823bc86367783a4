package server

import (
	"fmt"
	"os"
	"path"

	"github.com/ije/gox/utils"
	"gopkg.in/yaml.v3"

	"spaloading/loading"
)

// Config is read from spaloading.config.json (or .yaml/.yml) in the working dir.
type Config struct {
	// Type is the loading type: text, img or svg.
	Type    string           `json:"type" yaml:"type"`
	Options loading.Settings `json:"options" yaml:"options"`
	// OutDir receives the transformed index.html of a build, relative to the working dir.
	OutDir string `json:"outDir" yaml:"outDir"`
	LogDir string `json:"logDir" yaml:"logDir"`
	Port   int    `json:"port" yaml:"port"`
}

// LoadConfig reads the config file of dir, if any, and applies defaults.
func LoadConfig(dir string) (cfg Config, err error) {
	for _, name := range configFiles {
		filename := path.Join(dir, name)
		if !fileExists(filename) {
			continue
		}
		if path.Ext(name) == ".json" {
			err = utils.ParseJSONFile(filename, &cfg)
		} else {
			err = parseYAMLFile(filename, &cfg)
		}
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", name, err)
		}
		break
	}

	if _, err = loading.ParseKind(cfg.Type); err != nil {
		return cfg, err
	}
	if cfg.OutDir == "" {
		cfg.OutDir = defaultOutDir
	}
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	return cfg, nil
}

func parseYAMLFile(filename string, v interface{}) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}
