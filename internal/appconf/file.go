package appconf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the optional YAML config file. All fields are optional;
// set fields override the corresponding command-line flags.
type FileConfig struct {
	Port       *int     `yaml:"port"`
	Env        *string  `yaml:"env"`
	ApiKeys    []string `yaml:"apiKeys"`
	RateLimit  *int     `yaml:"rateLimit"`
	DataSource *string  `yaml:"dataSource"`
	DataPath   *string  `yaml:"dataPath"`
	Clusters   *int     `yaml:"clusters"`
	ExportDir  *string  `yaml:"exportDir"`
}

// LoadFileConfig reads and parses the YAML config file at path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig

	raw, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fc, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return fc, nil
}
