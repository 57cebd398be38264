package college

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides pins players whose college string is missing or unusable.
//
//	by_player_id:
//	  "00-0036355": Alabama
//	by_name:
//	  "Jalen Hurts": Oklahoma
type Overrides struct {
	ByPlayerID map[string]string `yaml:"by_player_id"`
	ByName     map[string]string `yaml:"by_name"`
}

func ParseOverrides(data []byte) (Overrides, error) {
	var out Overrides
	if err := yaml.Unmarshal(data, &out); err != nil {
		return Overrides{}, fmt.Errorf("decode college overrides: %w", err)
	}
	return out, nil
}

// LoadOverrides reads the YAML override file. An empty path yields no overrides.
func LoadOverrides(path string) (Overrides, error) {
	if path == "" {
		return Overrides{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, fmt.Errorf("read college overrides %s: %w", path, err)
	}
	return ParseOverrides(data)
}
