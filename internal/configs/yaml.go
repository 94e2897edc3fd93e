package configs

import (
	"bytes"
	"os"

	"github.com/PolarWolf314/quick-gist/internal/utils"

	"gopkg.in/yaml.v3"
)

// SaveYAML saves a struct to a YAML file readable only by the owner.
func SaveYAML(filePath string, data interface{}) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	return utils.AtomicWriteFile(filePath, buf.Bytes(), 0600)
}

// LoadYAML loads a YAML file into a struct.
func LoadYAML(filePath string, data interface{}) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(raw, data)
}
