package hpack

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigYAML is the template written out by CreateDefaultConfigFile
// when no config file exists yet.
const DefaultConfigYAML = `# HPACK codec configuration

# Maximum total size (in octets) of the dynamic table. Insertions that
# would exceed this threshold trigger eviction.
max_dynamic_table_size_bytes: 4096

# Maximum total size (in octets) of a header list (sum of name+value
# lengths). It is loaded into the config; no operation in this package
# checks it.
max_header_list_size_bytes: 16384

# If true, inserting an entry larger than the dynamic table's maximum size
# returns an error. If false, that insert is dropped without an error
# (it is still reported to the error callback). The Huffman and integer
# codecs always reject malformed input, whatever this setting is.
strict_mode: true
`

// Config controls HPACK codec behavior and resource limits. Grounded on
// hpack_config.h, adapted from a plain C++ struct into a YAML-loadable Go
// config following the sibling example's yaml.v3 pattern.
type Config struct {
	MaxDynamicTableSizeBytes int  `yaml:"max_dynamic_table_size_bytes"`
	MaxHeaderListSizeBytes   int  `yaml:"max_header_list_size_bytes"`
	StrictMode               bool `yaml:"strict_mode"`
}

// DefaultConfig returns the configuration new DynamicTable/codec callers
// should use absent an explicit file.
func DefaultConfig() Config {
	return Config{
		MaxDynamicTableSizeBytes: 4096,
		MaxHeaderListSizeBytes:   16 * 1024,
		StrictMode:               true,
	}
}

// LoadConfig reads and parses a YAML config file at path. If the file does
// not exist, it is created with DefaultConfigYAML's contents and the
// default config is returned.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if werr := os.WriteFile(path, []byte(DefaultConfigYAML), 0o644); werr != nil {
				return Config{}, fmt.Errorf("hpack: failed to write default config file: %w", werr)
			}
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("hpack: failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("hpack: failed to parse config file: %w", err)
	}
	return cfg, nil
}
