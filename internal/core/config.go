package core

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/ednadion/lamark/pkg/resync"
)

// DefaultConfigFile is looked up in the working directory when no explicit
// --config flag is passed.
const DefaultConfigFile = "lamark.toml"

// DefaultContext is the external context document referenced by default.
const DefaultContext = "https://linked.art/ns/v1/linked-art.json"

// Default class tags. Both are terms defined by the Linked Art context.
const (
	DefaultImageType = "DigitalImage"
	DefaultQuoteType = "LinguisticObject"
)

var (
	// Lazy-load configuration and ensure a single read
	configOnce      resync.Once
	configSingleton *Config
	configPath      = DefaultConfigFile
)

// Note: Fields must be public for the toml package to unmarshal.
type Config struct {
	Document ConfigDocument
}

type ConfigDocument struct {
	Autotype            bool   `toml:"autotype"`
	Language            string `toml:"language"`
	Base                string `toml:"base"`
	Vocab               string `toml:"vocab"`
	Context             string `toml:"context"`
	GraphName           string `toml:"graph-name"`
	FrontmatterMetadata bool   `toml:"frontmatter-metadata"`
	ImageType           string `toml:"image-type"`
	QuoteType           string `toml:"quote-type"`
	Strict              bool   `toml:"strict"`
}

// SetConfigPath overrides the configuration file location and forces the
// next CurrentConfig call to reload.
func SetConfigPath(path string) {
	configPath = path
	configOnce.Reset()
}

// CurrentConfig returns the configuration, reading it on first use.
func CurrentConfig() *Config {
	configOnce.Do(func() {
		config, err := ReadConfig(configPath)
		if err != nil {
			CurrentLogger().Fatalf("Unable to read configuration: %v", err)
		}
		configSingleton = config
	})
	return configSingleton
}

// ReadConfig reads a configuration file, falling back on defaults when the
// file does not exist.
func ReadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(content, config); err != nil {
		return nil, fmt.Errorf("invalid configuration file %q: %w", path, err)
	}
	return config, nil
}

// DefaultConfig returns the configuration used in absence of a file.
func DefaultConfig() *Config {
	return &Config{
		Document: ConfigDocument{
			Autotype:  true,
			Context:   DefaultContext,
			ImageType: DefaultImageType,
			QuoteType: DefaultQuoteType,
		},
	}
}
