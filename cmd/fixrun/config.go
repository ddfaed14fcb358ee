package main

import "io"
import "os"
import "fmt"

import "github.com/BurntSushi/toml"

import "github.com/tinne26/fixmath/fixlua"
import "github.com/tinne26/fixmath/internal/log"

// Settings for fixrun. Loaded from a TOML file with -config, and
// then overridden by any flags explicitly set.
type Config struct {
	LogLevel  string `toml:"log_level"`
	CacheSize int    `toml:"cache_size"`
	Lang      string `toml:"lang"`
	Dump      string `toml:"dump"`
	Steps     int    `toml:"steps"`
}

const defaultReportSteps = 1 << 16

func defaultConfig() Config {
	return Config{
		LogLevel: "info",
		CacheSize: fixlua.DefaultCacheSize,
		Lang: "en",
		Steps: defaultReportSteps,
	}
}

// Decodes TOML into config. Keys not present keep their current
// values, and unknown keys are reported on the logger.
func decodeConfig(r io.Reader, config *Config, logger *log.Logger) error {
	meta, err := toml.NewDecoder(r).Decode(config)
	if err != nil { return fmt.Errorf("decoding config: %w", err) }
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		logger.Infof("config: ignoring unknown keys %v", undecoded)
	}
	return config.validate()
}

func loadConfigFile(path string, config *Config, logger *log.Logger) error {
	file, err := os.Open(path)
	if err != nil { return err }
	defer file.Close()
	return decodeConfig(file, config, logger)
}

func (self *Config) validate() error {
	if _, err := log.ParseLevel(self.LogLevel); err != nil { return err }
	if self.CacheSize < 0 { return fmt.Errorf("cache_size must be >= 0, got %d", self.CacheSize) }
	if self.Steps <= 0 { return fmt.Errorf("steps must be > 0, got %d", self.Steps) }
	return nil
}
