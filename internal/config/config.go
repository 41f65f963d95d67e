package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/ghodss/yaml"
	validator "gopkg.in/go-playground/validator.v9"

	"github.com/nativebridge/portal-go/internal/logger"
)

const (
	// DefaultBaseURL is the hosted portal API.
	DefaultBaseURL = "https://nativebridgeproject.fly.dev"

	// BaseURLEnv overrides api.base_url when set.
	BaseURLEnv = "PORTAL_API_BASE"

	defaultLogLevel = "warn"
)

type PortalConfig struct {
	API      APIConfig `json:"api"`
	LogLevel string    `json:"log_level" validate:"omitempty,oneof=panic fatal error warn warning info debug trace"`
}

type APIConfig struct {
	BaseURL string `json:"base_url" validate:"required,url"` // https://nativebridgeproject.fly.dev
	// TimeoutSeconds of zero leaves requests without a client-side deadline.
	TimeoutSeconds int `json:"timeout_seconds" validate:"min=0"`
}

// Timeout returns the configured request timeout, zero meaning none.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Default returns the configuration used when no file is found.
func Default() PortalConfig {
	return PortalConfig{
		API:      APIConfig{BaseURL: DefaultBaseURL},
		LogLevel: defaultLogLevel,
	}
}

// UserConfigPath returns ~/.portal/config.yml.
func UserConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".portal", "config.yml"), nil
}

func searchPaths() []string {
	paths := []string{}
	if userPath, err := UserConfigPath(); err == nil {
		paths = append(paths, userPath)
	}
	return append(paths, "/etc/portal/config.yml")
}

// LoadConfig loads the portal config. An explicit path must exist; otherwise
// the predefined paths are tried and the defaults apply when none is present.
// PORTAL_API_BASE, when set, wins over the file.
func LoadConfig(path string) (config PortalConfig, err error) {
	config = Default()

	var yamlFile []byte
	if path != "" {
		yamlFile, err = ioutil.ReadFile(path)
		if err != nil {
			return
		}
	} else {
		for _, candidate := range searchPaths() {
			yamlFile, err = ioutil.ReadFile(candidate)
			if err == nil {
				logger.Logger.Debugln("[LoadConfig] load config from:", candidate)
				break
			}
		}
		err = nil
	}

	if len(yamlFile) > 0 {
		err = yaml.Unmarshal(yamlFile, &config)
		if err != nil {
			return
		}
	}

	if base := os.Getenv(BaseURLEnv); base != "" {
		config.API.BaseURL = base
	}

	err = Validate(config)
	return
}

// Validate checks the struct tags of config.
func Validate(config PortalConfig) error {
	validate := validator.New()
	return validate.Struct(config)
}

// Save validates config and writes it to path as YAML, creating parent dirs.
func Save(config PortalConfig, path string) error {
	if err := Validate(config); err != nil {
		return err
	}
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return ioutil.WriteFile(path, data, 0644)
}
