package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	keyInterviewer   = "interviewer"
	keyGeminiAPIKeys = "gemini_api_keys"
)

var ErrInterviewerNotSet = errors.New("interviewer not set: set INTERVIEWER='Interviewer Name' in .env")

// LoadEnv overlays values from the dotenv file and the process environment.
// Environment variables win over the file, the file wins over YAML.
func (c *Config) LoadEnv() error {
	v := viper.New()
	v.SetDefault(keyInterviewer, c.Interviewer)
	v.SetDefault(keyGeminiAPIKeys, "")

	if c.EnvFile != "" {
		if _, err := os.Stat(c.EnvFile); err == nil {
			v.SetConfigFile(c.EnvFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("read env file %s: %w", c.EnvFile, err)
			}
		}
	}

	v.AutomaticEnv()

	c.Interviewer = strings.TrimSpace(v.GetString(keyInterviewer))
	c.Gemini.APIKeys = splitKeys(v.GetString(keyGeminiAPIKeys))
	return nil
}

// RequireInterviewer returns the configured interviewer or ErrInterviewerNotSet.
func (c *Config) RequireInterviewer() (string, error) {
	if c.Interviewer == "" {
		return "", ErrInterviewerNotSet
	}
	return c.Interviewer, nil
}

func splitKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
