package configuration

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"pricewatch/internal/logger"
	"strings"
	"time"
)

type Config struct {
	ListenAddress   string
	BackendAPIURL   string
	SessionFile     string
	DisplayTimezone *time.Location
	RequestTimeout  time.Duration
	CheckDelay      time.Duration
	CheckAllDelay   time.Duration
	LogLevel        logger.Level
	LogToFile       bool
}

type tomlConfig struct {
	ListenAddress   string `toml:"listen_address"`
	BackendAPIURL   string `toml:"backend_api_url"`
	SessionFile     string `toml:"session_file"`
	DisplayTimezone string `toml:"display_timezone"`
	RequestTimeout  string `toml:"request_timeout"`
	CheckDelay      string `toml:"check_delay"`
	CheckAllDelay   string `toml:"check_all_delay"`
	LogLevel        string `toml:"log_level"`
	LogToFile       bool   `toml:"log_to_file"`
}

func GetConfig(path string) (*Config, error) {
	var tc tomlConfig
	_, err := toml.DecodeFile(path, &tc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode toml file with path: %s", path)
	}

	if tc.ListenAddress == "" {
		tc.ListenAddress = "localhost:8989"
	}

	if tc.BackendAPIURL == "" {
		tc.BackendAPIURL = "http://localhost:8080/api"
	}
	tc.BackendAPIURL = strings.TrimSuffix(tc.BackendAPIURL, "/")

	if tc.SessionFile == "" {
		tc.SessionFile = "session.json"
	}

	displayTimezone := time.Local
	if tc.DisplayTimezone != "" {
		displayTimezone, err = time.LoadLocation(tc.DisplayTimezone)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load display_timezone: %s", tc.DisplayTimezone)
		}
	}

	requestTimeout := 15 * time.Second
	if tc.RequestTimeout != "" {
		requestTimeout, err = time.ParseDuration(tc.RequestTimeout)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse request_timeout: %s", tc.RequestTimeout)
		}
		if requestTimeout <= 0 {
			return nil, errors.Errorf("request_timeout must be positive, got: %v", requestTimeout)
		}
	}

	checkDelay := 2 * time.Second
	if tc.CheckDelay != "" {
		checkDelay, err = time.ParseDuration(tc.CheckDelay)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse check_delay: %s", tc.CheckDelay)
		}
	}

	checkAllDelay := 3 * time.Second
	if tc.CheckAllDelay != "" {
		checkAllDelay, err = time.ParseDuration(tc.CheckAllDelay)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse check_all_delay: %s", tc.CheckAllDelay)
		}
	}

	if tc.LogLevel == "" {
		tc.LogLevel = "INFO"
	}
	logLevel, err := logger.ParseLevel(tc.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse log_level: %s", tc.LogLevel)
	}

	return &Config{
		ListenAddress:   tc.ListenAddress,
		BackendAPIURL:   tc.BackendAPIURL,
		SessionFile:     tc.SessionFile,
		DisplayTimezone: displayTimezone,
		RequestTimeout:  requestTimeout,
		CheckDelay:      checkDelay,
		CheckAllDelay:   checkAllDelay,
		LogLevel:        logLevel,
		LogToFile:       tc.LogToFile,
	}, nil
}
