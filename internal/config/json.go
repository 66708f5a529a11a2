package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig with JSON field names, so an
// operator-facing config file stays decoupled from the internal struct shape.
type StructuredJSONConfig struct {
	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Log struct {
		Path string `json:"path"`
	} `json:"log,omitempty"`
}

// Duration wraps time.Duration to accept human-readable JSON values such as
// "30s" or "1m".
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler for string and numeric forms.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	switch v := value.(type) {
	case float64:
		*d = Duration(time.Duration(v))
		return nil
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("error parsing duration %q: %w", v, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("invalid duration value: %v", value)
	}
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Log: Log{
			Path: jsonCfg.Log.Path,
		},
	}

	return cfg, nil
}
