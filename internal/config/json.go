package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Env           string   `json:"env"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		OTPTTL        Duration `json:"otp_ttl"`
		BcryptCost    int      `json:"bcrypt_cost"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		ReadTimeout    Duration `json:"read_timeout"`
		WriteTimeout   Duration `json:"write_timeout"`
		IdleTimeout    Duration `json:"idle_timeout"`
	} `json:"server,omitempty"`

	Notifier struct {
		SMTP struct {
			Host     string `json:"host"`
			Port     int    `json:"port"`
			Username string `json:"username"`
			Password string `json:"password"`
			From     string `json:"from"`
		} `json:"smtp,omitempty"`
		WebhookURL   string   `json:"webhook_url"`
		WebhookToken string   `json:"webhook_token"`
		SendTimeout  Duration `json:"send_timeout"`
	} `json:"notifier,omitempty"`

	Workers struct {
		OTPSweepInterval Duration `json:"otp_sweep_interval"`
	} `json:"workers,omitempty"`
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
		App: App{
			Env:           jsonCfg.App.Env,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			OTPTTL:        time.Duration(jsonCfg.App.OTPTTL),
			BcryptCost:    jsonCfg.App.BcryptCost,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			ReadTimeout:    time.Duration(jsonCfg.Server.ReadTimeout),
			WriteTimeout:   time.Duration(jsonCfg.Server.WriteTimeout),
			IdleTimeout:    time.Duration(jsonCfg.Server.IdleTimeout),
		},
		Notifier: Notifier{
			SMTP: SMTP{
				Host:     jsonCfg.Notifier.SMTP.Host,
				Port:     jsonCfg.Notifier.SMTP.Port,
				Username: jsonCfg.Notifier.SMTP.Username,
				Password: jsonCfg.Notifier.SMTP.Password,
				From:     jsonCfg.Notifier.SMTP.From,
			},
			WebhookURL:   jsonCfg.Notifier.WebhookURL,
			WebhookToken: jsonCfg.Notifier.WebhookToken,
			SendTimeout:  time.Duration(jsonCfg.Notifier.SendTimeout),
		},
		Workers: Workers{
			OTPSweepInterval: time.Duration(jsonCfg.Workers.OTPSweepInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
