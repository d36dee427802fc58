package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App struct {
		Name        string `koanf:"name"`
		HTTPAddr    string `koanf:"http_addr"`
		LogFile     string `koanf:"log_file"`
		AllowOrigin string `koanf:"allow_origin"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout  time.Duration `koanf:"read_timeout"`
		WriteTimeout time.Duration `koanf:"write_timeout"`
		IdleTimeout  time.Duration `koanf:"idle_timeout"`
	} `koanf:"http"`

	Oracle struct {
		BaseURL string        `koanf:"base_url"`
		APIKey  string        `koanf:"api_key"`
		Model   string        `koanf:"model"`
		Timeout time.Duration `koanf:"timeout"`
	} `koanf:"oracle"`

	Session struct {
		Window int           `koanf:"window"` // turns replayed to the oracle
		TTL    time.Duration `koanf:"ttl"`    // redis transcript expiry
	} `koanf:"session"`

	Notify struct {
		OwnerPhone string        `koanf:"owner_phone"` // update notices go here
		Timeout    time.Duration `koanf:"timeout"`
	} `koanf:"notify"`

	Redis struct {
		Addr     string `koanf:"addr"` // empty disables redis
		Password string `koanf:"password"`
	} `koanf:"redis"`

	Idempotency struct {
		TTL time.Duration `koanf:"ttl"`
	} `koanf:"idempotency"`

	Rabbit struct {
		URL string `koanf:"url"` // empty falls back to the log notifier
	} `koanf:"rabbitmq"`

	Kafka struct {
		Brokers       []string `koanf:"brokers"` // empty disables receipts
		ReceiptsTopic string   `koanf:"receipts_topic"`
		GroupID       string   `koanf:"group_id"`
	} `koanf:"kafka"`
}

func Load(pathDir, envName string) (Config, error) {
	k := koanf.New(".")
	// 1) base
	if err := k.Load(file.Provider(fmt.Sprintf("%s/base.yaml", pathDir)), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base: %w", err)
	}

	// 2) env override (dev/staging/prod). Optional: allow missing for local runs.
	_ = k.Load(file.Provider(fmt.Sprintf("%s/%s.yaml", pathDir, envName)), yaml.Parser())

	// 3) environment variables override (prefix KHAREDO_, nested with __)
	// e.g. KHAREDO_ORACLE__API_KEY, KHAREDO_REDIS__PASSWORD
	if err := k.Load(env.Provider("KHAREDO_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "KHAREDO_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	if c.Oracle.BaseURL == "" {
		return fmt.Errorf("oracle.base_url required")
	}
	if c.Oracle.Model == "" {
		return fmt.Errorf("oracle.model required")
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.ReceiptsTopic == "" {
		return fmt.Errorf("kafka.receipts_topic required when brokers are set")
	}
	return nil
}
