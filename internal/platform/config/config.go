package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ストレージドライバの選択肢です。memory がリファレンス挙動で、
// 状態はプロセス終了とともに失われます。
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	Session  SessionConfig  `yaml:"session"`
	Language string         `yaml:"language"`
}

// StorageConfig はレコードストアのバックエンド選択です。
type StorageConfig struct {
	Driver string `yaml:"driver"`
	// Path は sqlite ドライバのデータベースファイルです。
	Path string `yaml:"path"`
	// Seed が真のとき、空のストアにデモデータを読み込みます。
	Seed bool `yaml:"seed"`
}

// SessionConfig はログインセッションの保存先です。
type SessionConfig struct {
	Path string `yaml:"path"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。postgres ドライバを
// 選択した場合のみ必須です。
type DatabaseConfig struct {
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"ssl_mode"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
}

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultPath は設定ファイルの既定の場所です。
const DefaultPath = "assets/local.yaml"

// Resolve は各コマンド共通の設定ファイル探索規則です。explicit、CONFIG_PATH
// 環境変数、既定パスの順に採用します。既定パスにファイルがない場合のみ
// ファイルなしのデフォルト設定へフォールバックし、明示されたパスが
// 読めない場合はエラーを返します。
func Resolve(explicit string) (*Config, error) {
	path := explicit
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = DefaultPath
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return Default(), nil
		}
	}
	return Load(path)
}

// Default はファイルなしで動くデフォルト設定を返します。メモリドライバに
// デモデータを読み込んだ状態で起動します。
func Default() *Config {
	cfg := &Config{}
	cfg.Storage.Seed = true
	_ = cfg.validateAndNormalize()
	return cfg
}

func (c *Config) validateAndNormalize() error {
	switch c.Storage.Driver {
	case "":
		c.Storage.Driver = DriverMemory
	case DriverMemory, DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("config: storage.driver must be one of %s, %s, %s", DriverMemory, DriverSQLite, DriverPostgres)
	}

	if c.Storage.Driver == DriverSQLite && c.Storage.Path == "" {
		c.Storage.Path = "hr-records.db"
	}

	if c.Session.Path == "" {
		c.Session.Path = ".hrctl-session.yaml"
	}

	if c.Language == "" {
		c.Language = "en"
	}

	if c.Storage.Driver == DriverPostgres {
		if err := c.Database.validateAndNormalize(); err != nil {
			return err
		}
	}

	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s", d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}
