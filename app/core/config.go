package core

import (
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/moodlingo/moodlingo/app/core/srv"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}

	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}

	return *conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr     string   `toml:"addr"`
	Log      Log      `toml:"log"`
	Postgres PGConfig `toml:"postgres"`

	AI srv.AIConfig `toml:"ai"`

	Security Security `toml:"security"`

	Retention RetentionConfig `toml:"retention"`
}

type Security struct {
	// SignKey 用于签发/校验会话 JWT
	SignKey string `toml:"sign_key"`
}

type RetentionConfig struct {
	// SnapshotDays 情绪快照的保留天数，0 表示使用默认值
	SnapshotDays int `toml:"snapshot_days"`
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("MOODLINGO_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Postgres.FromENV()
	c.Security.SignKey = os.Getenv("MOODLINGO_SECURITY_SIGN_KEY")
	c.AI.Driver = os.Getenv("MOODLINGO_AI_DRIVER")
	c.AI.Gemini.Token = os.Getenv("GEMINI_API_KEY")
	c.AI.Gemini.Model = os.Getenv("GEMINI_MODEL")
	c.AI.OpenAI.Token = os.Getenv("OPENAI_API_KEY")
	c.AI.OpenAI.Endpoint = os.Getenv("OPENAI_API_ENDPOINT")
	c.AI.OpenAI.Model = os.Getenv("OPENAI_MODEL")
}

type PGConfig struct {
	DSN string `toml:"dsn"`
}

func (m *PGConfig) FromENV() {
	m.DSN = os.Getenv("MOODLINGO_POSTGRESQL_DSN")
}

func (c PGConfig) FormatDSN() string {
	return c.DSN
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("MOODLINGO_LOG_LEVEL")
	l.Path = os.Getenv("MOODLINGO_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
