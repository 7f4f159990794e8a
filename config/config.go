package config

import (
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env                string            `mapstructure:"env"`
	LogLevel           string            `mapstructure:"log_level"`
	LogType            string            `mapstructure:"log_type"`
	ServiceName        string            `mapstructure:"service_name"`
	Port               string            `mapstructure:"port"`
	Version            string            `mapstructure:"version"`
	CorsMaxAgeHours    time.Duration     `mapstructure:"cors_max_age_hours"`
	ApiUrlPath         string            `mapstructure:"api_url_path"`
	MaxBodySize        int64             `mapstructure:"max_body_size"`
	CrawlerSettings    *CrawlerConfig    `mapstructure:"crawler"`
	QaSettings         *QaConfig         `mapstructure:"qa_generator"`
	ConverterSettings  *ConverterConfig  `mapstructure:"converter"`
	CacheSettings      *CacheConfig      `mapstructure:"cache"`
	DbSettings         *DatabaseConfig   `mapstructure:"database"`
	HttpClientSettings *HttpClientConfig `mapstructure:"http_client"`
	TelemetrySettings  *TelemetryConfig  `mapstructure:"telemetry"`
}

// CrawlerConfig bounds a single crawl. MaxPages includes the seed page.
// RateLimit is enforced globally for the process, not per domain.
type CrawlerConfig struct {
	MaxPages              int           `mapstructure:"max_pages" json:"max_pages"`
	RateLimit             float64       `mapstructure:"rate_limit" json:"rate_limit"`
	RespectRobotsTxt      bool          `mapstructure:"respect_robots_txt" json:"respect_robots_txt"`
	ScrapeMultiplePages   bool          `mapstructure:"scrape_multiple_pages" json:"scrape_multiple_pages"`
	UserAgent             string        `mapstructure:"user_agent" json:"-"`
	FetchTimeout          time.Duration `mapstructure:"fetch_timeout" json:"-"`
	RobotsFetchTimeout    time.Duration `mapstructure:"robots_fetch_timeout" json:"-"`
	OnRobotsLookupFailure string        `mapstructure:"on_robots_lookup_failure" json:"-"` // allow or deny
}

type QaConfig struct {
	ApiUrl             string        `mapstructure:"api_url"`
	ApiKey             string        `mapstructure:"api_key"`
	Model              string        `mapstructure:"model"`
	Temperature        float64       `mapstructure:"temperature"`
	MaxTokens          int           `mapstructure:"max_tokens"`
	ChunkSize          int           `mapstructure:"chunk_size"`
	QuestionsPerChunk  int           `mapstructure:"questions_per_chunk"`
	MinConfidenceScore float64       `mapstructure:"min_confidence_score"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout"`
}

type ConverterConfig struct {
	IncludeTitle      bool `mapstructure:"include_title"`
	IncludeHeadings   bool `mapstructure:"include_headings"`
	IncludeCodeBlocks bool `mapstructure:"include_code_blocks"`
}

type CacheConfig struct {
	Type            string        `mapstructure:"type"` // memory or memcached
	Servers         []string      `mapstructure:"servers"`
	TtlForRobotsTxt time.Duration `mapstructure:"ttl_for_robots_txt"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
}

type HttpClientConfig struct {
	RequestTimeout            time.Duration `mapstructure:"request_timeout"`
	MaxIdleConnections        int           `mapstructure:"max_idle_connections"`
	MaxIdleConnectionsPerHost int           `mapstructure:"max_idle_connections_per_host"`
	MaxConnectionsPerHost     int           `mapstructure:"max_connections_per_host"`
	IdleConnectionTimeout     time.Duration `mapstructure:"idle_connection_timeout"`
	TlsHandshakeTimeout       time.Duration `mapstructure:"tls_handshake_timeout"`
	DialTimeout               time.Duration `mapstructure:"dial_timeout"`
	DialKeepAlive             time.Duration `mapstructure:"dial_keep_alive"`
	TlsInsecureSkipVerify     bool          `mapstructure:"tls_insecure_skip_verify"`
}

type TelemetryConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	CollectorUrl string `mapstructure:"collector_url"`
}

func MustLoad() *Config {
	viper.AddConfigPath(path.Join("."))
	viper.SetConfigName("config")
	viper.AutomaticEnv()
	_ = viper.BindEnv("qa_generator.api_key", "OPENAI_API_KEY")

	err := viper.ReadInConfig()
	if err != nil {
		slog.Error("can't initialize config file.", slog.String("err", err.Error()))
		os.Exit(1)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		slog.Error("error unmarshalling viper config.", slog.String("err", err.Error()))
		os.Exit(1)
	}

	return &cfg
}
