package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	OptimizerURL     string
	OptimizerTimeout time.Duration

	KafkaBrokers          []string
	KafkaOrderEventsTopic string

	OTLPEndpoint string
	OTLPInsecure bool

	RecommendationSchedule string
	QueueMetricsSchedule   string

	SwaggerEnabled  bool
	ShutdownTimeout time.Duration
}

var defaults = map[string]any{
	"APP_ENV":                     "prod",
	"HTTP_PORT":                   "8080",
	"DB_HOST":                     "localhost",
	"DB_PORT":                     "5432",
	"DB_USER":                     "postgres",
	"DB_PASSWORD":                 "",
	"DB_NAME":                     "warehouse",
	"DB_SSLMODE":                  "disable",
	"OPTIMIZER_URL":               "",
	"OPTIMIZER_TIMEOUT":           "3s",
	"KAFKA_BROKERS":               "",
	"KAFKA_ORDER_EVENTS_TOPIC":    "warehouse.order-events",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "",
	"OTEL_EXPORTER_OTLP_INSECURE": true,
	"JOB_RECOMMENDATION_SCHEDULE": "*/30 * * * * *",
	"JOB_QUEUE_METRICS_SCHEDULE":  "*/15 * * * * *",
	"SWAGGER_ENABLED":             true,
	"SHUTDOWN_TIMEOUT":            "10s",
}

// LoadConfig reads the configuration from the environment. Variables from the given
// .env files are loaded first without overriding ones already set; missing files are
// skipped.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	cfg := Config{
		Env:                    v.GetString("APP_ENV"),
		HTTPPort:               v.GetString("HTTP_PORT"),
		DBHost:                 v.GetString("DB_HOST"),
		DBPort:                 v.GetString("DB_PORT"),
		DBUser:                 v.GetString("DB_USER"),
		DBPassword:             v.GetString("DB_PASSWORD"),
		DBName:                 v.GetString("DB_NAME"),
		DBSslMode:              v.GetString("DB_SSLMODE"),
		OptimizerURL:           v.GetString("OPTIMIZER_URL"),
		OptimizerTimeout:       v.GetDuration("OPTIMIZER_TIMEOUT"),
		KafkaBrokers:           splitList(v.GetString("KAFKA_BROKERS")),
		KafkaOrderEventsTopic:  v.GetString("KAFKA_ORDER_EVENTS_TOPIC"),
		OTLPEndpoint:           v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTLPInsecure:           v.GetBool("OTEL_EXPORTER_OTLP_INSECURE"),
		RecommendationSchedule: v.GetString("JOB_RECOMMENDATION_SCHEDULE"),
		QueueMetricsSchedule:   v.GetString("JOB_QUEUE_METRICS_SCHEDULE"),
		SwaggerEnabled:         v.GetBool("SWAGGER_ENABLED"),
		ShutdownTimeout:        v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.HTTPPort == "" {
		errs = append(errs, errors.New("HTTP_PORT is required"))
	}
	if c.DBHost == "" || c.DBName == "" {
		errs = append(errs, errors.New("DB_HOST and DB_NAME are required"))
	}
	if c.OptimizerTimeout <= 0 {
		errs = append(errs, errors.New("OPTIMIZER_TIMEOUT must be positive"))
	}
	if len(c.KafkaBrokers) > 0 && c.KafkaOrderEventsTopic == "" {
		errs = append(errs, errors.New("KAFKA_ORDER_EVENTS_TOPIC is required when KAFKA_BROKERS is set"))
	}
	return errors.Join(errs...)
}

// DSN is the libpq connection string, shared by GORM and the migrator.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
