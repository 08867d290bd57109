package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores PostgreSQL connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a pgx connection string.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     d.Host + ":" + d.Port,
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Matching stores candidate search settings.
type Matching struct {
	DefaultRadiusKm  float64
	MinRadiusKm      float64
	MaxRadiusKm      float64
	OperationTimeout time.Duration
}

// Routing stores travel-time collaborator settings. An empty APIKey disables enrichment.
type Routing struct {
	APIKey      string
	CallTimeout time.Duration
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	CacheTTL    time.Duration
}

// Redis stores the route cache connection. An empty Addr disables caching.
type Redis struct {
	Addr string
}

// Kafka stores broker settings. No brokers means events are not published or consumed.
type Kafka struct {
	Brokers      []string
	ActionsTopic string
	StatusTopic  string
	GroupID      string
}

// RateLimit stores per-driver request limiting settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Config stores service settings.
type Config struct {
	Port      int
	DB        DB
	Matching  Matching
	Routing   Routing
	Redis     Redis
	Kafka     Kafka
	RateLimit RateLimit
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      DefaultPort(),
		DB:        DefaultDB(),
		Matching:  DefaultMatching(),
		Routing:   DefaultRouting(),
		Kafka:     DefaultKafka(),
		RateLimit: DefaultRateLimit(),
	}

	r := envReader{}
	cfg.Port = r.getInt("PORT", cfg.Port)

	cfg.DB.Host = r.getString("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = r.getString("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = r.getString("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = r.getString("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = r.getString("POSTGRES_DB", cfg.DB.Name)

	cfg.Matching.DefaultRadiusKm = r.getFloat("MATCHING_DEFAULT_RADIUS_KM", cfg.Matching.DefaultRadiusKm)
	cfg.Matching.MinRadiusKm = r.getFloat("MATCHING_MIN_RADIUS_KM", cfg.Matching.MinRadiusKm)
	cfg.Matching.MaxRadiusKm = r.getFloat("MATCHING_MAX_RADIUS_KM", cfg.Matching.MaxRadiusKm)
	cfg.Matching.OperationTimeout = r.getDuration("MATCHING_OPERATION_TIMEOUT", cfg.Matching.OperationTimeout)

	cfg.Routing.APIKey = r.getString("ROUTING_API_KEY", cfg.Routing.APIKey)
	cfg.Routing.CallTimeout = r.getDuration("ROUTING_CALL_TIMEOUT", cfg.Routing.CallTimeout)
	cfg.Routing.MaxAttempts = r.getInt("ROUTING_MAX_ATTEMPTS", cfg.Routing.MaxAttempts)
	cfg.Routing.BaseDelay = r.getDuration("ROUTING_BASE_DELAY", cfg.Routing.BaseDelay)
	cfg.Routing.MaxDelay = r.getDuration("ROUTING_MAX_DELAY", cfg.Routing.MaxDelay)
	cfg.Routing.CacheTTL = r.getDuration("ROUTING_CACHE_TTL", cfg.Routing.CacheTTL)

	cfg.Redis.Addr = r.getString("REDIS_ADDR", cfg.Redis.Addr)

	cfg.Kafka.Brokers = r.getList("KAFKA_BROKERS", cfg.Kafka.Brokers)
	cfg.Kafka.ActionsTopic = r.getString("KAFKA_ACTIONS_TOPIC", cfg.Kafka.ActionsTopic)
	cfg.Kafka.StatusTopic = r.getString("KAFKA_STATUS_TOPIC", cfg.Kafka.StatusTopic)
	cfg.Kafka.GroupID = r.getString("KAFKA_GROUP_ID", cfg.Kafka.GroupID)

	cfg.RateLimit.Enabled = r.getBool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled)
	cfg.RateLimit.Rate = r.getFloat("RATE_LIMIT_RPS", cfg.RateLimit.Rate)
	cfg.RateLimit.Burst = r.getInt("RATE_LIMIT_BURST", cfg.RateLimit.Burst)
	cfg.RateLimit.TTL = r.getDuration("RATE_LIMIT_TTL", cfg.RateLimit.TTL)
	cfg.RateLimit.MaxBuckets = r.getInt("RATE_LIMIT_MAX_BUCKETS", cfg.RateLimit.MaxBuckets)

	if r.err != nil {
		return nil, r.err
	}

	fs := pflag.NewFlagSet("delivery-matching", pflag.ContinueOnError)
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.Float64Var(&cfg.Matching.DefaultRadiusKm, "default-radius", cfg.Matching.DefaultRadiusKm, "default search radius in km")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if _, err := strconv.Atoi(c.DB.Port); err != nil {
		return fmt.Errorf("invalid postgres port %q: %w", c.DB.Port, err)
	}
	m := c.Matching
	if m.MinRadiusKm <= 0 || m.MaxRadiusKm < m.MinRadiusKm {
		return fmt.Errorf("invalid radius bounds: [%v, %v]", m.MinRadiusKm, m.MaxRadiusKm)
	}
	if m.DefaultRadiusKm < m.MinRadiusKm || m.DefaultRadiusKm > m.MaxRadiusKm {
		return fmt.Errorf("default radius %v outside [%v, %v]", m.DefaultRadiusKm, m.MinRadiusKm, m.MaxRadiusKm)
	}
	if m.OperationTimeout <= 0 {
		return fmt.Errorf("invalid operation timeout: %v", m.OperationTimeout)
	}
	if c.Routing.MaxAttempts < 1 {
		return fmt.Errorf("invalid routing max attempts: %d", c.Routing.MaxAttempts)
	}
	return nil
}

// envReader reads typed environment variables and keeps the first parse error.
type envReader struct {
	err error
}

func (r *envReader) lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

func (r *envReader) fail(key, v string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
}

func (r *envReader) getString(key, def string) string {
	if v, ok := r.lookup(key); ok {
		return v
	}
	return def
}

func (r *envReader) getInt(key string, def int) int {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return n
}

func (r *envReader) getFloat(key string, def float64) float64 {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return n
}

func (r *envReader) getDuration(key string, def time.Duration) time.Duration {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return d
}

func (r *envReader) getBool(key string, def bool) bool {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return b
}

func (r *envReader) getList(key string, def []string) []string {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
