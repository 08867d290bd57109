package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "delivery",
}

var defaultMatching = Matching{
	DefaultRadiusKm:  10,
	MinRadiusKm:      1,
	MaxRadiusKm:      50,
	OperationTimeout: 3 * time.Second,
}

var defaultRouting = Routing{
	CallTimeout: 2 * time.Second,
	MaxAttempts: 2,
	BaseDelay:   100 * time.Millisecond,
	MaxDelay:    200 * time.Millisecond,
	CacheTTL:    2 * time.Minute,
}

var defaultKafka = Kafka{
	ActionsTopic: "order-actions",
	StatusTopic:  "delivery-status",
	GroupID:      "delivery-matching",
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       5,
	Burst:      10,
	TTL:        10 * time.Minute,
	MaxBuckets: 100000,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultMatching returns the default matching settings.
func DefaultMatching() Matching {
	return defaultMatching
}

// DefaultRouting returns the default routing settings.
func DefaultRouting() Routing {
	return defaultRouting
}

// DefaultKafka returns the default Kafka settings.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
