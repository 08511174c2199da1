// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"
	"time"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr                  string   `env:"BIND_ADDR"                      flag:"bind-addr"                      flagDesc:"Bind address"`
	MongoDBURL                string   `env:"MONGODB_URL"                    flag:"mongodb-url"                    flagDesc:"MongoDB server URL"`
	Database                  string   `env:"MONGODB_DATABASE"               flag:"mongodb-database"               flagDesc:"MongoDB database for data"`
	InvoicesCollection        string   `env:"MONGODB_INVOICES_COLLECTION"    flag:"mongodb-invoices-collection"    flagDesc:"MongoDB collection for invoices"`
	AttemptsCollection        string   `env:"MONGODB_ATTEMPTS_COLLECTION"    flag:"mongodb-attempts-collection"    flagDesc:"MongoDB collection for payment attempts"`
	DisputesCollection        string   `env:"MONGODB_DISPUTES_COLLECTION"    flag:"mongodb-disputes-collection"    flagDesc:"MongoDB collection for payment disputes"`
	BrokerAddr                []string `env:"KAFKA_BROKER_ADDR"              flag:"broker-addr"                    flagDesc:"Kafka broker address"`
	SchemaRegistryURL         string   `env:"SCHEMA_REGISTRY_URL"            flag:"schema-registry-url"            flagDesc:"Schema registry url"`
	KafkaEnabled              bool     `env:"KAFKA_ENABLED"                  flag:"kafka-enabled"                  flagDesc:"Produce kafka messages on invoice and dispute changes"`
	GatewayURL                string   `env:"GATEWAY_URL"                    flag:"gateway-url"                    flagDesc:"Base URL of the payment gateway"`
	GatewayBearerToken        string   `env:"GATEWAY_BEARER_TOKEN"           flag:"gateway-bearer-token"           flagDesc:"Bearer Token used to authenticate API calls with the payment gateway"`
	PaymentsWebURL            string   `env:"PAYMENTS_WEB_URL"               flag:"payments-web-url"               flagDesc:"Base URL for the fees web frontend"`
	JWTSecret                 string   `env:"JWT_SECRET"                     flag:"jwt-secret"                     flagDesc:"HMAC secret used to verify bearer tokens"`
	StuckPaymentThresholdMins int      `env:"STUCK_PAYMENT_THRESHOLD_MINS"   flag:"stuck-payment-threshold-mins"   flagDesc:"Age in minutes after which a processing payment attempt is stuck"`
	StuckPaymentPollSeconds   int      `env:"STUCK_PAYMENT_POLL_SECONDS"     flag:"stuck-payment-poll-seconds"     flagDesc:"Interval in seconds between stuck payment checks, 0 disables the monitor"`
	GatewayReconcileEnabled   bool     `env:"GATEWAY_RECONCILE_ENABLED"      flag:"gateway-reconcile-enabled"      flagDesc:"Check stuck payment attempts against the gateway"`
	GatewayReconcileWorkers   int      `env:"GATEWAY_RECONCILE_WORKERS"      flag:"gateway-reconcile-workers"      flagDesc:"Maximum concurrent gateway status checks"`
	CollectionsDefaultDays    int      `env:"COLLECTIONS_DEFAULT_DAYS"       flag:"collections-default-days"       flagDesc:"Default number of days for the daily collections report"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		BindAddr:                  ":4095",
		Database:                  "fees",
		InvoicesCollection:        "invoices",
		AttemptsCollection:        "payment_attempts",
		DisputesCollection:        "disputes",
		StuckPaymentThresholdMins: 60,
		StuckPaymentPollSeconds:   60,
		GatewayReconcileWorkers:   4,
		CollectionsDefaultDays:    30,
	}
}

// StuckPaymentThreshold is the age after which a processing attempt counts as stuck.
func (c Config) StuckPaymentThreshold() time.Duration {
	return time.Duration(c.StuckPaymentThresholdMins) * time.Minute
}

// StuckPaymentPollInterval is the delay between monitor runs.
func (c Config) StuckPaymentPollInterval() time.Duration {
	return time.Duration(c.StuckPaymentPollSeconds) * time.Second
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
