package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type PaymentConfig struct {
	Env        string `yaml:"env" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	PaymentDB  `yaml:"payment_db"`
	App        `yaml:"app"`
	Vault      `yaml:"vault"`
	Kafka      `yaml:"kafka"`
	LogConfig  `yaml:"log_config"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8084"`
}

type PaymentDB struct {
	Dsn            string `yaml:"dsn" env:"PAYMENT_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path"`
}

type App struct {
	// AppURL is the storefront base used for client-facing redirects
	// after a callback (order-success / checkout pages).
	AppURL string `yaml:"app_url"`
	// PublicURL is this service's externally reachable base, used to
	// build the callback URLs handed to gateways at init time.
	PublicURL string `yaml:"public_url"`
	// AdminAPIToken guards the credential encryption endpoint.
	AdminAPIToken string `yaml:"admin_api_token" env:"ADMIN_API_TOKEN"`
	// GatewayTimeoutSec bounds every provider round-trip.
	GatewayTimeoutSec int `yaml:"gateway_timeout_sec" env-default:"20"`
}

type Vault struct {
	MasterKey string `yaml:"master_key" env:"CREDENTIALS_ENCRYPTION_KEY"`
	// Mode is "permissive" (encrypt passes plaintext through when no
	// master key is configured) or "strict" (missing key is an error).
	Mode string `yaml:"mode" env-default:"permissive"`
}

type Kafka struct {
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	Topic   string `yaml:"topic" env-default:"payment-events"`
	Enabled bool   `yaml:"enabled" env-default:"false"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
}

func MustLoad() *PaymentConfig {

	// Processing env config variable and file
	configPath := os.Getenv("PAYMENT_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("PAYMENT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg PaymentConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
