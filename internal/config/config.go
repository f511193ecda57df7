package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type PaymentConfig struct {
	Env        string `yaml:"env"`
	HTTPServer `yaml:"http_server"`
	PaymentDB  `yaml:"payment_db"`
	LogConfig  `yaml:"log_config"`
	DPOGateway `yaml:"dpo_gateway"`
	Statuses   `yaml:"order_statuses"`
	Kafka      `yaml:"kafka"`
	Storefront `yaml:"storefront"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type PaymentDB struct {
	Dsn           string `yaml:"dsn" env:"PAYMENT_DB_DSN"`
	MigrationPath string `yaml:"migration_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	DebugMode bool   `yaml:"debug_mode"`
	DebugFile string `yaml:"debug_file"`
}

type DPOGateway struct {
	Enabled        bool          `yaml:"enabled"`
	APIURL         string        `yaml:"api_url"`
	PayURL         string        `yaml:"pay_url"`
	CompanyToken   string        `yaml:"company_token" env:"DPO_COMPANY_TOKEN"`
	ServiceType    string        `yaml:"service_type" env:"DPO_SERVICE_TYPE"`
	RedirectURL    string        `yaml:"redirect_url"`
	RequestTimeout time.Duration `yaml:"request_timeout" env-default:"15s"`
	VerifyAttempts int           `yaml:"verify_attempts" env-default:"10"`
	VerifyDelay    time.Duration `yaml:"verify_delay" env-default:"2s"`
	VerifyBound    time.Duration `yaml:"verify_bound" env-default:"30s"`
}

type Statuses struct {
	Processing int `yaml:"processing"`
	Paid       int `yaml:"paid"`
	Failed     int `yaml:"failed"`
}

type Storefront struct {
	CheckoutSuccessURL string `yaml:"checkout_success_url"`
	CheckoutPaymentURL string `yaml:"checkout_payment_url"`
}

type Kafka struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"payment-events"`
}

// Active reports whether the module may talk to the gateway at all.
// Missing merchant credentials leave the module inert.
func (g *DPOGateway) Active() bool {
	return g.Enabled && g.CompanyToken != "" && g.ServiceType != ""
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
