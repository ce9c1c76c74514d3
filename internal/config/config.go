package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	JWTUserSecret string `env:"JWT_SECRET"`

	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	MinWithdrawal decimal.Decimal `env:"MIN_WITHDRAWAL"`
	MaxWithdrawal decimal.Decimal `env:"MAX_WITHDRAWAL"`
	WithdrawalFee decimal.Decimal `env:"WITHDRAWAL_FEE"`

	ReferralLevels []string `env:"REFERRAL_LEVELS" envSeparator:","`

	AccrualInterval time.Duration `env:"ACCRUAL_INTERVAL"`

	OpenAIAPIKey   string        `env:"OPENAI_API_KEY"`
	OpenAIModel    string        `env:"OPENAI_MODEL"`
	AdvisorTimeout time.Duration `env:"ADVISOR_TIMEOUT"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

func LoadConfig() (*Config, error) {
	// .env опционален, локальное удобство.
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	return mergeConfig(&envConfig, &flagsConfig), nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.JWTUserSecret, "s", "insecure-dev-secret", "JWT signing secret")
	flag.StringVar(&flagConfig.AdminUsername, "admin-user", "admin", "Admin username")
	flag.StringVar(&flagConfig.AdminPassword, "admin-pass", "admin123", "Admin password")
	flag.DurationVar(&flagConfig.AccrualInterval, "i", time.Hour, "Accrual processor interval")
	flag.DurationVar(&flagConfig.AdvisorTimeout, "advisor-timeout", 10*time.Second, "Advisor request timeout")
	flag.StringVar(&flagConfig.OpenAIModel, "advisor-model", "gpt-4o-mini", "Advisor LLM model")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := &Config{
		RunAddress:      defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		JWTUserSecret:   defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		AdminUsername:   defaultIfBlank(envConfig.AdminUsername, flagsConfig.AdminUsername),
		AdminPassword:   defaultIfBlank(envConfig.AdminPassword, flagsConfig.AdminPassword),
		MinWithdrawal:   envConfig.MinWithdrawal,
		MaxWithdrawal:   envConfig.MaxWithdrawal,
		WithdrawalFee:   envConfig.WithdrawalFee,
		ReferralLevels:  envConfig.ReferralLevels,
		AccrualInterval: envConfig.AccrualInterval,
		OpenAIAPIKey:    envConfig.OpenAIAPIKey,
		OpenAIModel:     defaultIfBlank(envConfig.OpenAIModel, flagsConfig.OpenAIModel),
		AdvisorTimeout:  envConfig.AdvisorTimeout,
		CORSOrigins:     envConfig.CORSOrigins,
	}

	if conf.MinWithdrawal.IsZero() {
		conf.MinWithdrawal = decimal.NewFromInt(50)
	}
	if conf.MaxWithdrawal.IsZero() {
		conf.MaxWithdrawal = decimal.NewFromInt(5000)
	}
	if conf.WithdrawalFee.IsZero() {
		conf.WithdrawalFee = decimal.NewFromInt(1)
	}
	if len(conf.ReferralLevels) == 0 {
		conf.ReferralLevels = []string{"10", "5", "2"}
	}
	if conf.AccrualInterval == 0 {
		conf.AccrualInterval = flagsConfig.AccrualInterval
	}
	if conf.AdvisorTimeout == 0 {
		conf.AdvisorTimeout = flagsConfig.AdvisorTimeout
	}
	return conf
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
