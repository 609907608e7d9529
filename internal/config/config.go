package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServiceName string       `yaml:"service_name" env:"SERVICE_NAME" validate:"required"`
	Server      ServerConfig `yaml:"server"`
	Auth        AuthConfig   `yaml:"auth"`
	Token       TokenConfig  `yaml:"token"`
	Redis       RedisConfig  `yaml:"redis"`
	DB          DBConfig     `yaml:"db"`
	Jaeger      JaegerConfig `yaml:"jaeger"`
}

type ServerConfig struct {
	Mode string `yaml:"mode" env:"SERVER_MODE" envDefault:"dev" validate:"oneof=dev prod"`
	Port int    `yaml:"port" env:"SERVER_PORT" envDefault:"8080"`
}

type AuthConfig struct {
	JWT JWTConfig `yaml:"jwt"`
}

type JWTConfig struct {
	Issuer        string `yaml:"issuer"         env:"JWT_ISSUER" validate:"required"`
	AccessSecret  string `yaml:"access_secret"  env:"JWT_ACCESS_SECRET" validate:"required"`
	RefreshSecret string `yaml:"refresh_secret" env:"JWT_REFRESH_SECRET" validate:"required,nefield=AccessSecret"`
}

type TokenConfig struct {
	FamilyLifetime time.Duration `yaml:"family_lifetime" env:"TOKEN_FAMILY_LIFETIME" envDefault:"168h"`
	AccessDuration time.Duration `yaml:"access_duration" env:"TOKEN_ACCESS_DURATION" envDefault:"30m"`
	SweepInterval  time.Duration `yaml:"sweep_interval"  env:"TOKEN_SWEEP_INTERVAL"  envDefault:"24h"`
}

type RedisConfig struct {
	Addr string `yaml:"addr" env:"REDIS_ADDR" envDefault:"localhost:6379" validate:"required"`
	Pass string `yaml:"pass" env:"REDIS_PASS"`
}

type DBConfig struct {
	Host     string `yaml:"host"     env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `yaml:"port"     env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `yaml:"user"     env:"POSTGRES_USER" validate:"required"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD" validate:"required"`
	Database string `yaml:"database" env:"POSTGRES_DB" validate:"required"`
}

type JaegerConfig struct {
	Sampler struct {
		Type  string `yaml:"type"  env:"JAEGER_SAMPLER_TYPE" envDefault:"const"`
		Param int    `yaml:"param" env:"JAEGER_SAMPLER_PARAM" envDefault:"1"`
	} `yaml:"sampler"`
	Reporter struct {
		LogSpans           bool   `yaml:"log_spans"             env:"JAEGER_REPORTER_LOG_SPANS"`
		LocalAgentHostPort string `yaml:"local_agent_host_port" env:"JAEGER_AGENT_HOST_PORT" envDefault:"localhost:6831"`
	} `yaml:"reporter"`
}

// MustLoad reads the yaml config at path (if present), applies environment
// overrides and validates the result. Any failure is fatal.
func MustLoad(path string) Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		zap.L().Debug("no .env file loaded", zap.Error(err))
	}

	conf := Config{}
	if bytes, err := os.ReadFile(path); err == nil {
		if err = yaml.Unmarshal(bytes, &conf); err != nil {
			zap.L().Fatal("failed to parse config file", zap.String("path", path), zap.Error(err))
		}
	} else if !os.IsNotExist(err) {
		zap.L().Fatal("failed to read config file", zap.String("path", path), zap.Error(err))
	}

	if err := env.Parse(&conf); err != nil {
		zap.L().Fatal("failed to parse env config", zap.Error(err))
	}

	if err := validator.New().Struct(conf); err != nil {
		zap.L().Fatal("invalid configuration", zap.Error(err))
	}

	return conf
}
