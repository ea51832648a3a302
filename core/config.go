package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Debug     bool
	TestMode  bool
	Env       string // DEV (local; default), TEST, QA, PROD
	AppName   string
	Build     string
	SecretKey string

	// CommitLatency is the artificial delay applied to form commits to keep
	// the perceived latency of the original UI. Zero in TEST mode.
	CommitLatency time.Duration

	DefaultFromEmail mail.Address
	SendgridAPIKey   string
	RollbarToken     string

	Server struct {
		Host               string
		Addr               string
		DebugAddr          string
		JWTExpirationDelta time.Duration
		ShutdownTimeout    time.Duration
	}

	Storage struct {
		Backend string // memory (default) | redis | postgres
		Redis   struct {
			Addr     string
			Password string
			DB       int
		}
		Database struct {
			Host       string
			Port       string
			Name       string
			User       string
			Password   string
			DisableTLS bool
		}
	}

	Jobs struct {
		OverdueSweepInterval time.Duration
	}
}

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "EduManage")
	conf.SetDefault("build", "dev")
	conf.SetDefault("secretKey", "w3lc0me-t0-3dum@nage-ch@nge-m3-in-pr0d")
	conf.SetDefault("commitLatency", 800*time.Millisecond)
	conf.SetDefault("defaultFromEmail", "noreply@edumanage.local")
	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("serverAddr", ":8000")
	conf.SetDefault("debugAddr", ":8001")
	conf.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	conf.SetDefault("shutdownTimeout", 5*time.Second)
	conf.SetDefault("storageBackend", "memory")
	conf.SetDefault("redisAddr", "localhost:6379")
	conf.SetDefault("redisPassword", "")
	conf.SetDefault("redisDB", 0)
	conf.SetDefault("dbHost", "localhost")
	conf.SetDefault("dbPort", "5432")
	conf.SetDefault("dbName", "edumanage")
	conf.SetDefault("dbUser", "edumanage")
	conf.SetDefault("dbPassword", "")
	conf.SetDefault("dbDisableTLS", true)
	conf.SetDefault("overdueSweepInterval", 12*time.Hour)

	env := os.Getenv("ENV")
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	cfg := &Config{
		Debug:            conf.GetBool("debug"),
		TestMode:         env == "TEST",
		Env:              env,
		AppName:          conf.GetString("appName"),
		Build:            conf.GetString("build"),
		SecretKey:        conf.GetString("secretKey"),
		CommitLatency:    conf.GetDuration("commitLatency"),
		DefaultFromEmail: mail.Address{Name: conf.GetString("appName"), Address: conf.GetString("defaultFromEmail")},
		SendgridAPIKey:   conf.GetString("sendgridApiKey"),
		RollbarToken:     conf.GetString("rollbarToken"),
	}
	cfg.Server.Host = conf.GetString("serverHost")
	cfg.Server.Addr = conf.GetString("serverAddr")
	cfg.Server.DebugAddr = conf.GetString("debugAddr")
	cfg.Server.JWTExpirationDelta = conf.GetDuration("jwtExpirationDelta")
	cfg.Server.ShutdownTimeout = conf.GetDuration("shutdownTimeout")
	cfg.Storage.Backend = conf.GetString("storageBackend")
	cfg.Storage.Redis.Addr = conf.GetString("redisAddr")
	cfg.Storage.Redis.Password = conf.GetString("redisPassword")
	cfg.Storage.Redis.DB = conf.GetInt("redisDB")
	cfg.Storage.Database.Host = conf.GetString("dbHost")
	cfg.Storage.Database.Port = conf.GetString("dbPort")
	cfg.Storage.Database.Name = conf.GetString("dbName")
	cfg.Storage.Database.User = conf.GetString("dbUser")
	cfg.Storage.Database.Password = conf.GetString("dbPassword")
	cfg.Storage.Database.DisableTLS = conf.GetBool("dbDisableTLS")
	cfg.Jobs.OverdueSweepInterval = conf.GetDuration("overdueSweepInterval")

	if cfg.TestMode {
		cfg.CommitLatency = 0
	}
	return cfg
}

// DatabaseAddress returns the host:port pair of the configured Postgres server.
func (c *Config) DatabaseAddress() string {
	return c.Storage.Database.Host + ":" + c.Storage.Database.Port
}
