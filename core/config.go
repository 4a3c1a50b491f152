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

// Storage drivers
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	AppName  string
	Env      string
	Build    string
	Debug    bool
	TestMode bool

	Server struct {
		Host            string
		Addr            string
		DebugHost       string
		ShutdownTimeout time.Duration
	}

	Storage struct {
		Driver  string
		DSN     string
		Dir     string
		Prefix  string
		Timeout time.Duration
	}

	Log struct {
		File  string
		Level string
	}

	Reminder struct {
		Schedule string
	}

	Pomodoro struct {
		WorkTime          int
		ShortBreakTime    int
		LongBreakTime     int
		LongBreakInterval int
	}

	RollbarToken     string
	SendgridApiKey   string
	defaultFromEmail string
}

func (c *Config) DefaultFromEmail() mail.Address {
	addr, err := mail.ParseAddress(c.defaultFromEmail)
	if err != nil {
		return mail.Address{Name: c.AppName, Address: "noreply@localhost"}
	}
	if addr.Name == "" {
		addr.Name = c.AppName
	}
	return *addr
}

// NewConfig reads the configuration from defaults, an optional `config/.env.<env>` file and the environment.
// Environment variables are prefixed with the env name, eg. DEV_STORAGE_DRIVER=file.
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Agenda")
	v.SetDefault("build", "develop")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.addr", "127.0.0.1:8000")
	v.SetDefault("server.debugHost", "127.0.0.1:4000")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("storage.driver", StorageSQLite)
	v.SetDefault("storage.dsn", "agenda.db")
	v.SetDefault("storage.dir", "data")
	v.SetDefault("storage.prefix", "agenda-")
	v.SetDefault("storage.timeout", 2*time.Second)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("reminder.schedule", "@every 1m")
	v.SetDefault("pomodoro.workTime", 25)
	v.SetDefault("pomodoro.shortBreakTime", 5)
	v.SetDefault("pomodoro.longBreakTime", 15)
	v.SetDefault("pomodoro.longBreakInterval", 4)
	v.SetDefault("rollbarToken", "")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("defaultFromEmail", "Agenda <noreply@localhost>")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(os.Getenv("CONFIG_DIR"), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		AppName:          v.GetString("appName"),
		Env:              env,
		Build:            v.GetString("build"),
		Debug:            v.GetBool("debug"),
		TestMode:         v.GetBool("testMode"),
		RollbarToken:     v.GetString("rollbarToken"),
		SendgridApiKey:   v.GetString("sendgridApiKey"),
		defaultFromEmail: v.GetString("defaultFromEmail"),
	}
	conf.Server.Host = v.GetString("server.host")
	conf.Server.Addr = v.GetString("server.addr")
	conf.Server.DebugHost = v.GetString("server.debugHost")
	conf.Server.ShutdownTimeout = v.GetDuration("server.shutdownTimeout")
	conf.Storage.Driver = strings.ToLower(v.GetString("storage.driver"))
	conf.Storage.DSN = v.GetString("storage.dsn")
	conf.Storage.Dir = v.GetString("storage.dir")
	conf.Storage.Prefix = v.GetString("storage.prefix")
	conf.Storage.Timeout = v.GetDuration("storage.timeout")
	conf.Log.File = v.GetString("log.file")
	conf.Log.Level = v.GetString("log.level")
	conf.Reminder.Schedule = v.GetString("reminder.schedule")
	conf.Pomodoro.WorkTime = v.GetInt("pomodoro.workTime")
	conf.Pomodoro.ShortBreakTime = v.GetInt("pomodoro.shortBreakTime")
	conf.Pomodoro.LongBreakTime = v.GetInt("pomodoro.longBreakTime")
	conf.Pomodoro.LongBreakInterval = v.GetInt("pomodoro.longBreakInterval")
	return conf
}
