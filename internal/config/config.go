package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Owner          Owner          `mapstructure:",squash"`
	Migration      Migration      `mapstructure:",squash"`
	StateReload    StateReload    `mapstructure:",squash"`
	ThresholdWatch ThresholdWatch `mapstructure:",squash"`
}

type App struct {
	LogLevel           string        `mapstructure:"log_level"`
	Timezone           string        `mapstructure:"app_timezone"`
	PersistenceTimeout time.Duration `mapstructure:"persistence_timeout"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	SSLMode  string `mapstructure:"database_sslmode"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"database_conn_max_idle_time"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

// Owner é usado para criar o dono da loja na primeira inicialização
type Owner struct {
	Name     string `mapstructure:"owner_name"`
	Email    string `mapstructure:"owner_email"`
	Password string `mapstructure:"owner_password"`
}

type Migration struct {
	RunOnStart   bool `mapstructure:"migration_run_on_start"`
	SeedChannels bool `mapstructure:"migration_seed_channels"`
}

type StateReload struct {
	CronSchedule string `mapstructure:"state_reload_cron"`
	Enabled      bool   `mapstructure:"state_reload_enabled"`
}

type ThresholdWatch struct {
	CronSchedule string `mapstructure:"threshold_watch_cron"`
	Enabled      bool   `mapstructure:"threshold_watch_enabled"`
}

// Location retorna o fuso usado para as janelas de hoje, semana e mês
func (a App) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(a.Timezone)
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/store_manager")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_IDLE_TIME", "5m")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("OWNER_NAME", "Administrador")
	viper.SetDefault("OWNER_EMAIL", "admin@acai.local")
	viper.SetDefault("OWNER_PASSWORD", "admin123") // ONLY LOCAL

	viper.SetDefault("MIGRATION_RUN_ON_START", true)
	viper.SetDefault("MIGRATION_SEED_CHANNELS", true)

	viper.SetDefault("STATE_RELOAD_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("STATE_RELOAD_ENABLED", true)

	viper.SetDefault("THRESHOLD_WATCH_CRON", "0 8 * * *") // Todos os dias às 8h
	viper.SetDefault("THRESHOLD_WATCH_ENABLED", true)

	viper.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("PERSISTENCE_TIMEOUT", "5s")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if _, err := config.App.Location(); err != nil {
		return nil, fmt.Errorf("config: fuso horário inválido %q: %w", config.App.Timezone, err)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s?sslmode=%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
		config.Database.SSLMode,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
