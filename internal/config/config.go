package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Meta     Meta     `mapstructure:",squash"`
	Storage  Storage  `mapstructure:",squash"`
	Sync     Sync     `mapstructure:",squash"`
	Auth     Auth     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"-"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
	PageSize    int    `mapstructure:"meta_page_size"`
}

type Storage struct {
	Bucket    string `mapstructure:"storage_bucket"`
	Region    string `mapstructure:"storage_region"`
	AccessKey string `mapstructure:"storage_access_key"`
	SecretKey string `mapstructure:"storage_secret_key"`
	Endpoint  string `mapstructure:"storage_endpoint"`
	CDNDomain string `mapstructure:"storage_cdn_domain"`
}

type Sync struct {
	CronSchedule    string `mapstructure:"platform_sync_cron"`
	LookbackDays    int    `mapstructure:"platform_sync_lookback_days"`
	CreativeWorkers int    `mapstructure:"platform_sync_creative_workers"`
	Enabled         bool   `mapstructure:"platform_sync_enabled"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adsync")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_PAGE_SIZE", 100)

	viper.SetDefault("STORAGE_BUCKET", "ads-sync-creatives")
	viper.SetDefault("STORAGE_REGION", "us-east-1")

	// Defaults para a sincronização de plataformas
	viper.SetDefault("PLATFORM_SYNC_CRON", "0 3 * * *")      // Todos os dias às 3h da manhã
	viper.SetDefault("PLATFORM_SYNC_LOOKBACK_DAYS", 7)       // 7 dias de métricas por execução
	viper.SetDefault("PLATFORM_SYNC_CREATIVE_WORKERS", 4)    // 4 buscas de criativo em paralelo
	viper.SetDefault("PLATFORM_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
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
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}
}
