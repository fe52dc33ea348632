package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	ProductListerHTTP    = "http"
	ProductListerBrowser = "browser"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	SmartStore   SmartStore   `mapstructure:",squash"`
	Estimation   Estimation   `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	SessionCheck SessionCheck `mapstructure:",squash"`
	RateLimit    RateLimit    `mapstructure:",squash"`
	Cors         Cors         `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	TrustedProxies []string `mapstructure:"trusted_proxies"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"database_conn_max_idle_time"`
}

type SmartStore struct {
	BaseURL          string        `mapstructure:"smartstore_base_url"`
	Cookie           string        `mapstructure:"naver_cookie"`
	UserAgent        string        `mapstructure:"smartstore_user_agent"`
	RequestTimeout   time.Duration `mapstructure:"smartstore_request_timeout"`
	CloudflareBypass bool          `mapstructure:"smartstore_cloudflare_bypass"`
	ProductLister    string        `mapstructure:"smartstore_product_lister"`
	ChromeRemoteURL  string        `mapstructure:"smartstore_chrome_remote_url"`
}

// Estimation controla o ritmo das sondagens contra a SmartStore
type Estimation struct {
	BatchSize   int           `mapstructure:"estimation_batch_size"`
	BatchDelay  time.Duration `mapstructure:"estimation_batch_delay"`
	MaxAttempts int           `mapstructure:"estimation_max_attempts"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type SessionCheck struct {
	CronSchedule string `mapstructure:"session_check_cron"`
	Enabled      bool   `mapstructure:"session_check_enabled"`
	ProductID    string `mapstructure:"session_check_product_id"`
}

type RateLimit struct {
	RPS   float64 `mapstructure:"rate_limit_rps"`
	Burst int     `mapstructure:"rate_limit_burst"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 3001)
	viper.SetDefault("TRUSTED_PROXIES", "127.0.0.1") // IPs ou CIDRs separados por vírgula

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/smartstore?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_CONN_MAX_IDLE_TIME", "5m")

	viper.SetDefault("SMARTSTORE_BASE_URL", "https://smartstore.naver.com")
	viper.SetDefault("NAVER_COOKIE", "")
	viper.SetDefault("SMARTSTORE_USER_AGENT", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/134.0.0.0 Safari/537.36")
	viper.SetDefault("SMARTSTORE_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("SMARTSTORE_CLOUDFLARE_BYPASS", false)
	viper.SetDefault("SMARTSTORE_PRODUCT_LISTER", ProductListerHTTP)
	viper.SetDefault("SMARTSTORE_CHROME_REMOTE_URL", "")

	viper.SetDefault("ESTIMATION_BATCH_SIZE", 5)     // 5 produtos sondados em paralelo
	viper.SetDefault("ESTIMATION_BATCH_DELAY", "2s") // pausa entre lotes
	viper.SetDefault("ESTIMATION_MAX_ATTEMPTS", 3)   // tentativas por sondagem

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("SESSION_CHECK_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("SESSION_CHECK_ENABLED", false)
	viper.SetDefault("SESSION_CHECK_PRODUCT_ID", "")

	viper.SetDefault("RATE_LIMIT_RPS", 1)
	viper.SetDefault("RATE_LIMIT_BURST", 3)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

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

	config.SmartStore.BaseURL = strings.TrimSuffix(config.SmartStore.BaseURL, "/")

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	if config.SmartStore.Cookie == "" {
		logrus.Warn("NAVER_COOKIE não configurado, as sondagens de vendas tendem a retornar zero")
	}

	return config, nil
}

// Validate verifica os valores que o núcleo de estimativa não consegue corrigir sozinho
func (c *Config) Validate() error {
	if c.Estimation.BatchSize <= 0 {
		return errors.New("config: ESTIMATION_BATCH_SIZE deve ser positivo")
	}

	if c.Estimation.MaxAttempts <= 0 {
		return errors.New("config: ESTIMATION_MAX_ATTEMPTS deve ser positivo")
	}

	if c.Estimation.BatchDelay < 0 {
		return errors.New("config: ESTIMATION_BATCH_DELAY não pode ser negativo")
	}

	switch c.SmartStore.ProductLister {
	case ProductListerHTTP, ProductListerBrowser:
	default:
		return fmt.Errorf("config: SMARTSTORE_PRODUCT_LISTER inválido: %q", c.SmartStore.ProductLister)
	}

	if c.SessionCheck.Enabled && c.SessionCheck.ProductID == "" {
		return errors.New("config: SESSION_CHECK_PRODUCT_ID é obrigatório quando a verificação de sessão está habilitada")
	}

	return nil
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
