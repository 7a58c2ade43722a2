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

// Drivers de persistência suportados
const (
	DriverJSONFile = "jsonfile"
	DriverPostgres = "postgres"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Gemini   Gemini   `mapstructure:",squash"`
	Snapshot Snapshot `mapstructure:",squash"`
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
	DataDir  string `mapstructure:"database_data_dir"`
	DataFile string `mapstructure:"database_data_file"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Gemini configura o endpoint externo de geração de texto. A chave vem
// exclusivamente do ambiente, nunca de constante no código.
type Gemini struct {
	BaseURL string `mapstructure:"gemini_base_url"`
	Model   string `mapstructure:"gemini_model"`
	APIKey  string `mapstructure:"gemini_api_key"`
}

type Snapshot struct {
	CronSchedule string `mapstructure:"snapshot_cron"`
	Enabled      bool   `mapstructure:"snapshot_enabled"`
	Dir          string `mapstructure:"snapshot_dir"`
	Keep         int    `mapstructure:"snapshot_keep"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 5000)

	viper.SetDefault("DATABASE_DRIVER", DriverJSONFile)
	viper.SetDefault("DATABASE_DATA_DIR", "data")
	viper.SetDefault("DATABASE_DATA_FILE", "data.json")
	viper.SetDefault("DATABASE_URL", "localhost:5432/agency")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GEMINI_API_KEY", "")

	// Defaults para o snapshot periódico do arquivo de dados
	viper.SetDefault("SNAPSHOT_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("SNAPSHOT_ENABLED", false)
	viper.SetDefault("SNAPSHOT_DIR", "data/backups")
	viper.SetDefault("SNAPSHOT_KEEP", 7)

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

	// Leitura do .env pelo Viper é opcional, já que usamos godotenv
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

	config.Database.DSN = fmt.Sprintf(
		"postgres://%s:%s@%s",
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// DataPath retorna o caminho completo do arquivo de dados do driver jsonfile.
func (d Database) DataPath() string {
	return filepath.Join(d.DataDir, d.DataFile)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
