package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Env        string `mapstructure:"env"`
		Port       string `mapstructure:"port"`
		PublicHost string `mapstructure:"public_host"`
	} `mapstructure:"app"`
	Store struct {
		// Driver is one of memory, redis, postgres or sqlite.
		Driver     string `mapstructure:"driver"`
		SQLitePath string `mapstructure:"sqlite_path"`
	} `mapstructure:"store"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		GroupID string   `mapstructure:"group_id"`
	} `mapstructure:"kafka"`
	Auth struct {
		JWTSecret     string        `mapstructure:"jwt_secret"`
		TokenLifespan time.Duration `mapstructure:"token_lifespan"`
	} `mapstructure:"auth"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
		Folder    string `mapstructure:"folder"`
	} `mapstructure:"cloudinary"`
	Tracing struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"tracing"`
}

// LoadConfig reads config.yaml from paths (the working directory when none
// are given), then .env, then the environment. Later sources win.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	envFiles := make([]string, 0, len(paths))
	for _, p := range paths {
		envFiles = append(envFiles, strings.TrimSuffix(p, "/")+"/.env")
	}
	if err := godotenv.Load(envFiles...); err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.public_host", "professionalladder.com")
	v.SetDefault("store.driver", "memory")
	v.SetDefault("store.sqlite_path", "ladder.db")
	v.SetDefault("kafka.group_id", "document-archiver-group")
	v.SetDefault("auth.token_lifespan", 24*time.Hour)
	v.SetDefault("cloudinary.folder", "documents")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.public_host", "PUBLIC_HOST")
	v.BindEnv("store.driver", "STORE_DRIVER")
	v.BindEnv("store.sqlite_path", "SQLITE_PATH")
	v.BindEnv("db.dsn", "DB_DSN")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.db", "REDIS_DB")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("kafka.group_id", "KAFKA_GROUP_ID")
	v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	v.BindEnv("auth.token_lifespan", "TOKEN_LIFESPAN")

	v.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	v.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	v.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")
	v.BindEnv("cloudinary.folder", "CLOUDINARY_FOLDER")

	v.BindEnv("tracing.otlp_endpoint", "OTLP_ENDPOINT")

	err = v.Unmarshal(&cfg)
	return
}
