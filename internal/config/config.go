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
		Port           string   `mapstructure:"port"`
		Env            string   `mapstructure:"env"`
		PublicBaseURL  string   `mapstructure:"public_base_url"`
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"app"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		Topic   string   `mapstructure:"topic"`
		GroupID string   `mapstructure:"group_id"`
	} `mapstructure:"kafka"`
	Auth struct {
		JWTSecret        string        `mapstructure:"jwt_secret"`
		TokenLifespan    time.Duration `mapstructure:"token_lifespan"`
		LoginMaxAttempts int           `mapstructure:"login_max_attempts"`
		LoginWindow      time.Duration `mapstructure:"login_window"`
	} `mapstructure:"auth"`
	Storage struct {
		Driver string `mapstructure:"driver"`
	} `mapstructure:"storage"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	} `mapstructure:"cloudinary"`
	S3 struct {
		Endpoint      string `mapstructure:"endpoint"`
		Region        string `mapstructure:"region"`
		AccessKey     string `mapstructure:"access_key"`
		SecretKey     string `mapstructure:"secret_key"`
		PublicBaseURL string `mapstructure:"public_base_url"`
		UsePathStyle  bool   `mapstructure:"use_path_style"`
		BucketPrefix  string `mapstructure:"bucket_prefix"`
	} `mapstructure:"s3"`
	Supabase struct {
		URL        string `mapstructure:"url"`
		ServiceKey string `mapstructure:"service_key"`
	} `mapstructure:"supabase"`
	Meili struct {
		Host   string `mapstructure:"host"`
		APIKey string `mapstructure:"api_key"`
	} `mapstructure:"meili"`
	Jaeger struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"jaeger"`
	Log struct {
		Level      string `mapstructure:"level"`
		FilePath   string `mapstructure:"file_path"`
		MaxSizeMB  int    `mapstructure:"max_size_mb"`
		MaxBackups int    `mapstructure:"max_backups"`
		MaxAgeDays int    `mapstructure:"max_age_days"`
		Compress   bool   `mapstructure:"compress"`
	} `mapstructure:"log"`
}

var bindings = map[string]string{
	"app.port":                "APP_PORT",
	"app.env":                 "APP_ENV",
	"app.public_base_url":     "APP_PUBLIC_BASE_URL",
	"app.allowed_origins":     "APP_ALLOWED_ORIGINS",
	"db.dsn":                  "DB_DSN",
	"redis.addr":              "REDIS_ADDR",
	"redis.password":          "REDIS_PASSWORD",
	"kafka.brokers":           "KAFKA_BROKERS",
	"kafka.topic":             "KAFKA_TOPIC",
	"kafka.group_id":          "KAFKA_GROUP_ID",
	"auth.jwt_secret":         "JWT_SECRET",
	"auth.token_lifespan":     "TOKEN_LIFESPAN",
	"auth.login_max_attempts": "LOGIN_MAX_ATTEMPTS",
	"auth.login_window":       "LOGIN_WINDOW",
	"storage.driver":          "STORAGE_DRIVER",
	"cloudinary.cloud_name":   "CLOUDINARY_CLOUD_NAME",
	"cloudinary.api_key":      "CLOUDINARY_API_KEY",
	"cloudinary.api_secret":   "CLOUDINARY_API_SECRET",
	"s3.endpoint":             "S3_ENDPOINT",
	"s3.region":               "S3_REGION",
	"s3.access_key":           "S3_ACCESS_KEY",
	"s3.secret_key":           "S3_SECRET_KEY",
	"s3.public_base_url":      "S3_PUBLIC_BASE_URL",
	"s3.use_path_style":       "S3_USE_PATH_STYLE",
	"s3.bucket_prefix":        "S3_BUCKET_PREFIX",
	"supabase.url":            "SUPABASE_URL",
	"supabase.service_key":    "SUPABASE_SERVICE_KEY",
	"meili.host":              "MEILI_HOST",
	"meili.api_key":           "MEILI_API_KEY",
	"jaeger.otlp_endpoint":    "OTEL_EXPORTER_OTLP_ENDPOINT",
	"log.level":               "LOG_LEVEL",
	"log.file_path":           "LOG_FILE_PATH",
	"log.max_size_mb":         "LOG_MAX_SIZE_MB",
	"log.max_backups":         "LOG_MAX_BACKUPS",
	"log.max_age_days":        "LOG_MAX_AGE_DAYS",
	"log.compress":            "LOG_COMPRESS",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.public_base_url", "http://localhost:3000")
	v.SetDefault("app.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("kafka.topic", "content.events")
	v.SetDefault("kafka.group_id", "portfolio-worker")
	v.SetDefault("auth.token_lifespan", 24*time.Hour)
	v.SetDefault("auth.login_max_attempts", 5)
	v.SetDefault("auth.login_window", 15*time.Minute)
	v.SetDefault("storage.driver", "supabase")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 28)
}

// LoadConfig reads .env, then config.yaml from the given paths (default "."),
// then the environment. Later sources win.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if err = godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read env only. Error: %v", err)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	for key, env := range bindings {
		_ = v.BindEnv(key, env)
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		return cfg, err
	}

	// Comma separated env values arrive as a single element.
	cfg.Kafka.Brokers = splitList(cfg.Kafka.Brokers)
	cfg.App.AllowedOrigins = splitList(cfg.App.AllowedOrigins)
	return cfg, nil
}

func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
