package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// 用于管理应用配置。配置在启动时加载一次，以指针形式传入各个构造函数。

const (
	defaultSessionSecret = "image_board_secret"
	defaultSignupCode    = "image_board_signup"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Session  SessionConfig  `mapstructure:"session"`
	Signup   SignupConfig   `mapstructure:"signup"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Redis    RedisConfig    `mapstructure:"redis"`

	// 实际使用的配置目录
	Dir string `mapstructure:"-"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
	// 逗号分隔的可信代理，决定 ClientIP 的来源
	TrustedProxies string `mapstructure:"trusted_proxies"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"` // database name
	SSL      bool   `mapstructure:"ssl"`  // enable TLS/SSL
}

type SessionConfig struct {
	Secret      string `mapstructure:"secret"`
	CookieName  string `mapstructure:"cookie_name"`
	MaxAgeHours int    `mapstructure:"max_age_hours"`
	Secure      bool   `mapstructure:"secure"`
}

type SignupConfig struct {
	Code string `mapstructure:"code"`
}

type StorageConfig struct {
	Provider  string   `mapstructure:"provider"` // local, s3
	Path      string   `mapstructure:"path"`
	URLPrefix string   `mapstructure:"url_prefix"`
	S3        S3Config `mapstructure:"s3"`
}

type S3Config struct {
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	PublicURL string `mapstructure:"public_url"`
	PathStyle bool   `mapstructure:"path_style"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// IsRelease 是否为生产模式
func (c *Config) IsRelease() bool {
	return c.Server.Mode == "release"
}

// Load 读取配置文件与环境变量并返回配置快照。
// customConfigDir 为空时使用 ./config。
func Load(customConfigDir string) (*Config, error) {
	v, dir, err := initViper(customConfigDir)
	if err != nil {
		return nil, err
	}

	var cfg Config
	// 将配置映射到结构体
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("配置解析失败: %w", err)
	}
	cfg.Dir = dir

	if err := enforceSecretSafety(&cfg); err != nil {
		return nil, err
	}

	log.Println("✅ 配置加载成功")
	return &cfg, nil
}

func initViper(customConfigDir string) (*viper.Viper, string, error) {
	v := viper.New()

	configDir := strings.TrimSpace(customConfigDir)
	if configDir == "" {
		configDir = "config"
	}

	// 设置配置文件路径
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// 设置默认值
	v.SetDefault("server.port", "9977")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.trusted_proxies", "")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/image_board.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "root")
	v.SetDefault("database.name", "image_board")
	v.SetDefault("database.ssl", false)
	v.SetDefault("session.secret", "")
	v.SetDefault("session.cookie_name", "image_board_session")
	v.SetDefault("session.max_age_hours", 24*14)
	v.SetDefault("session.secure", false)
	v.SetDefault("signup.code", "")
	v.SetDefault("storage.provider", "local")
	v.SetDefault("storage.path", "uploads/imgs")
	v.SetDefault("storage.url_prefix", "/imgs/")
	v.SetDefault("storage.s3.bucket", "")
	v.SetDefault("storage.s3.region", "us-east-1")
	v.SetDefault("storage.s3.endpoint", "")
	v.SetDefault("storage.s3.access_key", "")
	v.SetDefault("storage.s3.secret_key", "")
	v.SetDefault("storage.s3.public_url", "")
	v.SetDefault("storage.s3.path_style", false)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "image_board")

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("⚠️  未找到配置文件，将仅使用环境变量或默认值")
		} else {
			return nil, "", fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	// 配置环境变量覆盖
	// 规则：所有环境变量必须以 IMAGE_BOARD_ 开头
	// 例如：yaml 中的 session.secret 对应环境变量 IMAGE_BOARD_SESSION_SECRET
	v.SetEnvPrefix("IMAGE_BOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v, configDir, nil
}

// enforceSecretSafety release 模式下拒绝不安全的会话密钥和空邀请码，开发模式下回退到默认值
func enforceSecretSafety(cfg *Config) error {
	if cfg.IsRelease() {
		if cfg.Session.Secret == "" || cfg.Session.Secret == defaultSessionSecret {
			return errors.New("[安全严重错误] 生产模式(release)下必须设置安全的 session secret，请设置环境变量 IMAGE_BOARD_SESSION_SECRET")
		}
		if cfg.Signup.Code == "" {
			return errors.New("[安全严重错误] 生产模式(release)下必须设置注册邀请码，请设置环境变量 IMAGE_BOARD_SIGNUP_CODE")
		}
		return nil
	}

	if cfg.Session.Secret == "" {
		log.Println("⚠️ [开发模式警告] 未设置 session secret，将使用默认不安全密钥进行开发")
		cfg.Session.Secret = defaultSessionSecret
	}
	if cfg.Signup.Code == "" {
		log.Printf("⚠️ [开发模式警告] 未设置注册邀请码，将使用默认邀请码 %q", defaultSignupCode)
		cfg.Signup.Code = defaultSignupCode
	}
	return nil
}
