// server/config/config.go
package config

import (
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port         string   `mapstructure:"port"`
	AllowOrigins []string `mapstructure:"allowOrigins"`
}

// AuthServiceConfig points at the external authentication service.
// The service owns accounts, passwords and the session cookie; this
// server only forwards credentials and mirrors the outcome.
type AuthServiceConfig struct {
	BaseURL string `mapstructure:"baseURL"`
}

type SessionConfig struct {
	MirrorPath string `mapstructure:"mirrorPath"`
}

type ScannerConfig struct {
	DelayMS int `mapstructure:"delayMS"`
}

type S3Config struct {
	Bucket           string `mapstructure:"bucket"`
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"accessKeyID"`
	SecretAccessKey  string `mapstructure:"secretAccessKey"`
	CloudFrontDomain string `mapstructure:"cloudFrontDomain"`
}

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	AuthService AuthServiceConfig `mapstructure:"authService"`
	Session     SessionConfig     `mapstructure:"session"`
	Scanner     ScannerConfig     `mapstructure:"scanner"`
	S3          S3Config          `mapstructure:"s3"`
}

// LoadConfig reads config.yaml from the given path and overrides
// individual keys from environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("authService.baseURL", "AUTH_SERVICE_BASE_URL")
	viper.BindEnv("session.mirrorPath", "SESSION_MIRROR_PATH")
	viper.BindEnv("scanner.delayMS", "SCANNER_DELAY_MS")
	viper.BindEnv("s3.bucket", "S3_BUCKET")
	viper.BindEnv("s3.region", "S3_REGION")
	viper.BindEnv("s3.accessKeyID", "S3_ACCESS_KEY_ID")
	viper.BindEnv("s3.secretAccessKey", "S3_SECRET_ACCESS_KEY")
	viper.BindEnv("s3.cloudFrontDomain", "S3_CLOUDFRONT_DOMAIN")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.allowOrigins", []string{"http://localhost:5173"})
	viper.SetDefault("authService.baseURL", "http://localhost:5000/api")
	viper.SetDefault("session.mirrorPath", "./session.json")
	viper.SetDefault("scanner.delayMS", 2000)

	// A missing config.yaml is fine; defaults plus env cover everything.
	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return
}
