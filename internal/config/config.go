package config

import (
	"net/url"
	"path"

	"github.com/hrgovic/wedding-site/internal/env"

	"go.uber.org/zap"
)

const (
	PortEnv        = "PORT"
	EnvironmentEnv = "ENVIRONMENT"
	DatabaseUrlEnv = "DATABASE_URL"
	RootPathEnv    = "ROOT_PATH"

	PasscodeEnv      = "PASSCODE"
	SessionSecretEnv = "SESSION_SECRET"
	PhotosUrlEnv     = "PHOTOS_URL"

	EmailServerHostEnv     = "EMAIL_SERVER_HOST"
	EmailServerUsernameEnv = "EMAIL_SERVER_USERNAME"
	EmailServerPasswordEnv = "EMAIL_SERVER_PASSWORD"
	EmailServerSenderEnv   = "EMAIL_SERVER_SENDER"
	EmailNotifyAddressEnv  = "EMAIL_NOTIFY_ADDRESS"
)

type EmailConfiguration struct {
	Host          *url.URL
	Username      string
	Password      string
	Sender        string
	NotifyAddress string
}

type Config struct {
	Logger *zap.Logger

	Port        int
	Environment string

	DatabaseURL    string
	MigrationsPath string
	TemplatesPath  string
	PublicPath     string

	Passcode      string
	SessionSecret string
	PhotosURL     string

	Email EmailConfiguration
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func Load() (Config, error) {
	environment := env.GetStringOrDefault(EnvironmentEnv, "development")

	var logger *zap.Logger
	var err error
	if environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return Config{}, err
	}

	port := env.MustGetInt(PortEnv)
	dbURL := env.MustGetString(DatabaseUrlEnv)
	rootPath := env.MustGetString(RootPathEnv)

	passcode := env.MustGetString(PasscodeEnv)
	sessionSecret := env.MustGetString(SessionSecretEnv)
	photosURL := env.MustGetString(PhotosUrlEnv)

	emailServerURL := env.MustGetURL(EmailServerHostEnv)
	emailServerUsername := env.MustGetString(EmailServerUsernameEnv)
	emailServerPassword := env.MustGetString(EmailServerPasswordEnv)
	emailServerSender := env.MustGetString(EmailServerSenderEnv)
	emailNotifyAddress := env.MustGetString(EmailNotifyAddressEnv)

	return Config{
		Logger: logger,

		Port:        port,
		Environment: environment,

		DatabaseURL:    dbURL,
		MigrationsPath: path.Join(rootPath, "db", "migrations"),
		TemplatesPath:  path.Join(rootPath, "web", "templates"),
		PublicPath:     path.Join(rootPath, "web", "public"),

		Passcode:      passcode,
		SessionSecret: sessionSecret,
		PhotosURL:     photosURL,

		Email: EmailConfiguration{
			Host:          emailServerURL,
			Username:      emailServerUsername,
			Password:      emailServerPassword,
			Sender:        emailServerSender,
			NotifyAddress: emailNotifyAddress,
		},
	}, nil
}
