package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	jwtSecretEnvKey    = "JWT_SECRET"
	portEnvKey         = "PORT"
	dbDriverEnvKey     = "DB_DRIVER"
	dbConnEnvKey       = "DB_CONNECTION_URL"
	dbHostEnvKey       = "DB_HOST"
	dbPortEnvKey       = "DB_PORT"
	dbUserEnvKey       = "DB_USER"
	dbPasswordEnvKey   = "DB_PASSWORD"
	dbNameEnvKey       = "DB_NAME"
	uploadDirEnvKey    = "UPLOAD_DIR"
	cookieSecureEnvKey = "COOKIE_SECURE"
	logLevelEnvKey     = "LOG_LEVEL"
)

type App struct {
	Port            string
	JWTSecret       string
	DBDriver        string
	DBConnectionURL string
	UploadDir       string
	CookieSecure    bool
	LogLevel        string
}

// Database is the subset of the configuration needed to reach the store.
type Database struct {
	Driver        string
	ConnectionURL string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(portEnvKey, "3000")
	v.SetDefault(dbDriverEnvKey, "postgres")
	v.SetDefault(dbHostEnvKey, "localhost")
	v.SetDefault(dbPortEnvKey, "5432")
	v.SetDefault(dbUserEnvKey, "postgres")
	v.SetDefault(dbPasswordEnvKey, "")
	v.SetDefault(dbNameEnvKey, "blog")
	v.SetDefault(uploadDirEnvKey, "uploads")
	v.SetDefault(cookieSecureEnvKey, false)
	v.SetDefault(logLevelEnvKey, "info")
	return v
}

// NewApp reads the configuration from the process environment. Only the
// token secret is mandatory.
func NewApp() (App, error) {
	v := newViper()

	jwtSecret := v.GetString(jwtSecretEnvKey)
	if jwtSecret == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	database := loadDatabase(v)

	return App{
		Port:            v.GetString(portEnvKey),
		JWTSecret:       jwtSecret,
		DBDriver:        database.Driver,
		DBConnectionURL: database.ConnectionURL,
		UploadDir:       v.GetString(uploadDirEnvKey),
		CookieSecure:    v.GetBool(cookieSecureEnvKey),
		LogLevel:        v.GetString(logLevelEnvKey),
	}, nil
}

func NewDatabase() Database {
	return loadDatabase(newViper())
}

func loadDatabase(v *viper.Viper) Database {
	dbConn := v.GetString(dbConnEnvKey)
	if dbConn == "" {
		dbConn = postgresDSN(
			v.GetString(dbHostEnvKey),
			v.GetString(dbPortEnvKey),
			v.GetString(dbUserEnvKey),
			v.GetString(dbPasswordEnvKey),
			v.GetString(dbNameEnvKey),
		)
	}

	return Database{
		Driver:        v.GetString(dbDriverEnvKey),
		ConnectionURL: dbConn,
	}
}

func postgresDSN(host, port, user, password, name string) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(user, password),
		Host:   host + ":" + port,
		Path:   name,
	}
	return u.String()
}
