package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds the application's configuration values.
type Config struct {
	AppName string `json:"appname"`
	AppEnv  string `json:"appenv"`
	AppPort uint16 `json:"appport"`
	GinMode string `json:"ginmode"`
	DBHost  string `json:"dbhost"`
	DBPort  uint16 `json:"dbport"`
	DBName  string `json:"dbname"`
	DBUSER  string `json:"dbuser"`
	DBPass  string `json:"dbpass"`

	DBMaxOpenConns    int           `json:"db_max_open"`
	DBMaxIdleConns    int           `json:"db_max_idle"`
	DBConnMaxLifetime time.Duration `json:"db_conn_max_lifetime"`

	// RateLimit is the number of write requests allowed per client within RateWindow.
	RateLimit  int           `json:"ratelimit"`
	RateWindow time.Duration `json:"ratewindow"`

	GeoIPDBPath string `json:"geoip_db_path"`
}

const (
	defaultAppName = "Security Event Log"
	defaultAppPort = 8080
)

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file, and returns a singleton Config instance.
// A missing .env file is not an error; the process environment is used as is.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("Error loading .env file: %v", err)
		}

		appPort, err := strconv.ParseUint(os.Getenv("APPPORT"), 10, 16)
		if err != nil || appPort == 0 {
			appPort = defaultAppPort
		}
		dbPort, _ := strconv.ParseUint(os.Getenv("DBPORT"), 10, 16)

		appName := os.Getenv("APPNAME")
		if appName == "" {
			appName = defaultAppName
		}

		config = &Config{
			AppName:           appName,
			AppEnv:            os.Getenv("APPENV"),
			AppPort:           uint16(appPort),
			GinMode:           os.Getenv("GINMODE"),
			DBHost:            os.Getenv("DBHOST"),
			DBPort:            uint16(dbPort),
			DBName:            os.Getenv("DBNAME"),
			DBUSER:            os.Getenv("DBUSER"),
			DBPass:            os.Getenv("DBPASS"),
			DBMaxOpenConns:    envInt("DB_MAX_OPEN", 25),
			DBMaxIdleConns:    envInt("DB_MAX_IDLE", 5),
			DBConnMaxLifetime: envDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			RateLimit:         envInt("RATELIMIT", 0),
			RateWindow:        envDuration("RATEWINDOW", 0),
			GeoIPDBPath:       os.Getenv("GEOIP_DB_PATH"),
		}
	})
	return config
}

func envInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

// DSN builds the MySQL Data Source Name from the configuration values.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC", c.DBUSER, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}

// ConnectMySQL establishes a connection to a MySQL database using the configuration values.
// When APPENV is "test" an in-memory SQLite database is opened instead.
func ConnectMySQL() (*gorm.DB, error) {
	cfg := LoadConfig()

	gormCfg := &gorm.Config{}
	var dialector gorm.Dialector
	if cfg.AppEnv == "test" || os.Getenv("APPENV") == "test" {
		dialector = sqlite.Open("file::memory:?cache=shared")
		gormCfg.Logger = logger.Default.LogMode(logger.Silent)
	} else {
		dialector = mysql.Open(cfg.DSN())
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	return db, nil
}
