// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariebrainware/security-event-log/config"
	"github.com/ariebrainware/security-event-log/docs"
	"github.com/ariebrainware/security-event-log/endpoint"
	"github.com/ariebrainware/security-event-log/middleware"
	"github.com/ariebrainware/security-event-log/store"
	"github.com/ariebrainware/security-event-log/util"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

var (
	app     *cli.App
	version = "dev"
)

const shutdownTimeout = 10 * time.Second

var (
	geoipURLFlag = &cli.StringFlag{
		Name:     "url",
		Usage:    "URL of the GeoLite2 City database (.mmdb or .mmdb.gz)",
		Required: true,
	}
	geoipDestFlag = &cli.StringFlag{
		Name:    "dest",
		Usage:   "Where to write the database file",
		EnvVars: []string{"GEOIP_DB_PATH"},
		Value:   "GeoLite2-City.mmdb",
	}
)

func init() {
	app = cli.NewApp()
	app.Name = "seclog"
	app.Usage = "Security event log service"
	app.Version = version
	app.Commands = []*cli.Command{
		{
			Name:   "serve",
			Usage:  "Run the HTTP API (default)",
			Action: serve,
		},
		{
			Name:   "migrate",
			Usage:  "Create or update the logs table and exit",
			Action: migrate,
		},
		{
			Name:  "geoip",
			Usage: "Manage the GeoIP database",
			Subcommands: []*cli.Command{
				{
					Name:   "download",
					Usage:  "Download and validate a GeoLite2 City database",
					Flags:  []cli.Flag{geoipURLFlag, geoipDestFlag},
					Action: downloadGeoIP,
				},
			},
		},
		{
			Name:  "version",
			Usage: "Print the version",
			Action: func(ctx *cli.Context) error {
				fmt.Fprintln(ctx.App.Writer, version)
				return nil
			},
		},
	}
	app.Action = serve
}

func setupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	docs.SwaggerInfo.Title = fmt.Sprintf("%s API", cfg.AppName)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLogger())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DatabaseMiddleware(db))

	// Basic HTTP handler for root path
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})
	router.GET("/healthz", endpoint.Healthz)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limiter := middleware.RateLimiter(middleware.RateLimitConfig{
		Limit:  cfg.RateLimit,
		Window: cfg.RateWindow,
	})

	logs := router.Group("/logs")
	{
		logs.GET("", endpoint.ListLogs)
		logs.POST("", limiter, endpoint.CreateLog)
		logs.GET("/:id", endpoint.GetLog)
		logs.PUT("/:id", limiter, endpoint.ReplaceLog)
		logs.PATCH("/:id", limiter, endpoint.UpdateLog)
		logs.DELETE("/:id", limiter, endpoint.DeleteLog)
	}
	router.GET("/stats", endpoint.GetStats)

	return router
}

func connectAndMigrate(ctx context.Context) (*gorm.DB, error) {
	db, err := config.ConnectMySQL()
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := store.New(db).Migrate(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

func migrate(ctx *cli.Context) error {
	config.LoadConfig()
	if _, err := connectAndMigrate(ctx.Context); err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, "logs table is up to date")
	return nil
}

func downloadGeoIP(ctx *cli.Context) error {
	path, err := util.DownloadGeoIP(ctx.Context, ctx.String(geoipURLFlag.Name), ctx.String(geoipDestFlag.Name))
	if err != nil {
		return err
	}
	if err := util.ValidateGeoIP(path); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("downloaded file is not a GeoIP database: %w", err)
	}
	fmt.Fprintf(ctx.App.Writer, "GeoIP database written to %s\n", path)
	return nil
}

func serve(ctx *cli.Context) error {
	// Load the configuration
	cfg := config.LoadConfig()

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	db, err := connectAndMigrate(ctx.Context)
	if err != nil {
		return err
	}

	if err := util.InitGeoIP(cfg.GeoIPDBPath); err != nil {
		util.Logf("GeoIP disabled: %v", err)
	}
	defer util.CloseGeoIP()

	if _, err := config.ConnectRedis(); err != nil {
		util.Logf("Redis unavailable, rate limiting disabled: %v", err)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.AppPort),
		Handler: setupRouter(db, cfg),
	}

	sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		util.Logf("%s listening on %s", cfg.AppName, srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	case <-sigCtx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// @title        Security Event Log API
// @version      1.0
// @description  Record, query and summarize security events.
// @BasePath     /
func main() {
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
