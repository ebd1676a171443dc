package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"deliverylink/cmd"
	pgadapter "deliverylink/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := openDB(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := pgadapter.AutoMigrate(gormDB); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:          goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:      goDotEnvVariable("REDIS_PASSWORD"),
		JWTSecret:          goDotEnvVariable("JWT_SECRET"),
		GoogleMapsAPIKey:   goDotEnvVariable("GOOGLE_MAPS_API_KEY"),
		WhatsAppPhoneID:    goDotEnvVariable("WHATSAPP_PHONE_ID"),
		WhatsAppToken:      goDotEnvVariable("WHATSAPP_TOKEN"),
		WhatsAppAPIVersion: goDotEnvVariable("WHATSAPP_API_VERSION"),
		TrackingBaseURL:    goDotEnvVariable("TRACKING_BASE_URL"),
	}
}

func goDotEnvVariable(key string) string {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, reading %s from the environment", key)
	}
	return os.Getenv(key)
}

func openDB(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the order repository relies on for
	// order number collision retries.
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	server, err := app.CreateServer()
	if err != nil {
		log.Fatalf("Error creating HTTP server: %v", err)
	}

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e, configs.JWTSecret)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
