package main

import (
	"fmt"
	"log/slog"
	"os"

	"autoservice/cmd"
	httpadapter "autoservice/internal/adapters/in/http"
	"autoservice/internal/adapters/out/postgres/catalogrepo"
	"autoservice/internal/adapters/out/postgres/orderrepo"
	"autoservice/internal/adapters/out/postgres/reviewrepo"
	"autoservice/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateListOverdueOrdersQueryHandler(),
		app.Notifier(),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:  goDotEnvVariable("JWT_SECRET"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&catalogrepo.CarModelDTO{},
		&catalogrepo.CarDTO{},
		&catalogrepo.ServiceDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&reviewrepo.ReviewDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.Validator = httpadapter.NewRequestValidator()

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateAddOrderLineCommandHandler(),
		app.CreatePostReviewCommandHandler(),
		app.CreateCreateCarModelCommandHandler(),
		app.CreateCreateCarCommandHandler(),
		app.CreateCreateServiceCommandHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateListUserOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListCarsQueryHandler(),
		app.CreateGetDashboardQueryHandler(),
	)
	server.RegisterRoutes(e, httpadapter.NewAuthMiddleware(configs.JWTSecret))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
