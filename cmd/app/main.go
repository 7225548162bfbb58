package main

import (
	"fmt"
	"log/slog"
	"os"

	"pathlab/cmd"
	httpadapter "pathlab/internal/adapters/in/http"
	"pathlab/internal/adapters/out/postgres/orderrepo"
	"pathlab/internal/adapters/out/postgres/resultrepo"
	"pathlab/internal/adapters/out/postgres/seriesrepo"
	"pathlab/internal/adapters/out/postgres/testrepo"
	"pathlab/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	root := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(root.CreateCancelExpiredOrdersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
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

	// TranslateError is required: repositories match gorm.ErrDuplicatedKey
	// to detect unique-constraint violations.
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&testrepo.TestDTO{},
		&orderrepo.OrderDTO{},
		&resultrepo.ResultDTO{},
		&seriesrepo.NamingSeriesDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	server := httpadapter.NewServer(
		root.CreateCreateTestCommandHandler(),
		root.CreateUpdateTestCommandHandler(),
		root.CreateCreateOrderCommandHandler(),
		root.CreateTransitionOrderStatusCommandHandler(),
		root.CreateCreateResultCommandHandler(),
		root.CreateUpdateResultCommandHandler(),
		root.CreateCompleteResultCommandHandler(),
		root.CreateGetAllTestsQueryHandler(),
		root.CreateSearchTestsQueryHandler(),
		root.CreateGetTestByIDQueryHandler(),
		root.CreateGetOrdersQueryHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetResultsQueryHandler(),
		root.CreateGetDashboardStatsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
