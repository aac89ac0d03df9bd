package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"fooddelivery/cmd"
	httpadapter "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres/accountrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/restaurantrepo"
	"fooddelivery/internal/adapters/out/postgres/trackingrepo"
	"fooddelivery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	tokens, err := httpadapter.NewTokenService(configs.JWTSecret, tokenTTL(configs))
	if err != nil {
		log.Fatalf("Token service init failed: %v", err)
	}

	jobManager := jobs.NewJobManager(app.CreateGetOrderStatusCountsQueryHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, tokens, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:   os.Getenv("HTTP_PORT"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  os.Getenv("DB_SSLMODE"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		JWTTTL:     os.Getenv("JWT_TTL"),
	}
}

func tokenTTL(configs cmd.Config) time.Duration {
	ttl, err := time.ParseDuration(configs.JWTTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return ttl
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&accountrepo.AccountDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&trackingrepo.RiderLocationDTO{},
	)
	if err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, tokens *httpadapter.TokenService, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		tokens,
		app.CreateCredentialsReader(),
		app.CreateRegisterAccountCommandHandler(),
		app.CreateCreateRestaurantCommandHandler(),
		app.CreateAddMenuItemCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateAssignRiderCommandHandler(),
		app.CreateUpdateRiderLocationCommandHandler(),
		app.CreateListRestaurantsQueryHandler(),
		app.CreateGetRestaurantMenuQueryHandler(),
		app.CreateListOrdersForActorQueryHandler(),
		app.CreateListPendingOrdersQueryHandler(),
		app.CreateGetOrderTrackingQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
