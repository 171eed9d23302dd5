//go:build !cli
// +build !cli

package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"inventory.GO/api"
	_ "inventory.GO/api/inventory"
	_ "inventory.GO/api/item"
	_ "inventory.GO/api/order"
	"inventory.GO/config"
	"inventory.GO/core/auth"
	_ "inventory.GO/cron/jobs"
	"inventory.GO/graphqlserver"
	entity "inventory.GO/model/entity"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured or not reachable, caching disabled."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, caching disabled."
		}
	}
	log.Println(redisStatus)

	config.InitES()
	if config.ESClient != nil {
		log.Println("Elasticsearch configured, item search uses the items index.")
	} else {
		log.Println("Elasticsearch not configured, item search falls back to SQL.")
	}

	db, err := config.NewDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	// Check DB connection
	sqldb, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get DB instance: %v", err)
	}
	if err := sqldb.Ping(); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	log.Println("Database connection successful.")

	// Safety net for the sqlite fallback; MySQL schemas come from db:migrate.
	if err := db.AutoMigrate(
		&entity.Item{},
		&entity.InventoryTransaction{},
		&entity.Order{},
		&entity.StockAudit{},
	); err != nil {
		log.Fatalf("auto-migrate failed: %v", err)
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			log.Printf("Request duration: %d ms", duration)
			return err
		}
	})

	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware())
	api.ApplyModules(apiGroup, db)

	if err := graphqlserver.RegisterGraphQLRoutes(e, db); err != nil {
		log.Fatalf("graphql setup failed: %v", err)
	}

	api.ApplyRoutes(e, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
