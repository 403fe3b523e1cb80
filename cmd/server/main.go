package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"tour-planner-service/internal/adapters/cache"
	"tour-planner-service/internal/adapters/repositories"
	"tour-planner-service/internal/adapters/stops"
	"tour-planner-service/internal/adapters/travel"
	"tour-planner-service/internal/api"
	"tour-planner-service/internal/platform/db"
	"tour-planner-service/internal/ports"
	"tour-planner-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis, distance matrix, LLM) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := getEnv("DB_PATH", "data/app.db")
	seedPath := getEnv("SEED_PATH", "data/seeds/stops.json")
	port := getEnv("PORT", "8080")

	sqliteDB, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqliteDB.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(sqliteDB, seedPath); err != nil {
		log.Fatal(err)
	}

	travelCache, err := buildTravelCache(sqliteDB)
	if err != nil {
		log.Fatal(err)
	}

	estimator := services.NewTravelEstimator(buildLookup(), travelCache)

	catalog := repositories.NewSqliteStopRepository(sqliteDB)
	planner := services.NewPlanService(catalog, buildGenerator(), estimator)
	trips := repositories.NewSqliteTripRepository(sqliteDB)

	router := api.NewRouter(planner, catalog, trips)

	// Timeouts allow for cold-cache planning against external APIs.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// buildTravelCache picks the estimate cache by configuration: Redis when
// REDIS_ADDR is set, a shared Postgres table when DATABASE_URL is set,
// an in-process LRU when TRAVEL_CACHE=memory, otherwise the local SQLite
// database.
func buildTravelCache(sqliteDB *sql.DB) (ports.TravelCache, error) {
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		log.Printf("travel cache: redis addr=%s", addr)
		return cache.NewRedisTravelCache(client, 24*time.Hour), nil
	}

	if url := os.Getenv("DATABASE_URL"); strings.TrimSpace(url) != "" {
		pg, err := db.Open(url)
		if err != nil {
			return nil, fmt.Errorf("build travel cache: %w", err)
		}
		if err := cache.EnsureSchema(pg); err != nil {
			return nil, fmt.Errorf("build travel cache: %w", err)
		}
		log.Print("travel cache: postgres")
		return cache.NewSQLTravelCache(pg), nil
	}

	if os.Getenv("TRAVEL_CACHE") == "memory" {
		log.Print("travel cache: in-memory lru")
		return cache.NewMemoryTravelCache(0, 0), nil
	}

	log.Print("travel cache: sqlite")
	return cache.NewSqliteTravelCache(sqliteDB), nil
}

// buildLookup returns the external travel-time lookup, or nil when no
// API key is configured and the geometric estimate carries the load.
func buildLookup() ports.TravelLookup {
	apiKey := os.Getenv("MAPS_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Print("MAPS_API_KEY not set, using geometric travel estimates")
		return nil
	}

	provider, err := travel.NewMatrixProvider(apiKey)
	if err != nil {
		log.Fatal(err)
	}
	return provider
}

// buildGenerator returns the LLM stop generator, or nil when no API key
// is configured and uncatalogued destinations return an empty plan.
func buildGenerator() ports.StopSource {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Print("OPENAI_API_KEY not set, stop generation disabled")
		return nil
	}

	generator, err := stops.NewLLMGenerator(apiKey, os.Getenv("OPENAI_MODEL"), os.Getenv("OPENAI_BASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	return generator
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
