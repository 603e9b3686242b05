package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"bookshop/internal/blob"
	"bookshop/internal/cart"
	"bookshop/internal/catalog"
	apphttp "bookshop/internal/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":8080")
	jwtSecret := mustGetEnv("JWT_SECRET")
	adminEmail := getEnv("ADMIN_EMAIL", "admin@bookshop.dev")
	adminPassword := getEnv("ADMIN_PASSWORD", "admin123")

	ctx := context.Background()
	blobs, err := openBlobStore(ctx)
	if err != nil {
		log.Fatalf("cannot open blob store: %v", err)
	}

	bookStore := catalog.New(blobs)
	cartStore := cart.New(ctx, blobs)

	authHandler, err := apphttp.NewAuthHandler(jwtSecret, adminEmail, adminPassword)
	if err != nil {
		log.Fatalf("cannot set up auth: %v", err)
	}

	handler := apphttp.NewRouter(apphttp.RouterConfig{
		Books:          bookStore,
		Cart:           cartStore,
		Auth:           authHandler,
		Blobs:          blobs,
		JWTSecret:      jwtSecret,
		CORSOrigins:    splitCSV(getEnv("CORS_ORIGINS", "")),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 40),
		MaxRequestSize: 1 << 20,
	})

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s", serverAddress)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

// openBlobStore picks the persistence backend from STORE_BACKEND. The
// default is a local data directory, the closest stand-in for the
// original's single-browser storage.
func openBlobStore(ctx context.Context) (blob.Store, error) {
	backend := getEnv("STORE_BACKEND", "file")
	switch backend {
	case "memory":
		return blob.NewMemory(), nil
	case "file":
		return blob.NewFile(getEnv("DATA_DIR", "./data"))
	case "redis":
		return blob.NewRedis(ctx, getEnv("REDIS_ADDR", "localhost:6379"))
	case "postgres":
		dsn := mustGetEnv("DB_DSN")
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("cannot create db pool: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("cannot ping database (%s): %w", redactDSN(dsn), err)
		}
		log.Println("database connection OK")
		return blob.NewPostgres(ctx, pool)
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", backend)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustGetEnv(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	log.Fatalf("missing required environment variable: %s", key)
	return ""
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
