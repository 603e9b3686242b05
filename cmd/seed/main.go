// Command seed resets the catalog blob to the fixed sample data in the
// configured backend. The server seeds itself on first access; this
// exists to restore a known catalog after demos.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"bookshop/internal/blob"
	"bookshop/internal/catalog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	ctx := context.Background()
	blobs, err := openBlobStore(ctx)
	if err != nil {
		log.Fatalf("cannot open blob store: %v", err)
	}

	books, err := catalog.New(blobs).Reset(ctx)
	if err != nil {
		log.Fatalf("reseed failed: %v", err)
	}
	log.Printf("catalog reseeded: backend=%s books=%d", getEnv("STORE_BACKEND", "file"), len(books))
}

func openBlobStore(ctx context.Context) (blob.Store, error) {
	switch backend := getEnv("STORE_BACKEND", "file"); backend {
	case "memory":
		// Seeding a memory backend is pointless but harmless.
		return blob.NewMemory(), nil
	case "file":
		return blob.NewFile(getEnv("DATA_DIR", "./data"))
	case "redis":
		return blob.NewRedis(ctx, getEnv("REDIS_ADDR", "localhost:6379"))
	case "postgres":
		pool, err := pgxpool.New(ctx, mustGetEnv("DB_DSN"))
		if err != nil {
			return nil, err
		}
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			pool.Close()
			return nil, err
		}
		return blob.NewPostgres(ctx, pool)
	default:
		log.Fatalf("unknown STORE_BACKEND %q", backend)
		return nil, nil
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
