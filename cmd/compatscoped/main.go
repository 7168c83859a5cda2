// Command compatscoped is the Compatscope query service. It loads the
// support dataset once, serves lookup and analysis endpoints over it, and
// swaps in a fresh dataset atomically on demand.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/compatscope/compatscope/internal/api"
	"github.com/compatscope/compatscope/internal/datasource"
	"github.com/compatscope/compatscope/pkg/feature"
)

type config struct {
	Port        string
	DatasetPath string
	FeaturesDir string
	S3Bucket    string
	S3Prefix    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	GCSBucket   string
	GCSPrefix   string
	AdminAPIKey string
}

func loadConfig() config {
	return config{
		Port:        envOrDefault("PORT", "8080"),
		DatasetPath: envOrDefault("DATASET_PATH", "data/features.json"),
		FeaturesDir: os.Getenv("FEATURES_DIR"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Prefix:    os.Getenv("S3_PREFIX"),
		S3Region:    os.Getenv("S3_REGION"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		GCSBucket:   os.Getenv("GCS_BUCKET"),
		GCSPrefix:   os.Getenv("GCS_PREFIX"),
		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),
	}
}

func main() {
	cfg := loadConfig()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, err := buildSource(ctx, cfg)
	if err != nil {
		log.Fatalf("configure dataset source: %v", err)
	}

	store := feature.NewStore(func() (*feature.Database, error) {
		bulk, err := source.Bulk(context.Background())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", feature.ErrDataUnavailable, err)
		}
		details, err := source.Details(context.Background())
		if err != nil {
			return nil, fmt.Errorf("fetch detail documents: %w", err)
		}
		return feature.LoadBytes(bulk, details)
	})

	db, err := store.Current()
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}
	log.Printf("loaded %d features", db.Len())

	handler := api.NewHandler(store, nil)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.HandleFunc("GET /healthz", healthHandler(store))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.CORS(api.AdminAuth(cfg.AdminAPIKey)(mux)),
	}

	go func() {
		log.Printf("starting compatscoped on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// buildSource picks the dataset source from the environment: GCS, then S3,
// then the local filesystem.
func buildSource(ctx context.Context, cfg config) (datasource.Client, error) {
	switch {
	case cfg.GCSBucket != "":
		return datasource.NewGCSStorage(ctx, cfg.GCSBucket, cfg.GCSPrefix)
	case cfg.S3Bucket != "":
		return datasource.NewS3Storage(ctx, datasource.S3Config{
			Bucket:    cfg.S3Bucket,
			Prefix:    cfg.S3Prefix,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	default:
		return datasource.NewLocalStorage(cfg.DatasetPath, cfg.FeaturesDir), nil
	}
}

func healthHandler(store *feature.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		db, err := store.Current()
		if err != nil {
			http.Error(w, "dataset unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{"status": "ok", "features": db.Len()})
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
