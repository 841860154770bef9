package main

import (
	"Atelier/internal/auth"
	"Atelier/internal/catalog"
	"Atelier/internal/conceptdesign"
	"Atelier/internal/config"
	"Atelier/internal/httpx"
	"Atelier/internal/plot"
	"Atelier/internal/plotly"
	"Atelier/internal/publish"
	"Atelier/internal/repo"
	"Atelier/internal/upstream"
	"Atelier/internal/workflow"
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"os"

	"github.com/gorilla/mux"
)

const displayName = "Atelier Tools"

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

// HandleList mounts every tool. The manifest and health check stay open;
// tool routes sit behind the rate limiter and the service token.
func HandleList(mux *mux.Router, cfg config.Config, runs repo.Repository, limiter auth.Limiter) {
	reg := catalog.NewRegistry()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	mux.HandleFunc("/manifest.json", reg.Handler(displayName, cfg.Server.AppURL, cfg.Server.Auth.Type)).Methods("GET")

	tools := mux.NewRoute().Subrouter()
	tools.Use(auth.LimitMiddleware(limiter))
	tools.Use(auth.NewGuard(cfg.Server.Auth).Middleware)

	publisher := publish.FromConfig(cfg.S3)

	plotlyH := &plotly.Handler{Service: &plotly.Service{
		Publisher: publisher,
		Images:    plot.NoImageRenderer{},
		Runs:      runs,
		Defaults: plotly.Defaults{
			GridResolution: cfg.Plotly.GridResolution,
			ColorScheme:    cfg.Plotly.ColorScheme,
		},
	}}
	plotlyH.Register(tools, reg)

	workflowH := &workflow.Handler{Service: &workflow.Service{
		Client: upstream.NewClient("workflow", cfg.Workflow),
	}}
	workflowH.Register(tools, reg)

	conceptH := &conceptdesign.Handler{Service: &conceptdesign.Service{
		Client:    upstream.NewClient("concept-design", cfg.ConceptDesign),
		Publisher: publisher,
	}}
	conceptH.Register(tools, reg)

	log.Printf("[api] %d tools registered", len(reg.Tools()))
}

// openRuns keeps run history in Postgres when a database is configured and
// in memory otherwise.
func openRuns(ctx context.Context, cfg config.DatabaseConfig) (repo.Repository, *sql.DB) {
	if cfg.URL == "" {
		return repo.NewMemoryRunDB(500), nil
	}
	db, err := repo.OpenDB(ctx, cfg.URL)
	if err != nil {
		log.Printf("[db] %v; keeping run history in memory", err)
		return repo.NewMemoryRunDB(500), nil
	}
	return repo.NewPostgresRunDB(db), db
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	runs, db := openRuns(ctx, cfg.Database)
	if db != nil {
		defer db.Close()
	}
	limiter, closeLimiter := auth.NewLimiter(ctx, cfg.Redis, cfg.RateLimit)
	defer closeLimiter()

	mux := mux.NewRouter()
	HandleList(mux, cfg, runs, limiter)
	handler := httpx.Recovery(httpx.Logging(CORS(mux)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("Starting server on %s (auth: %s)", addr, cfg.Server.Auth.Type)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
