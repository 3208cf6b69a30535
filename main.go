package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/bfhl-service/modules/api"
	"github.com/example/bfhl-service/modules/compute"
	"github.com/example/bfhl-service/modules/oracle"
	"github.com/example/bfhl-service/modules/stats"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== BFHL Compute Service ===")

	// Create mono application with embedded NATS
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
		mono.WithNATSPort(getEnvInt("NATS_PORT", 4222)),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	computeCfg := compute.DefaultConfig()
	computeCfg.MaxFibonacciN = getEnvInt("MAX_FIBONACCI_N", computeCfg.MaxFibonacciN)
	computeCfg.MaxArraySize = getEnvInt("MAX_ARRAY_SIZE", computeCfg.MaxArraySize)

	oracleCfg := oracle.DefaultConfig()
	oracleCfg.APIKey = os.Getenv("GEMINI_API_KEY")
	oracleCfg.Model = getEnv("GEMINI_MODEL", oracleCfg.Model)
	oracleCfg.BaseURL = getEnv("GEMINI_BASE_URL", oracleCfg.BaseURL)
	oracleCfg.Timeout = time.Duration(getEnvInt("AI_TIMEOUT_SECONDS", 15)) * time.Second
	oracleCfg.MaxQuestionLength = getEnvInt("MAX_QUESTION_LENGTH", oracleCfg.MaxQuestionLength)

	apiCfg := api.Config{
		Port:          getEnv("PORT", "3000"),
		OfficialEmail: getEnv("OFFICIAL_EMAIL", api.DefaultOfficialEmail),
	}

	// Register modules with the framework.
	// Order: independent modules first, then modules with dependencies
	// - stats:   event consumer (usage counters)
	// - compute: core domain (fibonacci, prime, lcm, hcf)
	// - oracle:  upstream AI adapter
	// - api:     driving adapter (Fiber HTTP server)
	app.Register(stats.NewModule(app.Logger()))
	app.Register(compute.NewModule(computeCfg, app.Logger()))
	app.Register(oracle.NewModule(oracleCfg, app.Logger()))
	app.Register(api.NewModule(apiCfg, app.Logger()))

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(apiCfg.Port)

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(port string) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("REST API Endpoints (http://localhost:%s):", port)
	log.Println("  GET    /health        - Health check")
	log.Println("  POST   /bfhl          - fibonacci | prime | lcm | hcf | AI")
	log.Println("  GET    /api/v1/usage  - Usage counters")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
