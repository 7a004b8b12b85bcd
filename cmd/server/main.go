package main // Entry point package

import (
	"context" // bounds the schema bootstrap call
	"log"     // Logging library
	"time"    // session TTL conversion

	"github.com/joho/godotenv"    // loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/food-recipe-finder/internal/classifier" // model server client + labels
	"github.com/iliyamo/food-recipe-finder/internal/config"     // internal config loader
	"github.com/iliyamo/food-recipe-finder/internal/database"   // MySQL connection + schema
	"github.com/iliyamo/food-recipe-finder/internal/handler"    // HTTP handlers
	"github.com/iliyamo/food-recipe-finder/internal/mailer"     // verification mail delivery
	"github.com/iliyamo/food-recipe-finder/internal/queue"      // classification event consumer
	"github.com/iliyamo/food-recipe-finder/internal/recipe"     // recipe dataset
	"github.com/iliyamo/food-recipe-finder/internal/repository" // account store
	"github.com/iliyamo/food-recipe-finder/internal/router"     // route registration
	"github.com/iliyamo/food-recipe-finder/internal/session"    // session store + manager
)

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	// Connect to MySQL and make sure the users table exists.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := database.EnsureSchema(ctx, db); err != nil {
			cancel()
			log.Fatalf("schema: %v", err)
		}
		cancel()
	}

	// Session store: Redis when reachable, in-memory otherwise.
	ttl := time.Duration(cfg.SessionTTLMin) * time.Minute
	var store session.Store
	if rdb := config.NewRedisClient(); rdb != nil {
		store = session.NewRedisStore(rdb, ttl)
		log.Printf("sessions: using redis store")
	} else {
		store = session.NewMemoryStore(ttl)
		log.Printf("sessions: redis unavailable, using in-memory store")
	}
	sessions := session.NewManager(store, cfg.SessionSecret, ttl)

	// Classifier and recipe dataset are loaded once and held read-only.
	labels, err := classifier.LoadLabels(cfg.LabelsPath)
	if err != nil {
		log.Fatalf("labels: %v", err)
	}
	log.Printf("classifier: %d class labels loaded", len(labels))
	cls := classifier.New(cfg.ModelServerURL, labels)

	recipes, err := recipe.LoadCSV(cfg.RecipeCSVPath)
	if err != nil {
		log.Fatalf("recipes: %v", err)
	}
	log.Printf("recipes: %d rows loaded", recipes.Len())

	// Mail: real provider when configured, no-op otherwise.
	var m mailer.Mailer = mailer.Noop{}
	if cfg.MailAPIKey != "" {
		m = mailer.NewHTTPMailer(cfg.MailAPIKey, cfg.MailFrom, cfg.MailAPIURL, cfg.BaseURL)
	} else {
		log.Printf("mailer: MAIL_API_KEY not set, verification mail disabled")
	}

	users := repository.NewUserRepo(db)
	auth := handler.NewAuthHandler(cfg, users, sessions, m)
	upload := handler.NewUploadHandler(cfg, cls, recipes)

	// Background consumer logging classification events from the broker.
	go func() {
		if err := queue.StartClassificationConsumer(); err != nil {
			log.Printf("classification-consumer stopped: %v", err)
		}
	}()

	e := echo.New() // Create Echo instance
	renderer, err := handler.NewRenderer("templates/*.html")
	if err != nil {
		log.Fatalf("templates: %v", err)
	}
	e.Renderer = renderer

	router.RegisterRoutes(e)                              // health check
	router.RegisterAuth(e, auth)                          // signup/login/logout/verify
	router.RegisterUpload(e, upload, sessions, cfg.UploadDir) // protected upload surface

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
