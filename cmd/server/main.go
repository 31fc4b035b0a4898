package main

import (
	"log"

	"user-directory-api/internal/config"
	"user-directory-api/internal/database"
	"user-directory-api/internal/handlers"
	"user-directory-api/internal/i18n"
	"user-directory-api/internal/realtime"
	"user-directory-api/internal/routes"
	"user-directory-api/internal/usercache"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}

	catalog, err := i18n.LoadCatalog(cfg.I18n.MessagesDir)
	if err != nil {
		log.Fatal("Failed to load message catalog: ", err)
	}
	log.Printf("Message catalog loaded, languages: %v", catalog.Languages())

	// One cache instance per facade, sized from config and fixed for the
	// life of the process.
	users, err := usercache.New(cfg.Cache.UserCapacity)
	if err != nil {
		log.Fatal("Failed to build user cache: ", err)
	}
	translator, err := i18n.NewTranslator(catalog, cfg.I18n.DefaultLanguage, cfg.Cache.TranslationCapacity)
	if err != nil {
		log.Fatal("Failed to build translator: ", err)
	}

	hub := realtime.NewHub()
	h := handlers.New(db, users, translator, hub)
	ginRoutes := routes.SetupRoutes(h)

	log.Printf("Server starting on %s", cfg.Addr())
	log.Println("API endpoints:")
	log.Println("  POST   /api/login")
	log.Println("  POST   /api/register")
	log.Println("  GET    /api/messages/:key")
	log.Println("  GET    /api/users")
	log.Println("  GET    /api/users/:id")
	log.Println("  PUT    /api/users/:id")
	log.Println("  DELETE /api/users/:id")
	log.Println("  GET    /api/cache/stats")
	log.Println("  GET    /health")

	if err := ginRoutes.Run(cfg.Addr()); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
