package main

import (
	"html/template"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"inventario/internal/config"
	"inventario/internal/db"
	"inventario/internal/server"
	"inventario/internal/session"
	"inventario/internal/store"
)

func main() {
	// .env from the current dir or the repo root (when run from cmd/server).
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var logger *zap.Logger
	if cfg.LogLevel == "debug" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	gdb, err := db.Open(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	if err := db.Migrate(gdb); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		logger.Fatal("database handle", zap.Error(err))
	}
	defer sqlDB.Close()

	credentials := store.NewCredentialStore(gdb)
	catalog := store.NewCatalogStore(gdb)

	if err := credentials.EnsureSeedUser(cfg.SeedUsername, cfg.SeedPassword); err != nil {
		logger.Fatal("seed user", zap.Error(err))
	}

	r := gin.New()
	r.Use(server.RequestLogger(logger))
	r.Use(gin.Recovery())

	cookieStore := cookie.NewStore([]byte(cfg.SessionSecret))
	cookieStore.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("inventario_session", cookieStore))

	r.SetFuncMap(template.FuncMap{
		"preco": func(d decimal.Decimal) string { return d.StringFixed(2) },
	})
	r.LoadHTMLGlob("internal/views/*.tmpl")

	r.GET("/health", func(c *gin.Context) {
		if err := sqlDB.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	srv := server.New(catalog, credentials, session.NewManager(), logger)
	srv.Register(r)

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
