package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	apirest "github.com/arcanusdsp/server/api/rest"
	"github.com/arcanusdsp/server/audit"
	"github.com/arcanusdsp/server/cache"
	"github.com/arcanusdsp/server/config"
	"github.com/arcanusdsp/server/darkstar"
	dbadapter "github.com/arcanusdsp/server/db"
	mw "github.com/arcanusdsp/server/middleware"
	"github.com/arcanusdsp/server/model"
	"github.com/arcanusdsp/server/news"
	"github.com/arcanusdsp/server/plugin"
	"github.com/arcanusdsp/server/plugin/hook"
	"github.com/arcanusdsp/server/scheduler"
	"github.com/arcanusdsp/server/status"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	cfgPath := "config/config.yaml"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// ---- Logger ----
	var logger *zap.Logger
	var logErr error
	if cfg.Server.Debug {
		logger, logErr = zap.NewDevelopment()
	} else {
		logger, logErr = zap.NewProduction()
	}
	if logErr != nil {
		log.Fatalf("logger: %v", logErr)
	}
	defer logger.Sync()

	if cfg.Server.AdminKey == "" {
		logger.Warn("server.admin_key is not set; admin endpoints are disabled")
	}
	if cfg.Security.JWTSecret == "" {
		logger.Fatal("security.jwt_secret must be set")
	}

	// ---- Database ----
	db, err := dbadapter.Open(cfg.Database)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if cfg.Database.Mode == dbadapter.ModeSQLite {
		// a local sqlite file stands in for the game database
		if err := model.MigrateDarkstar(db); err != nil {
			log.Fatalf("db migrate darkstar: %v", err)
		}
	}
	if err := model.MigrateOwned(db); err != nil {
		log.Fatalf("db migrate: %v", err)
	}
	logger.Info("DB initialized", zap.String("mode", cfg.Database.Mode))

	// ---- Cache ----
	c, err := cache.NewCache(cache.CacheConfig{
		RedisAddr:       cfg.Cache.RedisAddr,
		RedisPassword:   cfg.Cache.RedisPassword,
		RedisDB:         cfg.Cache.RedisDB,
		LocalGCInterval: cfg.Cache.LocalGCInterval,
	})
	if err != nil {
		log.Fatalf("cache: %v", err)
	}
	defer c.Close()
	results := cache.NewResults(c, logger)
	logger.Info("Cache initialized", zap.Bool("redis", cfg.Cache.RedisAddr != ""))

	// ---- Hooks / Audit ----
	hooks := hook.NewCenter()
	if cfg.Audit.Enabled {
		auditSvc := audit.New(db, logger)
		defer auditSvc.Stop()
		auditSvc.Subscribe(hooks)
	}

	// ---- Services ----
	ds := darkstar.NewService(db, darkstar.Policy{
		Characters: darkstar.NewBlocklist(cfg.Characters.Blocked),
		Monsters:   darkstar.NewBlocklist(cfg.Monsters.Blocked),
		Bcnms:      darkstar.NewBlocklist(cfg.Bcnms.Blocked),
	}, logger)
	newsSvc := news.NewService(cfg.News, logger)
	checker := status.NewChecker(cfg.Darkstar, logger)

	// ---- Scheduler ----
	sched := scheduler.New(logger)
	defer sched.Stop()
	if cfg.Items.IndexRefresh > 0 {
		sched.Every("items.reindex", cfg.Items.IndexRefresh, ds.RebuildItemIndex)
	}

	// ---- Gin HTTP Server ----
	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	sessions := mw.NewSessions(cfg.Security, c, ds.Accounts, logger)
	r := gin.New()
	r.Use(mw.TraceID(), mw.Logger(logger), mw.Recovery(logger))
	r.Use(mw.RateLimit(rate.Limit(cfg.Security.RateLimitRPS), cfg.Security.RateLimitBurst))
	r.Use(sessions.Load())

	html := cfg.Server.TemplatesDir != ""
	if html {
		r.LoadHTMLGlob(filepath.Join(cfg.Server.TemplatesDir, "**", "*.html"))
	}
	if cfg.Server.StaticDir != "" {
		r.Static("/static", cfg.Server.StaticDir)
	}

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	host := plugin.NewHost(r, hooks, logger)
	pages := apirest.NewPages(host.Menus, sessions, cfg.Server.Title, html)
	ttl := cfg.Cache.ResultTTL
	handlers := &apirest.Handlers{
		Site:       apirest.NewSiteHandler(pages),
		Status:     apirest.NewStatusHandler(newsSvc, checker, results, logger),
		Accounts:   apirest.NewAccountHandler(ds.Accounts, ds.Characters, sessions, pages, hooks, logger),
		Characters: apirest.NewCharacterHandler(ds.Characters, results, hooks, ttl, logger),
		Items:      apirest.NewItemHandler(ds.Items, results, ttl, logger),
		Monsters:   apirest.NewMonsterHandler(ds.Monsters, results, ttl, logger),
		Bcnms:      apirest.NewBcnmHandler(ds.Bcnms, results, ttl, logger),
		Spells:     apirest.NewSpellHandler(ds.Spells, logger),
	}

	initCtx, cancelInit := context.WithTimeout(context.Background(), time.Minute)
	err = host.Load(initCtx, []plugin.Service{ds, newsSvc}, apirest.Plugins(handlers))
	cancelInit()
	if err != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}

	adminH := apirest.NewAdminHandler(ds, host, sched, logger)
	adminH.Routes(r.Group("/admin",
		mw.IPWhitelist(cfg.Server.AdminIPs, logger),
		apirest.AdminAuth(cfg.Server.AdminKey),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		logger.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown incomplete", zap.Error(err))
	}
}
