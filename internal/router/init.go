package router

import (
	"github.com/gin-gonic/gin"

	app "github.com/oksasatya/go-social-network/internal/application"
	"github.com/oksasatya/go-social-network/internal/container"
	repo "github.com/oksasatya/go-social-network/internal/domain/repository"
	mongoinfra "github.com/oksasatya/go-social-network/internal/infrastructure/mongodb"
	pginfra "github.com/oksasatya/go-social-network/internal/infrastructure/postgres"
	"github.com/oksasatya/go-social-network/internal/infrastructure/redisstore"
	handlers "github.com/oksasatya/go-social-network/internal/interface/http"
	"github.com/oksasatya/go-social-network/internal/interface/middleware"
	"github.com/oksasatya/go-social-network/internal/router/modules"
	"github.com/oksasatya/go-social-network/pkg/validation"
)

// Stores groups the repositories the modules are built from.
type Stores struct {
	Users    repo.UserRepository
	Profiles repo.ProfileRepository
	Posts    repo.PostRepository
	Audit    repo.AuditRepository
	Denylist repo.TokenDenylist // nil when revocation is off
	Mail     app.JobPublisher   // nil when email sending is off
}

func buildStores() Stores {
	cfg := container.GetConfig()
	db := container.GetMongo()
	s := Stores{
		Users:    mongoinfra.NewUserRepository(db, cfg.MongoTimeout),
		Profiles: mongoinfra.NewProfileRepository(db, cfg.MongoTimeout),
		Posts:    mongoinfra.NewPostRepository(db, cfg.MongoTimeout),
		Audit:    pginfra.NopAuditRepository{},
	}
	if pool := container.GetPGPool(); pool != nil {
		s.Audit = pginfra.NewAuditRepository(pool)
	}
	if rdb := container.GetRedis(); rdb != nil && cfg.TokenRevocationEnabled {
		s.Denylist = redisstore.NewTokenDenylist(rdb)
	}
	if pub := container.GetRabbitPub(); pub != nil {
		s.Mail = pub
	}
	return s
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	AddModules(r, buildStores())
}

// AddModules wires services, handlers and routes on top of the given stores.
func AddModules(r *Registry, s Stores) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	notifier := &app.Notifier{
		Audit:       s.Audit,
		Mail:        s.Mail,
		AppName:     cfg.AppName,
		CompanyName: cfg.CompanyName,
		SupportURL:  cfg.SupportURL,
		Logger:      logger,
	}
	users := app.NewUserService(s.Users, jwt, s.Denylist, notifier, logger)
	profiles := app.NewProfileService(s.Profiles, s.Users, logger)
	posts := app.NewPostService(s.Posts, s.Users, logger)
	accounts := app.NewAccountService(s.Users, s.Profiles, s.Posts, s.Denylist, notifier, logger)

	auth := middleware.Auth(jwt, s.Denylist, logger)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(users, logger), auth))
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(profiles, accounts, logger), auth))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(posts, logger), auth))
	if cfg.MetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}

// NewEngine builds the gin engine with the global middleware every route shares.
func NewEngine(corsMW gin.HandlerFunc, accessLog bool) *gin.Engine {
	validation.Init()
	e := gin.New()
	e.Use(gin.Recovery())
	e.Use(middleware.RequestIDMiddleware(), middleware.RealIP(), middleware.Metrics())
	if corsMW != nil {
		e.Use(corsMW)
	}
	if accessLog {
		e.Use(gin.Logger())
	}
	return e
}
