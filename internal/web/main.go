// Package web wires the HTTP API: the fiber app, the access log, the
// bearer token guard and all resource handlers under the /api prefix.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/auth"
	"github.com/inkpress/inkpress/internal/config"
	fiberlogger "github.com/inkpress/inkpress/internal/logger/adapter/fiber"
	"github.com/inkpress/inkpress/internal/token"
	"github.com/inkpress/inkpress/internal/upload"
	"github.com/inkpress/inkpress/internal/web/handler/category"
	"github.com/inkpress/inkpress/internal/web/handler/comment"
	"github.com/inkpress/inkpress/internal/web/handler/content"
	"github.com/inkpress/inkpress/internal/web/handler/revision"
	"github.com/inkpress/inkpress/internal/web/handler/setting"
	"github.com/inkpress/inkpress/internal/web/handler/tag"
	"github.com/inkpress/inkpress/internal/web/handler/user"
	authmw "github.com/inkpress/inkpress/internal/web/middleware/auth"
)

const (
	// APIPath is the prefix of all API routes.
	APIPath = "/api"

	// CheckAliveURI is the liveness endpoint used by load balancers.
	CheckAliveURI = "/checkalive"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
	authService  *auth.Service
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			BodyLimit:      upload.MaxFileSize + (1 << 20),
		},
	)

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAliveURI,
	}))

	tokens := token.NewIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTL))
	authService := auth.NewService(db, tokens)
	uploads := upload.NewStore(cfg.Uploads.Dir, cfg.Uploads.PublicPath)
	guard := authmw.New(db, tokens)

	service := &Service{
		cfg:         cfg,
		App:         app,
		db:          db,
		authService: authService,
	}
	service.alive.Store(true)

	// uploaded files are served as-is under their public path
	app.Static(uploads.PublicPath(), uploads.Dir())

	api := app.Group(APIPath)

	// init handlers (they register their own routes)
	if err := user.Handler.Init(api, cfg, db, authService, uploads, guard); err != nil {
		log.Fatal().Err(err).Msg("failed to init user handler")
	}
	if err := category.Handler.Init(api, cfg, db, guard); err != nil {
		log.Fatal().Err(err).Msg("failed to init category handler")
	}
	if err := tag.Handler.Init(api, cfg, db, guard); err != nil {
		log.Fatal().Err(err).Msg("failed to init tag handler")
	}
	if err := content.Handler.Init(api, cfg, db, uploads, guard); err != nil {
		log.Fatal().Err(err).Msg("failed to init content handler")
	}
	if err := revision.Handler.Init(api, cfg, db, guard); err != nil {
		log.Fatal().Err(err).Msg("failed to init revision handler")
	}
	if err := comment.Handler.Init(api, cfg, db, guard); err != nil {
		log.Fatal().Err(err).Msg("failed to init comment handler")
	}
	if err := setting.Handler.Init(api, cfg, db, guard); err != nil {
		log.Fatal().Err(err).Msg("failed to init setting handler")
	}

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get(CheckAliveURI, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})

	return service
}
