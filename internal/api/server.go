package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-manager-api/internal/api/handler"
	"github.com/vfg2006/store-manager-api/internal/api/handler/router"
	"github.com/vfg2006/store-manager-api/internal/config"
	"github.com/vfg2006/store-manager-api/internal/state"
	"github.com/vfg2006/store-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/store-manager-api/internal/usecases/cataloging"
	"github.com/vfg2006/store-manager-api/internal/usecases/channeling"
	"github.com/vfg2006/store-manager-api/internal/usecases/configuring"
	"github.com/vfg2006/store-manager-api/internal/usecases/expensing"
	"github.com/vfg2006/store-manager-api/internal/usecases/exporting"
	"github.com/vfg2006/store-manager-api/internal/usecases/insighting"
	"github.com/vfg2006/store-manager-api/internal/usecases/selling"
	"github.com/vfg2006/store-manager-api/internal/usecases/taxing"
	"github.com/vfg2006/store-manager-api/pkg/middleware"
)

// Services reúne os casos de uso expostos pela API
type Services struct {
	Store         state.Reader
	Authenticator authenticating.Authenticator
	Insighter     insighting.Insighter
	Seller        selling.Seller
	Channeler     channeling.Channeler
	Expenser      expensing.Expenser
	Cataloger     cataloging.Cataloger
	Taxer         taxing.Taxer
	Configurator  configuring.Configurator
	Exporter      exporting.Exporter
	CronJobs      handler.CronJobServices
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services, ownerID func() int, loc *time.Location) (*Server, error) {
	if services.Store == nil || services.Authenticator == nil {
		return nil, fmt.Errorf("servidor requer o estado e o autenticador")
	}

	guard := handler.Guard(middleware.OwnerOnly(ownerID))

	rt := router.New(
		router.WithFallback(handler.NotFound(), handler.MethodNotAllowed()),
		router.WithRoutes(handler.Healthcheck(services.Store)...),
		router.WithRoutes(handler.Authentication(services.Authenticator, guard)...),
		router.WithRoutes(handler.Dashboard(services.Insighter, guard)...),
		router.WithRoutes(handler.Sales(services.Seller, loc, guard)...),
		router.WithRoutes(handler.Channels(services.Channeler, guard)...),
		router.WithRoutes(handler.BusinessExpenses(services.Expenser, guard)...),
		router.WithRoutes(handler.Products(services.Cataloger, guard)...),
		router.WithRoutes(handler.TaxThreshold(services.Taxer, guard)...),
		router.WithRoutes(handler.Settings(services.Configurator, guard)...),
		router.WithRoutes(handler.Export(services.Exporter, guard)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs, guard)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa, usado nos testes de integração da API
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
