package di

import (
	"go.uber.org/fx"

	"github.com/fourline/orderfront/internal/adapter/storeapi"
	"github.com/fourline/orderfront/internal/app"
	"github.com/fourline/orderfront/internal/config"
	"github.com/fourline/orderfront/internal/logger"
	"github.com/fourline/orderfront/internal/server/http/handlers"
	"github.com/fourline/orderfront/internal/server/http/router"
	"github.com/fourline/orderfront/internal/session"
	"github.com/fourline/orderfront/internal/usecase"
	"github.com/fourline/orderfront/internal/view"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		storeapi.Module,
		session.Module,
		view.Module,
		usecase.Module,
		fx.Provide(func(facade *app.StorefrontFacade) handlers.StorefrontFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
