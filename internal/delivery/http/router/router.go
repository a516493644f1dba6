// Package router contains routing setup for the wizard HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WizardHandler *handler.WizardHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	wizardHandler *handler.WizardHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		wizardHandler: params.WizardHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	wizard := e.Group("/wizard/drafts")
	{
		wizard.POST("", r.wizardHandler.StartDraft)
		wizard.GET("/:id", r.wizardHandler.GetDraft)

		wizard.PATCH("/:id/fields", r.wizardHandler.SetField)
		wizard.PATCH("/:id/address", r.wizardHandler.SetAddressField)
		wizard.PATCH("/:id/hours", r.wizardHandler.SetHourField)

		wizard.POST("/:id/files/:slot", r.wizardHandler.UploadFile)
		wizard.DELETE("/:id/files/:slot", r.wizardHandler.RemoveFile)

		wizard.POST("/:id/next", r.wizardHandler.Next)
		wizard.POST("/:id/back", r.wizardHandler.Back)
		wizard.POST("/:id/submit", r.wizardHandler.Submit)
	}
}
