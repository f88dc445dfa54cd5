// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"trailforge/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RouteHandler *handler.RouteHandler
	DraftHandler *handler.DraftHandler
	AuthHandler  *handler.AuthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	routeHandler *handler.RouteHandler
	draftHandler *handler.DraftHandler
	authHandler  *handler.AuthHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		routeHandler: params.RouteHandler,
		draftHandler: params.DraftHandler,
		authHandler:  params.AuthHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session token routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/token", r.authHandler.SetToken)
		authGroup.DELETE("/token", r.authHandler.ClearToken)
	}

	// Route collection routes
	routeGroup := e.Group("/routes")
	{
		routeGroup.GET("", r.routeHandler.ListRoutes)
		routeGroup.POST("", r.routeHandler.CreateRoute)
		routeGroup.POST("/refresh", r.routeHandler.RefreshRoutes)
		routeGroup.GET("/selected", r.routeHandler.SelectedRoute)
		routeGroup.POST("/qr/resolve", r.routeHandler.ResolveRouteQR)

		// Metadata lookups for the save form
		routeGroup.GET("/regions", r.routeHandler.Regions)
		routeGroup.GET("/trek-names", r.routeHandler.TrekNames)
		routeGroup.GET("/difficulty-levels", r.routeHandler.DifficultyLevels)

		routeGroup.GET("/:id", r.routeHandler.GetRoute)
		routeGroup.PUT("/:id", r.routeHandler.UpdateRoute)
		routeGroup.DELETE("/:id", r.routeHandler.DeleteRoute)
		routeGroup.POST("/:id/select", r.routeHandler.SelectRoute)
		routeGroup.GET("/:id/qr", r.routeHandler.GenerateRouteQR)
	}

	// Draft session routes
	draftGroup := e.Group("/drafts")
	{
		draftGroup.POST("", r.draftHandler.StartDraw)
		draftGroup.POST("/edit", r.draftHandler.StartEdit)

		draftGroup.GET("/:id", r.draftHandler.View)
		draftGroup.DELETE("/:id", r.draftHandler.Discard)

		draftGroup.POST("/:id/points", r.draftHandler.AppendPoint)
		draftGroup.POST("/:id/points/:index", r.draftHandler.InsertPoint)
		draftGroup.POST("/:id/points/:index/after", r.draftHandler.InsertAfter)
		draftGroup.PUT("/:id/points/:index", r.draftHandler.UpdatePoint)
		draftGroup.DELETE("/:id/points/:index", r.draftHandler.DeletePoint)
		draftGroup.POST("/:id/points/:index/move", r.draftHandler.MovePoint)

		draftGroup.POST("/:id/undo", r.draftHandler.UndoLast)
		draftGroup.POST("/:id/clear", r.draftHandler.ClearPoints)

		draftGroup.POST("/:id/focus/:index", r.draftHandler.Focus)
		draftGroup.GET("/:id/focus", r.draftHandler.Focused)
		draftGroup.GET("/:id/bound", r.draftHandler.Bound)

		draftGroup.POST("/:id/commit", r.draftHandler.Commit)
		draftGroup.POST("/:id/commit-update", r.draftHandler.CommitUpdate)
	}
}
