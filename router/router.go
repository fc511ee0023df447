package router

import (
	"github.com/labstack/echo/v4"

	"plantbuddy/pkg/middleware"
)

func New(
	e *echo.Echo,
	plantCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
		Archive(echo.Context) error
		Revive(echo.Context) error
	},
	careCtrl interface {
		ListTasks(echo.Context) error
		ApplyAction(echo.Context) error
		UndoLastAction(echo.Context) error
		ListHistory(echo.Context) error
	},
	schedCtrl interface {
		List(echo.Context) error
		Patch(echo.Context) error
	},
	tipCtrl interface {
		IngestURL(echo.Context) error
		List(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api.GET("/tasks", careCtrl.ListTasks)

	api.POST("/plants", plantCtrl.Create)
	api.GET("/plants", plantCtrl.List)
	api.GET("/plants/:id", plantCtrl.Get)
	api.POST("/plants/:id/archive", plantCtrl.Archive)
	api.POST("/plants/:id/revive", plantCtrl.Revive)

	g := e.Group("/plants")
	g.POST("/:id/actions", careCtrl.ApplyAction)
	g.POST("/:id/undo", careCtrl.UndoLastAction)
	g.GET("/:id/history", careCtrl.ListHistory)

	api.GET("/plants/:id/schedules", schedCtrl.List)
	api.PATCH("/schedules/:schedule_id", schedCtrl.Patch)

	api.POST("/tips/ingest/url", tipCtrl.IngestURL)
	api.GET("/tips", tipCtrl.List)
	return e
}
