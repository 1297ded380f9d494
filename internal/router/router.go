package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/taskmaster/taskmaster/api/handler"
)

type Handlers struct {
	Auth   *apiHandler.AuthHandler
	Task   *apiHandler.TaskHandler
	Health *apiHandler.HealthHandler
}

// Middleware wraps a handler; the router applies auth to protected routes only.
type Middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler

func New(handlers Handlers, auth Middleware, apiKey Middleware) *router.Router {
	r := router.New()

	if apiKey == nil {
		apiKey = passthrough
	}
	if auth == nil {
		auth = passthrough
	}

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/api/v1/auth/login", apiKey(handlers.Auth.Login))
	r.POST("/api/v1/auth/refresh", apiKey(handlers.Auth.Refresh))
	r.POST("/api/v1/auth/logout", apiKey(handlers.Auth.Logout))

	// Protected routes
	r.GET("/api/v1/tasks", apiKey(auth(handlers.Task.GetTasks)))
	r.POST("/api/v1/tasks", apiKey(auth(handlers.Task.CreateTask)))
	r.PUT("/api/v1/tasks/{id}", apiKey(auth(handlers.Task.UpdateTask)))
	r.PATCH("/api/v1/tasks/{id}/status", apiKey(auth(handlers.Task.UpdateStatus)))
	r.DELETE("/api/v1/tasks/{id}", apiKey(auth(handlers.Task.DeleteTask)))

	return r
}

func passthrough(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return next
}
