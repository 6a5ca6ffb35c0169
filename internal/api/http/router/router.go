package router

import (
	"github.com/gin-gonic/gin"

	"github.com/bookly-app/bookly-server/internal/api/http/handler"
	"github.com/bookly-app/bookly-server/internal/api/http/middleware"
	"github.com/bookly-app/bookly-server/internal/logger"
	"github.com/bookly-app/bookly-server/internal/model"
)

const apiPrefix = "/api/v1"

// Router wires handlers and middleware into a gin engine.
type Router struct {
	authHandler  *handler.Auth
	bookHandler  *handler.Book
	authenticate *middleware.Authenticate
	logger       *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	bookService handler.BookService,
	tokens model.TokenManager,
	blocklist model.TokenBlocklist,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authHandler:  handler.NewAuth(authService, contextManager, logger),
		bookHandler:  handler.NewBook(bookService, logger),
		authenticate: middleware.NewAuthenticate(tokens, blocklist, contextManager, logger),
		logger:       logger,
	}
}

// Register builds the route tree. Signup and login are open; refresh_token
// requires a refresh token; everything else requires an access token.
func (r *Router) Register() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	e := gin.New()
	e.Use(middleware.NewLogging(r.logger).Handle(), gin.Recovery())

	v1 := e.Group(apiPrefix)

	auth := v1.Group("/auth")
	{
		auth.POST("/signup", r.authHandler.Signup)
		auth.POST("/login", r.authHandler.Login)
		auth.GET("/refresh_token", r.authenticate.RequireRefresh(), r.authHandler.RefreshToken)
		auth.GET("/logout", r.authenticate.RequireAccess(), r.authHandler.Logout)
	}

	books := v1.Group("/books", r.authenticate.RequireAccess())
	{
		books.GET("", r.bookHandler.List)
		books.POST("", r.bookHandler.Create)
		books.GET("/:id", r.bookHandler.Get)
		books.PUT("/:id", r.bookHandler.Update)
		books.DELETE("/:id", r.bookHandler.Delete)
	}

	return e
}
