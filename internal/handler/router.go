package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shareit/internal/handler/api"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type handlers struct {
	Users    *api.UserHandler
	Items    *api.ItemHandler
	Bookings *api.BookingHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, users *api.UserHandler, items *api.ItemHandler, bookings *api.BookingHandler, actor *middleware.ActorMiddleware) {
	reqdto.RegisterValidations()
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers{Users: users, Items: items, Bookings: bookings}, actor)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// outermost, so panics in later middleware are caught too
	engine.Use(middleware.Recovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, cfg.Auth))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h handlers, actor *middleware.ActorMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireActor := []gin.HandlerFunc{actor.RequireActor()}

	users := engine.Group("/users")
	addRoutes(users, []route{
		{Method: http.MethodPost, Path: "", Handler: h.Users.Create},
		{Method: http.MethodGet, Path: "", Handler: h.Users.List},
		{Method: http.MethodGet, Path: "/:userId", Handler: h.Users.Get},
		{Method: http.MethodPatch, Path: "/:userId", Handler: h.Users.Update},
		{Method: http.MethodDelete, Path: "/:userId", Handler: h.Users.Delete},
	})

	// search is public; everything else acts on behalf of a user
	items := engine.Group("/items")
	addRoutes(items, []route{
		{Method: http.MethodGet, Path: "/search", Handler: h.Items.Search},
		{Method: http.MethodPost, Path: "", Handler: h.Items.Create, Mw: requireActor},
		{Method: http.MethodGet, Path: "", Handler: h.Items.ListOwn, Mw: requireActor},
		{Method: http.MethodGet, Path: "/:itemId", Handler: h.Items.Get, Mw: requireActor},
		{Method: http.MethodPatch, Path: "/:itemId", Handler: h.Items.Update, Mw: requireActor},
		{Method: http.MethodDelete, Path: "/:itemId", Handler: h.Items.Delete, Mw: requireActor},
		{Method: http.MethodPost, Path: "/:itemId/comment", Handler: h.Items.AddComment, Mw: requireActor},
	})

	bookings := engine.Group("/bookings")
	bookings.Use(requireActor...)
	addRoutes(bookings, []route{
		{Method: http.MethodPost, Path: "", Handler: h.Bookings.Create},
		{Method: http.MethodGet, Path: "", Handler: h.Bookings.ListByBooker},
		{Method: http.MethodGet, Path: "/owner", Handler: h.Bookings.ListByOwner},
		{Method: http.MethodGet, Path: "/:bookingId", Handler: h.Bookings.Get},
		{Method: http.MethodPatch, Path: "/:bookingId", Handler: h.Bookings.Decide},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
