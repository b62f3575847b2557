package http

import (
	"context"
	stdhttp "net/http"

	"teesheet-service/internal/auth"
	"teesheet-service/internal/config"
	"teesheet-service/internal/http/handler"
	"teesheet-service/internal/http/middleware"
	"teesheet-service/internal/rbac"
	"teesheet-service/internal/rbac/presets"
	"teesheet-service/internal/repository"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

const (
	jsonKeyStatus    = "status"
	statusOK         = "ok"
	requestBodyLimit = "1M"
)

type ServerDependencies struct {
	Config         *config.Config
	SystemUserRepo repository.SystemUserRepository
	CourseUserRepo repository.CourseUserRepository
	GolfCourseRepo repository.GolfCourseRepository
	DeviceRepo     repository.DeviceRepository
	BookingRepo    repository.BookingRepository
	CheckInRepo    repository.CheckInOrderRepository
	TeeTimeRepo    repository.TeeTimeRepository
	TokenService   *auth.TokenService
	AuthMiddleware *auth.Middleware
	RoleChecker    *rbac.Checker
}

type Server struct {
	echo *echo.Echo
	deps *ServerDependencies
}

func NewServer(deps *ServerDependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = CustomHTTPErrorHandler

	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	// Request ID first so all logs carry it
	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit(requestBodyLimit))

	// The general limiter runs after authentication so its buckets key on
	// the resolved principal; public routes carry it directly and bucket
	// by IP. Credential endpoints get the tighter bucket.
	globalRateLimiter := middleware.NewGlobalRateLimiter()
	limitAPI := globalRateLimiter.Middleware()
	strictRateLimiter := middleware.NewStrictRateLimiter()

	authHandler := handler.NewAuthHandler(deps.SystemUserRepo, deps.TokenService)
	systemUserHandler := handler.NewSystemUserHandler(deps.SystemUserRepo)
	golfCourseHandler := handler.NewGolfCourseHandler(deps.GolfCourseRepo)
	courseUserAdminHandler := handler.NewCourseUserAdminHandler(deps.CourseUserRepo, deps.RoleChecker)
	deviceHandler := handler.NewDeviceHandler(deps.DeviceRepo)
	courseAuthHandler := handler.NewCourseAuthHandler(deps.CourseUserRepo, deps.GolfCourseRepo, deps.TokenService)
	staffHandler := handler.NewStaffHandler(deps.CourseUserRepo, deps.RoleChecker)
	settingsHandler := handler.NewSettingsHandler(deps.GolfCourseRepo)
	bookingHandler := handler.NewBookingHandler(deps.BookingRepo)
	checkInHandler := handler.NewCheckInHandler(deps.CheckInRepo)
	teeTimeHandler := handler.NewTeeTimeHandler(deps.TeeTimeRepo)

	e.GET("/health", healthCheck, limitAPI)

	// System admin authentication
	e.POST("/auth/login", authHandler.Login, strictRateLimiter.Middleware())
	e.POST("/auth/logout", authHandler.Logout, limitAPI)
	e.GET("/auth/profile", authHandler.Profile, deps.AuthMiddleware.RequireSystem(), limitAPI)
	e.POST("/auth/create-user", authHandler.CreateUser, deps.AuthMiddleware.RequireSystem(), limitAPI)

	// System admin management surface
	admin := e.Group("/api/admin")
	admin.Use(deps.AuthMiddleware.RequireSystem())
	admin.Use(limitAPI)

	admin.GET("/users", systemUserHandler.List)
	admin.GET("/users/:id", systemUserHandler.Get)
	admin.PUT("/users/:id", systemUserHandler.Update)
	admin.DELETE("/users/:id", systemUserHandler.Delete)

	admin.GET("/golf-courses", golfCourseHandler.List)
	admin.POST("/golf-courses", golfCourseHandler.Create)
	admin.GET("/golf-courses/:id", golfCourseHandler.Get)
	admin.PUT("/golf-courses/:id", golfCourseHandler.Update)
	admin.DELETE("/golf-courses/:id", golfCourseHandler.Delete)

	admin.GET("/golf-course-users", courseUserAdminHandler.List)
	admin.POST("/golf-course-users", courseUserAdminHandler.Create)
	admin.PUT("/golf-course-users/:id", courseUserAdminHandler.Update)
	admin.DELETE("/golf-course-users/:id", courseUserAdminHandler.Delete)

	admin.GET("/devices", deviceHandler.List)
	admin.POST("/devices", deviceHandler.Create)
	admin.GET("/devices/:id", deviceHandler.Get)
	admin.PUT("/devices/:id", deviceHandler.Update)
	admin.DELETE("/devices/:id", deviceHandler.Delete)

	// Course staff authentication; login precedes auth so it only gets
	// the strict limiter
	e.POST("/api/course/:course_id/auth/login", courseAuthHandler.Login, strictRateLimiter.Middleware())
	e.POST("/api/course/:course_id/auth/logout", courseAuthHandler.Logout, limitAPI)

	// Course-scoped surface, tenant-checked on every request
	courseAPI := e.Group("/api/course/:course_id")
	courseAPI.Use(deps.AuthMiddleware.RequireCourse())
	courseAPI.Use(limitAPI)

	manager := deps.AuthMiddleware.RequireCourseRole(presets.RoleManager)

	courseAPI.GET("/users", staffHandler.List, manager)
	courseAPI.POST("/users", staffHandler.Create, manager)
	courseAPI.PUT("/users/:id", staffHandler.Update, manager)
	courseAPI.DELETE("/users/:id", staffHandler.Delete, manager)

	courseAPI.GET("/settings", settingsHandler.Get)
	courseAPI.PUT("/settings", settingsHandler.Update, manager)

	courseAPI.GET("/bookings", bookingHandler.List)
	courseAPI.GET("/checkin-orders", checkInHandler.List)
	courseAPI.GET("/tee-time-sheet", teeTimeHandler.List)

	return &Server{
		echo: e,
		deps: deps,
	}
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo exposes the router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func healthCheck(c echo.Context) error {
	return c.JSON(stdhttp.StatusOK, map[string]string{
		jsonKeyStatus: statusOK,
	})
}
