package routes

import (
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/shvendra/bookmyworker-back/config"
	"github.com/shvendra/bookmyworker-back/handlers"
	"github.com/shvendra/bookmyworker-back/middlewares"
	"github.com/shvendra/bookmyworker-back/models"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	auth := handlers.NewAuthHandler(cfg)
	admin := handlers.NewAdminHandler(auth)
	otp := handlers.NewOTPHandler(nil)
	req := handlers.NewRequirementHandler()
	interest := handlers.NewInterestHandler()
	att := handlers.NewAttendanceHandler()
	worker := handlers.NewWorkerHandler()
	upload := handlers.NewUploadHandler(cfg)

	authMW := middlewares.RequireAuth(cfg.JWTSecret)

	api := e.Group("/api/v1")

	// ===== Public =====
	api.GET("/health", handlers.Health)
	api.POST("/user/register", auth.Register)
	api.POST("/user/login", auth.Login)
	api.GET("/admin/captcha", admin.Captcha)
	api.POST("/admin/login", admin.Login)
	api.POST("/otp/request", otp.Request)
	api.POST("/otp/verify", otp.Verify)

	// ===== Authenticated =====
	api.GET("/user/logout", auth.Logout, authMW)
	api.GET("/user/getuser", auth.Me, authMW)
	api.POST("/upload/:kind", upload.Upload, authMW)

	// Requirement workflow
	r := api.Group("/requirement", authMW)
	r.POST("/insert", req.Create, middlewares.RequireRole(models.RoleEmployer))
	r.GET("", req.List)
	r.POST("/:id/interest", interest.Express, middlewares.RequireRole(models.RoleAgent))
	r.PUT("/assign", req.Assign, middlewares.RequireRole(models.RoleEmployer, models.RoleAdmin, models.RoleSuperAdmin))
	r.PUT("/status/:ern", req.UpdateStatus, middlewares.RequireRole(models.RoleEmployer, models.RoleAdmin, models.RoleSuperAdmin))

	// Attendance ledger
	a := api.Group("/attendance", authMW)
	a.POST("/add-attendance", att.Add, middlewares.RequireRole(models.RoleAgent))
	a.GET("/get-by-requirement", att.List)
	a.PUT("/update-requ/:id", att.UpdateStatus, middlewares.RequireRole(models.RoleEmployer, models.RoleAdmin, models.RoleSuperAdmin))
	a.GET("/export", att.Export, middlewares.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))

	// Worker directory
	j := api.Group("/job", authMW)
	j.GET("/getall", worker.List)
	j.POST("/post", worker.Create, middlewares.RequireRole(models.RoleAgent, models.RoleEmployer, models.RoleAdmin))
	j.GET("/getmyjobs", worker.Mine)
	j.PUT("/update/:id", worker.Update)
	j.DELETE("/delete/:id", worker.Delete)
	j.GET("/:id", worker.Get)

	// Static serving for uploaded documents
	e.Static("/kyc_doc", filepath.Join(cfg.UploadDir, "kyc_doc"))
	e.Static("/profile_photo", filepath.Join(cfg.UploadDir, "profile_photo"))
}
