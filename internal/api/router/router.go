package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zainaaazz/FullStackWebApplication/config"
	"github.com/zainaaazz/FullStackWebApplication/internal/api/handler"
	"github.com/zainaaazz/FullStackWebApplication/internal/api/middleware"
	"github.com/zainaaazz/FullStackWebApplication/internal/model"
	"github.com/zainaaazz/FullStackWebApplication/pkg/jwt"
	"github.com/zainaaazz/FullStackWebApplication/pkg/redis"
)

const (
	admin   = model.RoleAdmin
	lecture = model.RoleLecture
	student = model.RoleStudent
)

// Setup builds the Gin engine with every route.
// rdb may be nil; the login limiter then lets requests through.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	role := middleware.RoleAuth

	// ── auth ──
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(rdb, cfg.Auth.LoginRateLimit, cfg.Auth.LoginRateWindow, logger), h.Auth.Login)
		// tokens are stateless; an expired one must still be able to log out
		auth.POST("/logout", h.Auth.Logout)
	}

	authorized := r.Group("")
	authorized.Use(middleware.JWTAuth(jwtMgr))
	{
		authorized.POST("/auth/register", role(admin), h.Auth.Register)

		users := authorized.Group("/users")
		{
			users.GET("", role(admin), h.User.ListUsers)
			users.POST("", role(admin), h.User.CreateUser)
			users.GET("/:id", role(admin, lecture), h.User.GetUser)
			users.PUT("/:id", role(admin), h.User.UpdateUser)
			users.DELETE("/:id", role(admin), h.User.DeleteUser)
		}

		courses := authorized.Group("/courses", role(admin))
		{
			courses.GET("", h.Course.ListCourses)
			courses.POST("", h.Course.CreateCourse)
			courses.GET("/:id", h.Course.GetCourse)
			courses.PUT("/:id", h.Course.UpdateCourse)
			courses.DELETE("/:id", h.Course.DeleteCourse)
		}

		modules := authorized.Group("/modules")
		{
			modules.GET("", role(admin, lecture), h.Module.ListModules)
			modules.GET("/:id", role(admin, lecture), h.Module.GetModule)
			modules.POST("", role(admin), h.Module.CreateModule)
			modules.PUT("/:id", role(admin), h.Module.UpdateModule)
			modules.DELETE("/:id", role(admin), h.Module.DeleteModule)
		}

		// both paths are used by existing clients
		for _, path := range []string{"/module-on-course", "/modulesOnCourse"} {
			links := authorized.Group(path, role(admin))
			links.GET("", h.ModuleOnCourse.ListLinks)
			links.POST("", h.ModuleOnCourse.AddModule)
			links.DELETE("/:id", h.ModuleOnCourse.RemoveModule)
		}

		assignments := authorized.Group("/assignments")
		{
			assignments.GET("", role(admin, lecture, student), h.Assignment.ListAssignments)
			assignments.GET("/:id", role(admin, lecture, student), h.Assignment.GetAssignment)
			assignments.GET("/module/:ModuleID", role(admin, lecture, student), h.Assignment.ListByModule)
			assignments.GET("/module/:ModuleID/calendar", role(admin, lecture, student), h.Export.ModuleCalendar)
			assignments.POST("", role(admin, lecture), h.Assignment.CreateAssignment)
			assignments.PUT("/:id", role(admin, lecture), h.Assignment.UpdateAssignment)
			assignments.DELETE("/:id", role(admin, lecture), h.Assignment.DeleteAssignment)
		}

		enrollments := authorized.Group("/enrollments")
		{
			enrollments.GET("", role(admin, lecture, student), h.Enrollment.ListEnrollments)
			enrollments.GET("/:id", role(admin, lecture, student), h.Enrollment.GetEnrollment)
			enrollments.POST("", role(admin, lecture), h.Enrollment.Enroll)
			enrollments.DELETE("/:id", role(admin, lecture), h.Enrollment.RemoveEnrollment)
		}

		submissions := authorized.Group("/submissions")
		{
			submissions.POST("", role(admin, student), h.Submission.Submit)
			submissions.GET("", role(admin, lecture), h.Submission.ListSubmissions)
			submissions.GET("/:id", role(admin, lecture, student), h.Submission.GetSubmission)
			submissions.PUT("/:id", role(admin), h.Submission.UpdateSubmission)
			submissions.DELETE("/:id", role(admin, student), h.Submission.DeleteSubmission)
		}

		feedbacks := authorized.Group("/feedbacks", role(admin, lecture))
		{
			feedbacks.GET("/export", h.Export.ExportFeedback)
			feedbacks.GET("", h.Feedback.ListFeedback)
			feedbacks.POST("", h.Feedback.ProvideFeedback)
			feedbacks.GET("/:id", h.Feedback.GetFeedback)
			feedbacks.PUT("/:id", h.Feedback.UpdateFeedback)
			feedbacks.DELETE("/:id", h.Feedback.DeleteFeedback)
		}

		videos := authorized.Group("/videos")
		{
			videos.POST("", role(admin, student),
				middleware.UploadDeadline(cfg.Server.UploadTimeout, cfg.Server.UploadTimeout+cfg.Media.TranscodeTimeout+time.Minute, logger),
				middleware.BodyLimit(cfg.Server.MaxUploadMB<<20),
				h.Video.UploadVideo,
			)
			videos.GET("", role(admin, lecture), h.Video.ListVideos)
			videos.GET("/:id", role(admin, lecture, student), h.Video.GetVideo)
			videos.DELETE("/:id", role(admin, student), h.Video.DeleteVideo)
		}

		api := authorized.Group("/api")
		{
			api.GET("/files/download/:id", role(admin, lecture, student), h.File.Download)
			api.GET("/files/stream/:id", role(admin, lecture), h.File.Stream)

			api.GET("/roles", role(admin), h.Role.ListRoles)
			api.PUT("/roles/:id", role(admin), h.Role.AssignRole)
		}
	}

	return r
}
