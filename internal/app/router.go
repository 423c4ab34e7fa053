package app

import (
	"courseflow_backend/docs"
	"courseflow_backend/internal/config"
	"courseflow_backend/internal/middleware"
	"courseflow_backend/internal/model"

	"courseflow_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerInstructorRoutes(authGroup, c)
	}

	// 3. 管理员相关接口
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)

	// 课程目录
	rg.GET("/courses", c.course.GetCourses)
	rg.GET("/courses/:id", c.course.GetCourse)
	rg.GET("/courses/:id/syllabus", c.course.GetSyllabus)
	rg.GET("/courses/:id/resume", c.course.Resume)

	// 学习进度
	rg.GET("/progress", c.progress.GetAllProgress)
	rg.POST("/courses/:id/enroll", c.progress.Enroll)
	rg.GET("/courses/:id/progress", c.progress.GetProgress)
	rg.PUT("/courses/:id/progress", c.progress.UpdateProgress)
	rg.POST("/courses/:id/lessons/:lessonId/complete", c.progress.CompleteLesson)

	// 测验
	rg.GET("/courses/:id/lessons/:lessonId/quiz", c.quiz.GetQuiz)
	rg.POST("/courses/:id/lessons/:lessonId/quiz", c.quiz.SubmitQuiz)

	// 证书
	rg.GET("/certificates", c.certificate.List)
	rg.POST("/courses/:id/certificate", c.certificate.Request)

	// 笔记
	rg.GET("/notes", c.note.ListNotes)
	rg.POST("/notes", c.note.CreateNote)
	rg.PUT("/notes/:id", c.note.UpdateNote)
	rg.DELETE("/notes/:id", c.note.DeleteNote)
}

func (a *App) registerInstructorRoutes(rg *gin.RouterGroup, c *controllers) {
	instructor := rg.Group("/")
	instructor.Use(middleware.RoleMiddleware(model.Instructor))
	{
		instructor.POST("/upload/video", c.content.UploadVideo)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/courses", c.course.CreateCourse)
		admin.PUT("/courses/:id", c.course.UpdateCourse)
		admin.DELETE("/courses/:id", c.course.DeleteCourse)
	}
}
