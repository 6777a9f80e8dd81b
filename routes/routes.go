package routes

import (
	"time"

	"github.com/prospermen/Belief-life/config"
	"github.com/prospermen/Belief-life/controllers"
	"github.com/prospermen/Belief-life/middleware"
	"github.com/prospermen/Belief-life/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, conf config.Config, store services.RecordStore) {
	insightService := services.NewInsightService(store, insightOptions(conf))
	statsService := services.NewStatsService(store, insightService)

	insightController := controllers.NewInsightController(
		insightService, time.Duration(conf.InsightCacheTTL)*time.Second)
	statsController := controllers.NewStatsController(statsService)

	// 需要用户标识的路由
	private := r.Group("/api/v1")
	private.Use(middleware.IdentityMiddleware())
	{
		private.GET("/insights", insightController.GetInsights)
		private.GET("/emotions/stats", statsController.GetEmotionStats)
		private.GET("/cbt/stats", statsController.GetCBTStats)
		private.GET("/act/stats", statsController.GetACTStats)
		private.GET("/exercises/stats", statsController.GetExerciseStats)
		private.GET("/sos/stats", statsController.GetSOSStats)
		private.GET("/sos/recommendations", statsController.GetSOSRecommendations)
	}

	// 静态参考数据，无需用户标识
	public := r.Group("/api/v1")
	{
		public.GET("/sos/techniques", statsController.GetSOSTechniques)
		public.GET("/cbt/distortions", statsController.GetCognitiveDistortions)
		public.GET("/act/value-categories", statsController.GetValueCategories)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}

// insightOptions 根据配置构建分析选项，时区无效时退回UTC
func insightOptions(conf config.Config) services.InsightOptions {
	opts := services.DefaultInsightOptions()
	if conf.Timezone != "" {
		if loc, err := time.LoadLocation(conf.Timezone); err == nil {
			opts.Location = loc
		} else {
			config.Logger.Warnw("无法加载配置的时区，使用UTC", "timezone", conf.Timezone, "error", err)
		}
	}
	return opts
}
