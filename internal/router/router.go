package router

import (
	"askroom/internal/config"
	"askroom/internal/handlers"
	"askroom/internal/moderation"
	"askroom/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, conn *gorm.DB, cfg config.Config) {
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	// Handlers
	policy := moderation.NewPolicy(cfg.BannedWords)
	generator := services.NewGenerator(cfg)

	authHandler := handlers.NewAuthHandler(conn)
	questionHandler := handlers.NewQuestionHandler(conn, policy, generator)
	voteHandler := handlers.NewVoteHandler(conn)
	profileHandler := handlers.NewProfileHandler(conn)
	staticHandler := handlers.NewStaticHandler(cfg.WebDir)

	api := r.Group("/api")
	{
		api.POST("/register", authHandler.Register) // 注册
		api.POST("/login", authHandler.Login)       // 登录

		api.GET("/questions", questionHandler.List)       // 可见问题列表
		api.GET("/top-questions", questionHandler.Top)    // 热门问题 Top 50
		api.GET("/questions/:id", questionHandler.Detail) // 问题详情 + 排序后的回答
		api.POST("/ask", questionHandler.Ask)             // 提问（含自动 AI 回答）
		api.POST("/answer", questionHandler.Answer)       // 回答问题

		api.POST("/flag", voteHandler.Flag) // 举报
		api.POST("/vote", voteHandler.Vote) // 投票

		api.GET("/profile/:uid", profileHandler.Show) // 用户概况
	}

	// Frontend pages + allow-listed scripts
	r.GET("/", staticHandler.Index)
	r.GET("/portal", staticHandler.Portal)
	r.GET("/view", staticHandler.View)
	r.NoRoute(staticHandler.Asset)
}
