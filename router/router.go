package router

import (
	"io/fs"
	"net/http"
	"time"

	"moneymanager/api"
	"moneymanager/config"
	_ "moneymanager/docs"
	"moneymanager/middleware"
	"moneymanager/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// 嵌入的静态文件 - 记账页面
	staticFS, _ := fs.Sub(web.StaticFS, ".")
	r.GET("/", func(c *gin.Context) {
		content, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "加载页面失败")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authHandler := api.NewAuthHandler(cfg)
	passwordResetHandler := api.NewPasswordResetHandler(cfg)
	transactionHandler := api.NewTransactionHandler()

	apiGroup := r.Group("/api")
	{
		// 认证相关路由（无需登录）
		auth := apiGroup.Group("/auth")
		{
			// 注册、登录与密码重置共用限流，防止撞库和验证码穷举
			limited := auth.Group("")
			limited.Use(middleware.AuthRateLimit(10, time.Minute))
			{
				limited.POST("/signup", authHandler.Signup)
				limited.POST("/login", authHandler.Login)

				// 密码重置（无需登录）
				limited.POST("/password/request-reset", passwordResetHandler.RequestReset)
				limited.POST("/password/verify-code", passwordResetHandler.VerifyCode)
				limited.POST("/password/reset", passwordResetHandler.ResetPassword)
			}
			auth.POST("/logout", authHandler.Logout)
		}

		// 需要 JWT 认证的路由
		authorized := apiGroup.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			// 用户相关
			authorized.GET("/auth/me", authHandler.Me)
			authorized.PUT("/auth/password", authHandler.ChangePassword)

			// 交易记录相关
			transactions := authorized.Group("/transactions")
			{
				transactions.GET("", transactionHandler.List)
				transactions.POST("", transactionHandler.Create)
				transactions.DELETE("", transactionHandler.DeleteAll)
				transactions.POST("/import", transactionHandler.Import)
				transactions.GET("/balance", transactionHandler.GetBalance)
				transactions.GET("/summary", transactionHandler.MonthlySummary)
				transactions.GET("/export", transactionHandler.ExportJSON)
				transactions.GET("/export/csv", transactionHandler.ExportCSV)
				transactions.GET("/export/excel", transactionHandler.ExportExcel)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
