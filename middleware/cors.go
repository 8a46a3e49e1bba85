package middleware

import (
	"net/http"
	"time"

	"gitee.com/taoJie_1/support-agent/global"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CorsHandle 跨域中间件, 允许的来源取自配置
func CorsHandle() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(global.Config.Cors) == 1 && global.Config.Cors[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = global.Config.Cors
	}
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	cfg.MaxAge = 12 * time.Hour

	return cors.New(cfg)
}

// OptionsMethod 预检请求直接短路返回
func OptionsMethod(ctx *gin.Context) {
	if ctx.Request.Method == http.MethodOptions {
		ctx.AbortWithStatus(http.StatusNoContent)
		return
	}
	ctx.Next()
}
