package router

import (
	"gitee.com/taoJie_1/support-agent/controller"
	"gitee.com/taoJie_1/support-agent/middleware"
	"gitee.com/taoJie_1/support-agent/model/common"

	"github.com/gin-gonic/gin"
)

func Start(ginServer *gin.Engine) {
	ginServer.Use(middleware.CorsHandle(), middleware.OptionsMethod) //全局中间件

	// 存活探测
	ginServer.GET("/", func(ctx *gin.Context) {
		common.SuccessOk(ctx, "チャットボットバックエンド動作中。/api/v1/chat へPOSTで質問してください。")
	})

	ginServer.NoRoute(func(ctx *gin.Context) {
		common.FailNotFound(ctx)
	})

	v1 := ginServer.Group("api/v1")
	{
		v1.POST("/chat", controller.Api.UserApiGroup.ChatApi.HandleChat)
		v1.POST("/admin/catalog/sync", controller.Api.AdminApiGroup.CatalogApi.Sync)
	}
}
