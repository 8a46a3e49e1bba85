package admin

import (
	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/model/common"
	"gitee.com/taoJie_1/support-agent/task"
	"github.com/gin-gonic/gin"
)

type ApiGroup struct {
	CatalogApi CatalogApi
}

type CatalogApi struct{}

// Sync 数据强制同步webhook
func (m *CatalogApi) Sync(ctx *gin.Context) {
	taskManager := task.NewManager()

	go func() {
		if err := taskManager.StoreReloader(); err != nil {
			global.Log.Errorf("通过API触发数据同步失败: %v", err)
		}
	}()

	common.Success(ctx, "数据同步任务已启动")
}
