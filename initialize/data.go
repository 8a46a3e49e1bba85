package initialize

import (
	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/task"
)

// loadData 加载业务所需数据
// 启动时做一次全量同步; 同步失败时退而求其次, 只从库里加载旧快照
func (i *Initializer) loadData(taskManager *task.Manager) {
	if err := taskManager.StoreReloader(); err != nil {
		global.Log.Errorln("启动时同步客服数据失败:", err)
		if err := taskManager.LoadStore(); err != nil {
			global.Log.Errorln("启动时加载客服数据失败, FAQ/商品/订单查询将不可用:", err)
		}
	}
}
