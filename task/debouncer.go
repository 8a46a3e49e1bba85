package task

import (
	"sync"
	"time"

	"gitee.com/taoJie_1/support-agent/global"
)

var (
	storeReloadTimer *time.Timer
	storeReloadMutex sync.Mutex
)

// DebounceStoreReload 为 StoreReloader 提供防抖调用功能。
// 每次调用都会重置定时器。
func (m *Manager) DebounceStoreReload(delay time.Duration) {
	storeReloadMutex.Lock()
	defer storeReloadMutex.Unlock()

	// 如果已存在一个定时器，则停止它
	if storeReloadTimer != nil {
		storeReloadTimer.Stop()
	}

	// 创建一个新的定时器，在延迟时间后执行同步任务
	storeReloadTimer = time.AfterFunc(delay, func() {
		global.Log.Info("触发经防抖处理的数据重同步任务...")
		if err := m.StoreReloader(); err != nil {
			global.Log.Errorf("执行经防抖处理的数据重同步任务失败: %v", err)
		}
	})
	global.Log.Infof("数据重同步任务已调度在 %v 后执行", delay)
}
