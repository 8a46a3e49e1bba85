package initialize

import (
	"context"
	"io"
	"sync"

	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/task"
	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// Initializer 统一管理项目的所有初始化工作
type Initializer struct {
	cron           *cron.Cron
	logFileClosers []io.Closer
	dataWatcher    *fsnotify.Watcher
	taskManager    *task.Manager
	reloadLock     sync.Mutex
}

// Run 并发执行所有核心服务的初始化
func (i *Initializer) Run() error {
	eg, _ := errgroup.WithContext(context.Background())

	// 关键任务，失败会终止程序
	eg.Go(i.dbStart)
	eg.Go(i.initLlm)

	return eg.Wait()
}

// Close 优雅地关闭和释放所有资源
func (i *Initializer) Close() {
	if err := i.dbClose(); err != nil {
		global.Log.Warnf("关闭数据库连接失败: %v", err)
	}
	i.timerStop()
	i.watcherStop()
	for _, closer := range i.logFileClosers {
		_ = closer.Close()
	}
}

// StartSystem 启动系统级服务: 定时器、数据加载和数据文件监听
func (i *Initializer) StartSystem(taskManager *task.Manager) {
	i.taskManager = taskManager

	if err := i.timerStart(taskManager); err != nil {
		panic(err)
	}
	i.loadData(taskManager)
	i.watcherStart(taskManager)
}

func (i *Initializer) watcherStart(taskManager *task.Manager) {
	watcher, err := taskManager.StartDataWatcher()
	if err != nil {
		global.Log.Errorf("启动数据文件监听失败: %v", err)
		return
	}
	i.dataWatcher = watcher
}

func (i *Initializer) watcherStop() {
	if i.dataWatcher == nil {
		return
	}
	if err := i.dataWatcher.Close(); err != nil {
		global.Log.Warnf("关闭数据文件监听失败: %v", err)
	}
	i.dataWatcher = nil
}
