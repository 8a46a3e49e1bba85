package initialize

import (
	"context"
	"reflect"
	"strings"

	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/model/config"
	"gitee.com/taoJie_1/support-agent/service"
	"gitee.com/taoJie_1/support-agent/service/user"
	"golang.org/x/sync/errgroup"
)

// HandleConfigChange 检测配置变化并安全地、并发地重载相关服务
func (i *Initializer) HandleConfigChange(oldConfig, newConfig *config.Config) {
	i.reloadLock.Lock()
	defer i.reloadLock.Unlock()

	var restartNeeded []string

	// --- 1. 检查不可热重载的高风险配置 ---
	if !reflect.DeepEqual(oldConfig.Database, newConfig.Database) {
		restartNeeded = append(restartNeeded, "database")
	}
	if oldConfig.GinAddr != newConfig.GinAddr {
		restartNeeded = append(restartNeeded, "gin_addr")
	}
	if oldConfig.GinLogPath != newConfig.GinLogPath || oldConfig.RunLogPath != newConfig.RunLogPath {
		restartNeeded = append(restartNeeded, "log_path")
	}

	// --- 2. 并发执行可安全热重载的任务 ---
	eg, _ := errgroup.WithContext(context.Background())

	// 时区重载
	if oldConfig.Tz != newConfig.Tz {
		eg.Go(func() error {
			if err := i.InitTz(); err != nil {
				global.Log.Errorf("热重载时区失败: %v", err)
				return err
			}
			return nil
		})
	}

	// LLM服务重载
	if !reflect.DeepEqual(oldConfig.Llm, newConfig.Llm) {
		eg.Go(func() error {
			if err := i.initLlm(); err != nil {
				global.Log.Errorf("热重载LLM服务失败: %v", err)
				return err
			}
			// 新客户端要重新注入到服务组
			service.Service.UserServiceGroup = user.NewServiceGroup(global.Store, global.LlmService)
			return nil
		})
	}

	// AI相关业务逻辑配置重载
	if !reflect.DeepEqual(oldConfig.Ai, newConfig.Ai) {
		eg.Go(func() error {
			// 意图关键词和检索topK在服务构造时固化，需要重建服务组
			service.Service.UserServiceGroup = user.NewServiceGroup(global.Store, global.LlmService)
			return nil
		})
	}

	// 数据文件路径变更: 重启监听并立即重同步
	if !reflect.DeepEqual(oldConfig.Data, newConfig.Data) {
		eg.Go(func() error {
			i.watcherStop()
			if i.taskManager != nil {
				i.watcherStart(i.taskManager)
				if err := i.taskManager.StoreReloader(); err != nil {
					global.Log.Errorf("数据路径变更后重同步失败: %v", err)
					return err
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		global.Log.Errorf("并发热重载过程中发生错误: %v", err)
	}

	// --- 3. 如果有需要重启的变更，发出统一警告 ---
	if len(restartNeeded) > 0 {
		global.Log.Warnf("检测到存在需要 重启服务 才能生效的配置变更: [%s]。", strings.Join(restartNeeded, ", "))
	}

	global.Log.Info("配置变更处理完成")
}
