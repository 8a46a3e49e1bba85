package task

import (
	"fmt"
	"path/filepath"
	"time"

	"gitee.com/taoJie_1/support-agent/global"
	"github.com/fsnotify/fsnotify"
)

// StartDataWatcher 监听外部数据文件的变化, 变化后防抖触发重同步
// 监听目录而非文件本身, 以兼容编辑器"写临时文件再改名"的保存方式
// 未配置任何数据文件时不启动监听
func (m *Manager) StartDataWatcher() (*fsnotify.Watcher, error) {
	paths := []string{
		global.Config.Data.FaqsPath,
		global.Config.Data.ProductsPath,
		global.Config.Data.OrdersPath,
	}

	watched := make(map[string]struct{}) //被监听的目录
	files := make(map[string]struct{})   //关心的文件(绝对路径)
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		files[abs] = struct{}{}
		watched[filepath.Dir(abs)] = struct{}{}
	}

	if len(files) == 0 {
		global.Log.Info("未配置外部数据文件, 跳过文件监听")
		return nil, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("创建文件监听器失败: %w", err)
	}

	for dir := range watched {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("监听目录 '%s' 失败: %w", dir, err)
		}
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				abs, err := filepath.Abs(event.Name)
				if err != nil {
					continue
				}
				if _, care := files[abs]; !care {
					continue
				}
				global.Log.Infof("数据文件变化: %s", event.Name)
				m.DebounceStoreReload(2 * time.Second)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				global.Log.Errorf("文件监听器错误: %v", err)
			}
		}
	}()

	global.Log.Infof("数据文件监听已启动, 共 %d 个文件", len(files))
	return watcher, nil
}
