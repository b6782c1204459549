// Package config 提供 SDK 宿主应用（govctl 等）的配置加载能力：
// 基于 viper 读取配置文件，支持环境变量覆盖与文件变更监控。
package config

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// watchDebounce 合并编辑器保存时连续触发的多次文件事件
const watchDebounce = 100 * time.Millisecond

// Loader 配置加载器，Get 与回调并发安全
type Loader[T any] struct {
	v *viper.Viper

	mu       sync.RWMutex
	value    T
	watchers []func(old, new T)
}

// Option 加载选项
type Option[T any] func(*Loader[T])

// WithDefaults 设置默认值
func WithDefaults[T any](defaults map[string]any) Option[T] {
	return func(l *Loader[T]) {
		for k, v := range defaults {
			l.v.SetDefault(k, v)
		}
	}
}

// WithEnv 绑定环境变量，prefix.key.path 映射为 PREFIX_KEY_PATH
func WithEnv[T any](prefix string) Option[T] {
	return func(l *Loader[T]) {
		l.v.SetEnvPrefix(prefix)
		l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		l.v.AutomaticEnv()
	}
}

// Load 加载配置文件并自动监控变更
func Load[T any](path string, opts ...Option[T]) (*Loader[T], error) {
	l := &Loader[T]{v: viper.New()}
	l.v.SetConfigFile(path)

	for _, opt := range opts {
		opt(l)
	}

	if err := l.v.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := l.v.Unmarshal(&l.value); err != nil {
		return nil, err
	}

	l.watch()
	return l, nil
}

// Get 获取当前配置（返回深拷贝，调用方可随意修改）
func (l *Loader[T]) Get() T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return deepCopy(l.value)
}

// OnChange 注册配置变更回调，回调收到变更前后的两份快照
func (l *Loader[T]) OnChange(callback func(old, new T)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.watchers = append(l.watchers, callback)
}

// deepCopy 通过 JSON 序列化实现深拷贝
func deepCopy[T any](src T) T {
	var dst T
	data, _ := json.Marshal(src)
	_ = json.Unmarshal(data, &dst)
	return dst
}

func (l *Loader[T]) watch() {
	var (
		timer   *time.Timer
		timerMu sync.Mutex
	)

	l.v.OnConfigChange(func(_ fsnotify.Event) {
		timerMu.Lock()
		defer timerMu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(watchDebounce, l.onFileChange)
	})

	l.v.WatchConfig()
}

// onFileChange 重新加载配置；文件暂时不可读或解析失败时保留旧值，
// 等待下一次变更事件
func (l *Loader[T]) onFileChange() {
	if err := l.v.ReadInConfig(); err != nil {
		return
	}

	var next T
	if err := l.v.Unmarshal(&next); err != nil {
		return
	}

	l.mu.Lock()
	old := l.value
	if reflect.DeepEqual(old, next) {
		l.mu.Unlock()
		return
	}
	l.value = next
	watchers := make([]func(old, new T), len(l.watchers))
	copy(watchers, l.watchers)
	l.mu.Unlock()

	oldCopy, newCopy := deepCopy(old), deepCopy(next)
	for _, cb := range watchers {
		func() {
			defer func() { _ = recover() }()
			cb(oldCopy, newCopy)
		}()
	}
}
