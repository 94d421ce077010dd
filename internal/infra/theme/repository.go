package theme

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Repository 主題變量倉庫
// 以 YAML 文件充當「computed style」的自定義屬性來源，
// 實現 color.VarResolver，文件修改後自動熱重載
type Repository struct {
	filePath string
	logger   *zap.Logger

	mu          sync.RWMutex
	cached      map[string]string
	lastModTime time.Time
	loaded      bool
}

func NewRepository(path string, logger *zap.Logger) *Repository {
	return &Repository{
		filePath: path,
		logger:   logger,
	}
}

// Resolve 實現 color.VarResolver
// 屬性名允許帶或不帶 -- 前綴寫入主題文件
func (r *Repository) Resolve(name string) (string, bool) {
	vars, err := r.load()
	if err != nil {
		r.logger.Debug("主題變量查詢失敗", zap.Error(err))
		return "", false
	}

	if v, ok := vars[name]; ok {
		return v, true
	}
	if v, ok := vars[strings.TrimPrefix(name, "--")]; ok {
		return v, true
	}
	return "", false
}

// All 返回全部變量（名稱統一帶 -- 前綴，按名稱排序的鍵列表另行提供）
func (r *Repository) All() (map[string]string, error) {
	vars, err := r.load()
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(vars))
	for k, v := range vars {
		if !strings.HasPrefix(k, "--") {
			k = "--" + k
		}
		out[k] = v
	}
	return out, nil
}

// SortedNames 排序後的變量名列表（渲染用）
func SortedNames(vars map[string]string) []string {
	names := make([]string, 0, len(vars))
	for k := range vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// load 帶修改時間緩存的文件讀取
func (r *Repository) load() (map[string]string, error) {
	r.mu.RLock()
	stat, err := os.Stat(r.filePath)
	if err != nil {
		r.mu.RUnlock()
		if os.IsNotExist(err) {
			// 主題文件是可選的，缺失時視為沒有任何變量
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("檢查主題文件狀態失敗: %w", err)
	}

	if r.loaded && !stat.ModTime().After(r.lastModTime) {
		vars := r.cached
		r.mu.RUnlock()
		return vars, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	stat, err = os.Stat(r.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("檢查主題文件狀態失敗: %w", err)
	}
	if r.loaded && !stat.ModTime().After(r.lastModTime) {
		return r.cached, nil
	}

	content, err := os.ReadFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("讀取主題文件失敗: %w", err)
	}

	vars := map[string]string{}
	if err := yaml.Unmarshal(content, &vars); err != nil {
		return nil, fmt.Errorf("解析主題文件格式失敗: %w", err)
	}

	r.cached = vars
	r.lastModTime = stat.ModTime()
	r.loaded = true

	r.logger.Info("主題變量已加載",
		zap.String("path", r.filePath),
		zap.Int("count", len(vars)),
	)

	return vars, nil
}
