package application

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Yat-Muk/pigment/internal/domain/color"
	"github.com/Yat-Muk/pigment/internal/domain/config"
	apperrors "github.com/Yat-Muk/pigment/internal/pkg/errors"
)

// ConfigService 配置服務
type ConfigService struct {
	repo   config.Repository
	logger *zap.Logger
	mu     sync.Mutex
}

// NewConfigService 創建配置服務
func NewConfigService(repo config.Repository, logger *zap.Logger) *ConfigService {
	return &ConfigService{
		repo:   repo,
		logger: logger,
	}
}

// GetConfig 獲取當前配置
func (s *ConfigService) GetConfig(ctx context.Context) (*config.Config, error) {
	return s.repo.Load(ctx)
}

// UpdateConfig 原子更新配置
// 邏輯：Lock -> Load -> DeepCopy -> Modify -> Validate -> Save -> Unlock
func (s *ConfigService) UpdateConfig(ctx context.Context, modifier func(*config.Config) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 1. 加載當前配置
	currentCfg, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("加載配置失敗: %w", err)
	}

	// 2. 創建副本 (DeepCopy) 以免修改原始對象
	newCfg := currentCfg.DeepCopy()

	// 3. 應用修改函數
	if err := modifier(newCfg); err != nil {
		return fmt.Errorf("應用配置修改失敗: %w", err)
	}

	// 4. 驗證新配置
	if err := newCfg.Validate(); err != nil {
		return apperrors.Wrap(apperrors.ErrConfigInvalid, "CONFIG_VALIDATE", err.Error())
	}

	// 5. 保存配置
	if err := s.repo.Save(ctx, newCfg); err != nil {
		return fmt.Errorf("保存配置失敗: %w", err)
	}

	s.logger.Info("配置已更新並保存")
	return nil
}

// SetPickerOptions 一次性持久化輸出格式與兩個 Alpha 開關
// 格式菜單的任何改動都整組落盤，避免連續三次加載保存
func (s *ConfigService) SetPickerOptions(ctx context.Context, f color.Format, alphaEnabled, forceAlpha bool) error {
	return s.UpdateConfig(ctx, func(cfg *config.Config) error {
		if !f.Valid() {
			return fmt.Errorf("無效的輸出格式 %q: %w", f, apperrors.ErrInvalidFormat)
		}
		cfg.Picker.Format = string(f)
		cfg.Picker.AlphaEnabled = alphaEnabled
		cfg.Picker.ForceAlpha = forceAlpha
		return nil
	})
}

// SetDefaultColor 持久化啟動時的初始顏色
func (s *ConfigService) SetDefaultColor(ctx context.Context, value string) error {
	return s.UpdateConfig(ctx, func(cfg *config.Config) error {
		cfg.Picker.DefaultColor = value
		return nil
	})
}

// AddSwatch 追加色板條目（字面量或變量引用，重複條目被忽略）
func (s *ConfigService) AddSwatch(ctx context.Context, entry string) error {
	return s.UpdateConfig(ctx, func(cfg *config.Config) error {
		if _, isVar := color.CheckVar(entry); !isVar && !color.IsColor(entry) {
			return fmt.Errorf("無效的色板條目 %q: %w", entry, apperrors.ErrInvalidColor)
		}
		for _, existing := range cfg.Picker.Swatches {
			if existing == entry {
				return nil
			}
		}
		cfg.Picker.Swatches = append(cfg.Picker.Swatches, entry)
		return nil
	})
}

// RemoveSwatch 按下標刪除色板條目
func (s *ConfigService) RemoveSwatch(ctx context.Context, index int) error {
	return s.UpdateConfig(ctx, func(cfg *config.Config) error {
		if index < 0 || index >= len(cfg.Picker.Swatches) {
			return fmt.Errorf("色板下標越界: %d", index)
		}
		cfg.Picker.Swatches = append(cfg.Picker.Swatches[:index], cfg.Picker.Swatches[index+1:]...)
		return nil
	})
}
