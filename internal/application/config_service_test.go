package application

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/Yat-Muk/pigment/internal/domain/color"
	"github.com/Yat-Muk/pigment/internal/domain/config"
)

// MockRepo 模擬倉庫，用於測試 Service 邏輯
type MockRepo struct {
	cfg *config.Config
	mu  sync.RWMutex
}

func (m *MockRepo) Load(ctx context.Context) (*config.Config, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.cfg == nil {
		return config.DefaultConfig(), nil
	}
	// 模擬從磁盤讀取（返回副本）
	return m.cfg.DeepCopy(), nil
}

func (m *MockRepo) Save(ctx context.Context, c *config.Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// 模擬寫入磁盤
	m.cfg = c.DeepCopy()
	return nil
}

func TestConfigService_UpdateConfig(t *testing.T) {
	mockRepo := &MockRepo{}
	svc := NewConfigService(mockRepo, zap.NewNop())
	ctx := context.Background()

	initialCfg, err := svc.GetConfig(ctx)
	if err != nil {
		t.Fatalf("GetConfig failed: %v", err)
	}
	if initialCfg.Picker.Format != "hex" {
		t.Errorf("unexpected initial format: %s", initialCfg.Picker.Format)
	}

	updateErr := svc.UpdateConfig(ctx, func(c *config.Config) error {
		c.Picker.Format = "mixed"
		c.Picker.DefaultColor = "tomato"
		return nil
	})
	if updateErr != nil {
		t.Fatalf("UpdateConfig failed: %v", updateErr)
	}

	mockRepo.mu.RLock()
	if mockRepo.cfg.Picker.Format != "mixed" {
		t.Errorf("format not updated in repo: %s", mockRepo.cfg.Picker.Format)
	}
	mockRepo.mu.RUnlock()

	reloadedCfg, _ := svc.GetConfig(ctx)
	if reloadedCfg.Picker.DefaultColor != "tomato" {
		t.Error("GetConfig returned stale data after update")
	}
}

// 驗證非法修改被拒絕且不落盤
func TestConfigService_UpdateConfigRejectsInvalid(t *testing.T) {
	mockRepo := &MockRepo{}
	svc := NewConfigService(mockRepo, zap.NewNop())
	ctx := context.Background()

	err := svc.UpdateConfig(ctx, func(c *config.Config) error {
		c.Picker.Format = "oklch"
		return nil
	})
	if err == nil {
		t.Fatal("expected validation error")
	}

	cfg, _ := svc.GetConfig(ctx)
	if cfg.Picker.Format != "hex" {
		t.Errorf("invalid update leaked into repo: %s", cfg.Picker.Format)
	}
}

func TestConfigService_SetPickerOptions(t *testing.T) {
	mockRepo := &MockRepo{}
	svc := NewConfigService(mockRepo, zap.NewNop())
	ctx := context.Background()

	if err := svc.SetPickerOptions(ctx, color.FormatHSL, true, true); err != nil {
		t.Fatalf("SetPickerOptions failed: %v", err)
	}
	cfg, _ := svc.GetConfig(ctx)
	if cfg.Picker.Format != "hsl" {
		t.Errorf("format not persisted: %s", cfg.Picker.Format)
	}
	if !cfg.Picker.AlphaEnabled || !cfg.Picker.ForceAlpha {
		t.Errorf("alpha toggles not persisted: %+v", cfg.Picker)
	}

	if err := svc.SetPickerOptions(ctx, color.Format("oklch"), false, false); err == nil {
		t.Error("expected error for invalid format")
	}
	cfg, _ = svc.GetConfig(ctx)
	if cfg.Picker.Format != "hsl" {
		t.Errorf("invalid options leaked into repo: %s", cfg.Picker.Format)
	}
}

func TestConfigService_Swatches(t *testing.T) {
	mockRepo := &MockRepo{}
	svc := NewConfigService(mockRepo, zap.NewNop())
	ctx := context.Background()

	base, _ := svc.GetConfig(ctx)
	baseLen := len(base.Picker.Swatches)

	if err := svc.AddSwatch(ctx, "var(--accent)"); err != nil {
		t.Fatalf("AddSwatch failed: %v", err)
	}
	// 重複條目被忽略
	if err := svc.AddSwatch(ctx, "var(--accent)"); err != nil {
		t.Fatalf("AddSwatch duplicate failed: %v", err)
	}
	if err := svc.AddSwatch(ctx, "not a color"); err == nil {
		t.Error("expected error for invalid swatch entry")
	}

	cfg, _ := svc.GetConfig(ctx)
	if len(cfg.Picker.Swatches) != baseLen+1 {
		t.Fatalf("unexpected swatch count: %d", len(cfg.Picker.Swatches))
	}

	if err := svc.RemoveSwatch(ctx, baseLen); err != nil {
		t.Fatalf("RemoveSwatch failed: %v", err)
	}
	if err := svc.RemoveSwatch(ctx, 99); err == nil {
		t.Error("expected error for out-of-range index")
	}

	cfg, _ = svc.GetConfig(ctx)
	if len(cfg.Picker.Swatches) != baseLen {
		t.Errorf("unexpected swatch count after removal: %d", len(cfg.Picker.Swatches))
	}
}

// 測試並發安全性 (防止競態條件)
func TestConfigService_Concurrency(t *testing.T) {
	mockRepo := &MockRepo{}
	svc := NewConfigService(mockRepo, zap.NewNop())
	ctx := context.Background()

	done := make(chan bool)
	concurrency := 10

	for i := 0; i < concurrency; i++ {
		go func() {
			svc.GetConfig(ctx)

			svc.UpdateConfig(ctx, func(c *config.Config) error {
				c.Picker.AlphaEnabled = !c.Picker.AlphaEnabled
				return nil
			})

			done <- true
		}()
	}

	for i := 0; i < concurrency; i++ {
		<-done
	}

	if _, err := svc.GetConfig(ctx); err != nil {
		t.Fatalf("GetConfig after concurrent updates failed: %v", err)
	}
}
