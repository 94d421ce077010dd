package state

import domainConfig "github.com/Yat-Muk/pigment/internal/domain/config"

// ConfigState 內存配置狀態
type ConfigState struct {
	Config *domainConfig.Config
}

// NewConfigState 創建配置狀態
func NewConfigState(cfg *domainConfig.Config) *ConfigState {
	if cfg == nil {
		cfg = domainConfig.DefaultConfig()
	}
	return &ConfigState{Config: cfg}
}

// UpdateConfig 替換內存配置
func (c *ConfigState) UpdateConfig(cfg *domainConfig.Config) {
	if cfg != nil {
		c.Config = cfg
	}
}

// GetConfig 獲取內存配置
func (c *ConfigState) GetConfig() *domainConfig.Config {
	return c.Config
}
