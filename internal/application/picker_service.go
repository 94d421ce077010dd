package application

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Yat-Muk/pigment/internal/domain/color"
	domainConfig "github.com/Yat-Muk/pigment/internal/domain/config"
	"github.com/Yat-Muk/pigment/internal/pkg/normalize"
)

// EventType 取色器生命週期事件類型
type EventType string

const (
	EventOpen   EventType = "open"
	EventClose  EventType = "close"
	EventInput  EventType = "input"  // 當前顏色隨交互變化
	EventChange EventType = "change" // 用戶確認選擇，值寫回綁定的輸入框
)

// Event 生命週期事件記錄
type Event struct {
	Instance string // 取色器實例標識
	Type     EventType
	Value    string      // 當前格式化後的顯示字符串
	Color    color.RGBA  // 事件發生時的顏色快照
	At       time.Time
}

// Listener 事件監聽器
type Listener func(Event)

// PickerService 取色器應用服務
// 持有唯一的當前顏色記錄，並向監聽者派發生命週期事件；
// 轉換本身是純函數，互斥鎖只為 bubbletea 命令協程的訪問兜底
type PickerService struct {
	id       string
	logger   *zap.Logger
	resolver color.VarResolver

	mu           sync.Mutex
	state        *color.State
	format       color.Format
	lastInput    color.Format
	alphaEnabled bool
	forceAlpha   bool
	opened       bool
	listeners    map[EventType][]Listener
}

// NewPickerService 創建取色器服務
// 默認顏色解析失敗時靜默退化為不透明黑色
func NewPickerService(cfg domainConfig.PickerConfig, resolver color.VarResolver, logger *zap.Logger) *PickerService {
	s := &PickerService{
		id:           uuid.New().String(),
		logger:       logger,
		resolver:     resolver,
		state:        color.NewState(),
		format:       color.Format(cfg.Format),
		lastInput:    color.FormatHex,
		alphaEnabled: cfg.AlphaEnabled,
		forceAlpha:   cfg.ForceAlpha,
		listeners:    map[EventType][]Listener{},
	}
	if !s.format.Valid() {
		s.format = color.FormatHex
	}

	if cfg.DefaultColor != "" {
		resolved, ok := color.ResolveString(cfg.DefaultColor, resolver)
		if ok {
			s.state.SetRGBA(color.ParseOrBlack(resolved))
			s.lastInput = color.DetectFormat(resolved)
		}
	}

	logger.Info("取色器已初始化",
		zap.String("instance", s.id),
		zap.String("format", string(s.format)),
		zap.String("default_color", cfg.DefaultColor),
	)
	return s
}

// ID 實例標識
func (s *PickerService) ID() string { return s.id }

// On 註冊事件監聽器
func (s *PickerService) On(t EventType, fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[t] = append(s.listeners[t], fn)
}

// Open 打開取色器（重複打開不重複派發）
func (s *PickerService) Open() {
	s.mu.Lock()
	if s.opened {
		s.mu.Unlock()
		return
	}
	s.opened = true
	ev := s.eventLocked(EventOpen)
	s.mu.Unlock()

	s.dispatch(ev)
}

// Close 關閉取色器
func (s *PickerService) Close() {
	s.mu.Lock()
	if !s.opened {
		s.mu.Unlock()
		return
	}
	s.opened = false
	ev := s.eventLocked(EventClose)
	s.mu.Unlock()

	s.dispatch(ev)
}

// ApplyString 以顏色字符串更新當前顏色
// 變量引用先經 resolver 解析；不可解析的輸入退化為不透明黑色並返回 false
func (s *PickerService) ApplyString(input string) bool {
	resolved, ok := color.ResolveString(input, s.resolver)
	if !ok {
		// 平台無變量查詢能力：視為「無顏色可用」，不改動當前狀態
		s.logger.Warn("變量引用無法解析",
			zap.String("input", normalize.Truncate(normalize.Input(input), 64)),
		)
		return false
	}

	c, parsed := color.Parse(resolved)
	if !parsed {
		c = color.RGBA{A: 1}
		s.logger.Debug("輸入不可解析，退化為黑色",
			zap.String("input", normalize.Truncate(normalize.Input(input), 64)),
		)
	}

	s.mu.Lock()
	s.state.SetRGBA(c)
	if parsed {
		s.lastInput = color.DetectFormat(resolved)
	}
	ev := s.eventLocked(EventInput)
	s.mu.Unlock()

	s.dispatch(ev)
	return parsed
}

// ApplyHSVA 以 HSVA 分量更新當前顏色（取色器網格/色相條/Alpha 條交互）
func (s *PickerService) ApplyHSVA(c color.HSVA) {
	c.H = clampInt(c.H, 0, 360)
	c.S = clampInt(c.S, 0, 100)
	c.V = clampInt(c.V, 0, 100)
	if c.A < 0 {
		c.A = 0
	}
	if c.A > 1 {
		c.A = 1
	}

	s.mu.Lock()
	s.state.SetHSVA(c)
	ev := s.eventLocked(EventInput)
	s.mu.Unlock()

	s.dispatch(ev)
}

// Commit 確認當前選擇，派發 change 事件並返回應寫回輸入框的顯示字符串
func (s *PickerService) Commit() string {
	s.mu.Lock()
	ev := s.eventLocked(EventChange)
	s.mu.Unlock()

	s.dispatch(ev)
	return ev.Value
}

// Display 當前顏色按配置格式化後的顯示字符串
func (s *PickerService) Display() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return color.FormatState(s.state, s.format, s.lastInput, s.alphaEnabled, s.forceAlpha)
}

// State 當前顏色記錄的快照
func (s *PickerService) State() color.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.state
}

// Format 當前輸出格式
func (s *PickerService) Format() color.Format {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.format
}

// SetFormat 切換輸出格式，非法取值被忽略
func (s *PickerService) SetFormat(f color.Format) {
	if !f.Valid() {
		return
	}
	s.mu.Lock()
	s.format = f
	s.mu.Unlock()
}

// AlphaEnabled 是否輸出 Alpha 通道
func (s *PickerService) AlphaEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alphaEnabled
}

// SetAlphaEnabled 開關 Alpha 顯示
func (s *PickerService) SetAlphaEnabled(on bool) {
	s.mu.Lock()
	s.alphaEnabled = on
	s.mu.Unlock()
}

// ForceAlpha 是否強制輸出 Alpha
func (s *PickerService) ForceAlpha() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forceAlpha
}

// SetForceAlpha 開關強制 Alpha
func (s *PickerService) SetForceAlpha(on bool) {
	s.mu.Lock()
	s.forceAlpha = on
	s.mu.Unlock()
}

// eventLocked 構造事件快照，調用方必須持有鎖
func (s *PickerService) eventLocked(t EventType) Event {
	return Event{
		Instance: s.id,
		Type:     t,
		Value:    color.FormatState(s.state, s.format, s.lastInput, s.alphaEnabled, s.forceAlpha),
		Color:    s.state.RGBA(),
		At:       time.Now(),
	}
}

// dispatch 在鎖外派發，避免監聽器回調反過來調用服務時死鎖
func (s *PickerService) dispatch(ev Event) {
	s.mu.Lock()
	fns := append([]Listener(nil), s.listeners[ev.Type]...)
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
