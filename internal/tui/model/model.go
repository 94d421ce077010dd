package model

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Model 交給 bubbletea 運行的頂層模型
// 自身不持有任何業務狀態，消息一律轉交 Router 按當前視圖分發
type Model struct {
	router *Router
}

// NewModel 用裝配好的路由器包出頂層模型
func NewModel(router *Router) *Model {
	return &Model{
		router: router,
	}
}

// Init 返回啟動命令：聚焦輸入框、加載配置、訂閱取色器事件
func (m *Model) Init() tea.Cmd {
	return m.router.InitModel()
}

// Update 把消息轉交路由器，始終返回自身以保持模型單例
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.router.Update(msg)
	return m, cmd
}

// View 渲染當前視圖
func (m *Model) View() string {
	return m.router.View()
}
