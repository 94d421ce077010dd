package state

import "github.com/Yat-Muk/pigment/internal/tui/types"

// 事件記錄保留的最大條數
const eventLogCapacity = 50

// EventState 事件記錄視圖狀態（環形緩衝，最新在前）
type EventState struct {
	rows []types.EventRow
}

// NewEventState 創建事件記錄狀態
func NewEventState() *EventState {
	return &EventState{}
}

// Add 追加一條記錄，超出容量時丟棄最舊的
func (e *EventState) Add(row types.EventRow) {
	e.rows = append([]types.EventRow{row}, e.rows...)
	if len(e.rows) > eventLogCapacity {
		e.rows = e.rows[:eventLogCapacity]
	}
}

// Rows 當前記錄（最新在前）
func (e *EventState) Rows() []types.EventRow {
	return e.rows
}

// Clear 清空記錄
func (e *EventState) Clear() {
	e.rows = nil
}
