package constants

const (
	// ==========================================
	// 主菜單 (Main Menu)
	// ==========================================
	KeyMain_Picker   = "1" // 打開取色器
	KeyMain_Input    = "2" // 輸入顏色字符串
	KeyMain_Swatches = "3" // 色板
	KeyMain_Format   = "4" // 輸出格式
	KeyMain_Theme    = "5" // 主題變量
	KeyMain_Events   = "6" // 事件記錄
	KeyMain_Quit     = "q" // 退出程序

	// ==========================================
	// 格式菜單 (Format Menu)
	// ==========================================
	KeyFormat_Hex        = "1" // 十六進制
	KeyFormat_RGB        = "2" // rgb()/rgba()
	KeyFormat_HSL        = "3" // hsl()/hsla()
	KeyFormat_Auto       = "4" // 跟隨輸入
	KeyFormat_Mixed      = "5" // 混合
	KeyFormat_Alpha      = "a" // 切換 Alpha 顯示
	KeyFormat_ForceAlpha = "f" // 切換強制 Alpha

	// ==========================================
	// 色板菜單 (Swatch Menu)
	// ==========================================
	KeySwatch_Add    = "a" // 添加當前顏色
	KeySwatch_Delete = "d" // 刪除條目
)
