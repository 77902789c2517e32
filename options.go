package main

// Options 命令列選項狀態
type Options struct {
	// UsageShown 已輸出 help、version 或錯誤提示，不再輸出報告
	UsageShown bool
}
