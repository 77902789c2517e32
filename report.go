package main

import (
	"fmt"
	"io"

	"golang.org/x/text/message"
)

// TypeSize 單一型別的大小
type TypeSize struct {
	Name  string
	Bytes uintptr
}

// Bits 位元數
func (t TypeSize) Bits() uintptr {
	return t.Bytes * 8
}

// Section 報告區段
type Section struct {
	Title string
	Types []TypeSize
}

// Reporter 型別大小報告輸出器
type Reporter struct {
	w io.Writer
	p *message.Printer
}

// NewReporter 建立報告輸出器
func NewReporter(w io.Writer, p *message.Printer) *Reporter {
	return &Reporter{w: w, p: p}
}

// PrintTitle 輸出區段標題 (空行 + 標題)
func (r *Reporter) PrintTitle(title string) error {
	_, err := r.p.Fprintf(r.w, msgTitle, r.p.Sprintf(title))
	return err
}

// PrintSize 輸出單一型別行
func (r *Reporter) PrintSize(t TypeSize) error {
	// 數字不經 message.Printer，避免依語系加入千分位
	_, err := fmt.Fprintf(r.w, "\t%s: %d (%d bits)\n", t.Name, t.Bytes, t.Bits())
	return err
}

// Print 依序輸出所有區段
func (r *Reporter) Print(sections []Section) error {
	for _, s := range sections {
		if err := r.PrintTitle(s.Title); err != nil {
			return fmt.Errorf("輸出標題失敗: %w", err)
		}
		for _, t := range s.Types {
			if err := r.PrintSize(t); err != nil {
				return fmt.Errorf("輸出型別 %s 失敗: %w", t.Name, err)
			}
		}
	}
	return nil
}
