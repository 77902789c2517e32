package main

import (
	"fmt"

	"github.com/spf13/pflag"
)

// flagAction 選項觸發的動作，依出現順序記錄
type flagAction int

const (
	actionHelp flagAction = iota
	actionVersion
)

func (fa flagAction) String() string {
	switch fa {
	case actionHelp:
		return "help"
	case actionVersion:
		return "version"
	default:
		return "unknown"
	}
}

// noArgument 未帶值時 pflag 傳入的值，使用者無法輸入
const noArgument = "\x00"

// actionFlag 不接受參數的選項，每次出現即追加一個動作
//
// Type 回報 "bool" 且 String 固定為 "false"，cobra 的內建 help 檢查不會
// 提前攔截，所有動作改由 App.Run 依序重播。
type actionFlag struct {
	action  flagAction
	actions *[]flagAction
}

func (f *actionFlag) Set(s string) error {
	if s != noArgument {
		return fmt.Errorf("選項 --%s 不接受參數", f.action)
	}
	*f.actions = append(*f.actions, f.action)
	return nil
}

func (f *actionFlag) String() string { return "false" }

func (f *actionFlag) Type() string { return "bool" }

// addActionFlag 註冊不帶值的選項
func addActionFlag(fs *pflag.FlagSet, name, shorthand, usage string, action flagAction, actions *[]flagAction) {
	flag := fs.VarPF(&actionFlag{action: action, actions: actions}, name, shorthand, usage)
	flag.NoOptDefVal = noArgument
}
