package main

import (
	"os"
)

// 版本資訊 (由 ldflags 注入)
var (
	Version   = "0.0.1"
	BuildDate = "05.08.2008"
)

// 程式靜態資訊
const (
	ProgName   = "taille"
	ProgAuthor = "Olivier Delhomme <olivier.delhomme@free.fr>"
)

func main() {
	os.Exit(Execute(os.Args[1:], os.Stdout, os.Stderr))
}
