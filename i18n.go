package main

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// 可翻譯訊息鍵 (英文原文即為鍵)
const (
	msgVersion     = "%s, %s - %s - Version %s - License %s\n"
	msgLicense     = "GPL V2 or higher"
	msgTryHelp     = "Try `%s --help' for more information.\n"
	msgDescription = "\n%s is a tool that prints struct sizes"
	msgUsage       = "\nUsage:\n  %s [options]\n"
	msgOptions     = "\nOptions:\n  -h, --help\tThis help.\n  -v, --version\tProgram version information.\n"
	msgTitle       = "\n%s\n"
)

// supportedLanguages 第一個為預設語言
var supportedLanguages = []language.Tag{
	language.English,
	language.French,
	language.TraditionalChinese,
}

var translations = map[language.Tag]map[string]string{
	language.French: {
		msgVersion:        "%s, %s - %s - Version %s - Licence %s\n",
		msgLicense:        "GPL V2 ou supérieure",
		msgTryHelp:        "Essayez « %s --help » pour plus d'informations.\n",
		msgDescription:    "\n%s est un outil qui affiche la taille des structures",
		msgUsage:          "\nUtilisation :\n  %s [options]\n",
		msgOptions:        "\nOptions :\n  -h, --help\tCette aide.\n  -v, --version\tInformations sur la version du programme.\n",
		TitleIntegerTypes: "Types entiers :",
		TitleIDTypes:      "Types d'identifiants :",
		TitleFilesRelated: "Relatifs aux fichiers :",
		TitleLengths:      "Longueurs :",
	},
	language.TraditionalChinese: {
		msgVersion:        "%s, %s - %s - 版本 %s - 授權 %s\n",
		msgLicense:        "GPL V2 或更新版本",
		msgTryHelp:        "請執行 `%s --help' 以取得更多資訊。\n",
		msgDescription:    "\n%s 是一個列印結構大小的工具",
		msgUsage:          "\n用法:\n  %s [選項]\n",
		msgOptions:        "\n選項:\n  -h, --help\t本說明。\n  -v, --version\t程式版本資訊。\n",
		TitleIntegerTypes: "整數型別:",
		TitleIDTypes:      "識別碼型別:",
		TitleFilesRelated: "檔案相關:",
		TitleLengths:      "長度:",
	},
}

// NewCatalog 建立訊息目錄
func NewCatalog() (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("設定翻譯失敗 (%s): %w", tag, err)
			}
		}
	}
	return b, nil
}

// ParseLocale 將 POSIX 語系字串 (如 fr_FR.UTF-8) 對應到支援的語言
func ParseLocale(locale string) language.Tag {
	// 去除編碼與修飾詞
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return supportedLanguages[0]
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return supportedLanguages[0]
	}

	matcher := language.NewMatcher(supportedLanguages)
	_, idx, conf := matcher.Match(tag)
	if conf < language.High {
		return supportedLanguages[0]
	}
	return supportedLanguages[idx]
}

// NewPrinter 建立指定語系的訊息列印器
func NewPrinter(locale string) (*message.Printer, language.Tag, error) {
	cat, err := NewCatalog()
	if err != nil {
		return nil, language.Und, err
	}
	tag := ParseLocale(locale)
	return message.NewPrinter(tag, message.Catalog(cat)), tag, nil
}
