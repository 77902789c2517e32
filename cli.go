package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/text/message"
)

// ErrInvalidInvocation 未知選項或多餘的參數
var ErrInvalidInvocation = errors.New("invalid invocation")

// 結束碼
const (
	ExitOK                = 0
	ExitInvalidInvocation = 1
)

// App 單次執行的狀態
type App struct {
	opts    Options
	actions []flagAction
	cfg     *Config
	logger  *zap.Logger
	printer *message.Printer
	stdout  io.Writer
	stderr  io.Writer
}

// NewApp 建立應用程式
func NewApp(cfg *Config, logger *zap.Logger, stdout, stderr io.Writer) (*App, error) {
	printer, tag, err := NewPrinter(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("初始化訊息目錄失敗: %w", err)
	}

	logger.Debug("語系已綁定",
		zap.String("locale", cfg.Locale),
		zap.String("language", tag.String()),
	)

	return &App{
		cfg:     cfg,
		logger:  logger,
		printer: printer,
		stdout:  stdout,
		stderr:  stderr,
	}, nil
}

// Options 返回目前的選項狀態
func (a *App) Options() Options {
	return a.opts
}

// Command 建立根命令
func (a *App) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:           ProgName + " [options]",
		Short:         "prints struct sizes",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: 多餘的參數 %q", ErrInvalidInvocation, args)
			}
			return nil
		},
		RunE: a.run,
	}

	addActionFlag(cmd.Flags(), "help", "h", "This help.", actionHelp, &a.actions)
	addActionFlag(cmd.Flags(), "version", "v", "Program version information.", actionVersion, &a.actions)

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrInvalidInvocation, err)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		a.actions = append(a.actions, actionHelp)
	})
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	return cmd
}

func (a *App) run(cmd *cobra.Command, args []string) error {
	// 有 help/version 動作時不輸出報告
	if len(a.actions) > 0 {
		return nil
	}

	sections := Sections()
	a.logger.Debug("輸出型別大小報告", zap.Int("sections", len(sections)))
	return NewReporter(a.stdout, a.printer).Print(sections)
}

// replay 依出現順序輸出 help/version
func (a *App) replay() error {
	for _, action := range a.actions {
		var err error
		switch action {
		case actionHelp:
			err = a.printHelp()
		case actionVersion:
			err = a.printVersion()
		}
		if err != nil {
			return err
		}
		a.opts.UsageShown = true
	}
	return nil
}

// Run 解析參數並執行，返回結束碼
func (a *App) Run(args []string) int {
	a.actions = nil
	cmd := a.Command()
	cmd.SetArgs(args)

	err := cmd.Execute()

	// 解析錯誤前已處理的選項仍要輸出，提示最後輸出
	if rerr := a.replay(); rerr != nil {
		a.logger.Warn("輸出說明失敗", zap.Error(rerr))
	}

	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInvalidInvocation):
		a.logger.Debug("無效的呼叫", zap.Error(err))
		a.opts.UsageShown = true
		if herr := a.printHint(); herr != nil {
			a.logger.Warn("輸出提示失敗", zap.Error(herr))
		}
		return ExitInvalidInvocation
	default:
		fmt.Fprintf(a.stderr, "錯誤: %v\n", err)
		return ExitInvalidInvocation
	}
}

func (a *App) printVersion() error {
	_, err := a.printer.Fprintf(a.stdout, msgVersion,
		ProgName, ProgAuthor, BuildDate, Version, a.printer.Sprintf(msgLicense))
	if err != nil {
		return fmt.Errorf("輸出版本資訊失敗: %w", err)
	}
	return nil
}

func (a *App) printHelp() error {
	if err := a.printVersion(); err != nil {
		return err
	}
	for _, msg := range []string{msgDescription, msgUsage} {
		if _, err := a.printer.Fprintf(a.stdout, msg, ProgName); err != nil {
			return fmt.Errorf("輸出說明失敗: %w", err)
		}
	}
	if _, err := a.printer.Fprintf(a.stdout, msgOptions); err != nil {
		return fmt.Errorf("輸出說明失敗: %w", err)
	}
	return nil
}

func (a *App) printHint() error {
	_, err := a.printer.Fprintf(a.stderr, msgTryHelp, ProgName)
	return err
}

// Execute 執行 CLI，返回結束碼
func Execute(args []string, stdout, stderr io.Writer) int {
	cfg, cfgErr := LoadConfig(viper.New())
	if cfgErr != nil {
		cfg = DefaultConfig()
	}

	logger, err := initLogger(cfg.LogLevel(), stderr)
	if err != nil {
		fmt.Fprintf(stderr, "錯誤: 初始化日誌失敗: %v\n", err)
		return ExitInvalidInvocation
	}
	defer func() { _ = logger.Sync() }()

	if cfgErr != nil {
		logger.Warn("載入配置失敗，使用預設配置", zap.Error(cfgErr))
	}

	app, err := NewApp(cfg, logger, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "錯誤: %v\n", err)
		return ExitInvalidInvocation
	}
	return app.Run(args)
}
