package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	governance "github.com/llm-dev-ops/governance-go"
	"github.com/llm-dev-ops/governance-go/config"
	"github.com/llm-dev-ops/governance-go/logging"
	"github.com/llm-dev-ops/governance-go/rest"
)

// application 持有一次命令执行所需的运行时对象。
type application struct {
	settings config.Settings
	logger   *logging.Logger
	sdk      *governance.SDK
}

var (
	cfgFile string
	app     *application
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "govctl",
		Short:         "治理平台命令行客户端",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			app, err = newApplication(cfgFile)
			return err
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径")

	rootCmd.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newOrgsCmd(),
		newTeamsCmd(),
		newMembersCmd(),
		newProvidersCmd(),
		newModelsCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newApplication(cfgPath string) (*application, error) {
	settings, err := config.LoadSettings(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(os.Stderr, settings.Log.Level, settings.Log.Format)

	tokenPath := tokenFilePath(settings)
	opts := []rest.Option{
		rest.WithBaseURL(settings.BaseURL),
		rest.WithTimeout(settings.RequestTimeout),
		rest.WithToken(loadToken(tokenPath)),
		rest.WithTokenChange(func(tok string) {
			if err := saveToken(tokenPath, tok); err != nil {
				logger.Warn("persist token", "error", err)
			}
		}),
	}

	sdk, err := governance.New(opts...)
	if err != nil {
		return nil, err
	}
	sdk.Client.WithHooks(nil, []rest.AfterHook{rest.LogHook(logger.Logger)})

	return &application{
		settings: settings,
		logger:   logger,
		sdk:      sdk,
	}, nil
}
