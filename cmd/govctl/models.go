package main

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/llm-dev-ops/governance-go/orgs"
	"github.com/llm-dev-ops/governance-go/rest"
)

func newModelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "管理提供方下的模型",
	}

	cmd.AddCommand(
		newModelsListCmd(),
		newModelsCreateCmd(),
		newModelsDeleteCmd(),
	)

	return cmd
}

func newModelsListCmd() *cobra.Command {
	var providerID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "列出提供方下的模型",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.sdk.Organizations.ListModels(cmd.Context(), providerID)
			if err != nil {
				return fmt.Errorf("%s", rest.Message(err, "Failed to load models"))
			}

			table := uitable.New()
			table.AddRow("ID", "NAME", "CONTEXT", "ENABLED")
			for _, m := range list {
				table.AddRow(m.ID, m.Name, m.ContextWindow, m.Enabled)
			}
			fmt.Println(table.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&providerID, "provider", "", "提供方 ID")
	_ = cmd.MarkFlagRequired("provider")
	return cmd
}

func newModelsCreateCmd() *cobra.Command {
	var (
		providerID string
		params     orgs.ModelParams
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "在提供方下注册模型",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.sdk.Organizations.CreateModel(cmd.Context(), providerID, params)
			if err != nil {
				return fmt.Errorf("%s", rest.Message(err, "Failed to create model"))
			}
			fmt.Println(m.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&providerID, "provider", "", "提供方 ID")
	cmd.Flags().StringVar(&params.Name, "name", "", "模型名称")
	cmd.Flags().IntVar(&params.ContextWindow, "context-window", 0, "上下文窗口大小")
	_ = cmd.MarkFlagRequired("provider")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newModelsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <model-id>",
		Short: "删除模型",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.sdk.Organizations.DeleteModel(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("%s", rest.Message(err, "Failed to delete model"))
			}
			return nil
		},
	}
}
