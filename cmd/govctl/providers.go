package main

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/llm-dev-ops/governance-go/orgs"
	"github.com/llm-dev-ops/governance-go/rest"
)

func newProvidersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "管理 LLM 提供方",
	}

	cmd.AddCommand(
		newProvidersListCmd(),
		newProvidersCreateCmd(),
		newProvidersDeleteCmd(),
	)

	return cmd
}

func newProvidersListCmd() *cobra.Command {
	var orgID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "列出组织配置的 LLM 提供方",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := requireOrg(orgID)
			if err != nil {
				return err
			}
			list, err := app.sdk.Organizations.ListProviders(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("%s", rest.Message(err, "Failed to load providers"))
			}

			table := uitable.New()
			table.AddRow("ID", "NAME", "KIND", "ENDPOINT", "ENABLED")
			for _, p := range list {
				table.AddRow(p.ID, p.Name, p.Kind, p.Endpoint, p.Enabled)
			}
			fmt.Println(table.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&orgID, "org", "", "组织 ID")
	return cmd
}

func newProvidersCreateCmd() *cobra.Command {
	var (
		orgID  string
		params orgs.ProviderParams
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "创建 LLM 提供方",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := requireOrg(orgID)
			if err != nil {
				return err
			}
			p, err := app.sdk.Organizations.CreateProvider(cmd.Context(), id, params)
			if err != nil {
				return fmt.Errorf("%s", rest.Message(err, "Failed to create provider"))
			}
			fmt.Println(p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&orgID, "org", "", "组织 ID")
	cmd.Flags().StringVar(&params.Name, "name", "", "提供方名称")
	cmd.Flags().StringVar(&params.Kind, "kind", "", "提供方类型，如 openai、anthropic")
	cmd.Flags().StringVar(&params.Endpoint, "endpoint", "", "自定义接入地址")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

func newProvidersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <provider-id>",
		Short: "删除 LLM 提供方",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.sdk.Organizations.DeleteProvider(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("%s", rest.Message(err, "Failed to delete provider"))
			}
			return nil
		},
	}
}
