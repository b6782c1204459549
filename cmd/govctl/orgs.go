package main

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/llm-dev-ops/governance-go/orgs"
	"github.com/llm-dev-ops/governance-go/rest"
)

func newOrgsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orgs",
		Short: "管理组织",
	}

	cmd.AddCommand(
		newOrgsListCmd(),
		newOrgsCreateCmd(),
		newOrgsUseCmd(),
		newOrgsDeleteCmd(),
	)

	return cmd
}

func newOrgsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "列出当前用户可见的组织",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.sdk.Organizations.ListOrganizations(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", rest.Message(err, "Failed to load organizations"))
			}

			current := loadCurrentOrg(app.settings)
			table := uitable.New()
			table.AddRow("", "ID", "NAME", "SLUG", "DESCRIPTION")
			for _, org := range list {
				marker := ""
				if org.ID == current {
					marker = "*"
				}
				table.AddRow(marker, org.ID, org.Name, org.Slug, org.Description)
			}
			fmt.Println(table.String())
			return nil
		},
	}
}

func newOrgsCreateCmd() *cobra.Command {
	var params orgs.OrganizationParams

	cmd := &cobra.Command{
		Use:   "create",
		Short: "创建组织",
		RunE: func(cmd *cobra.Command, args []string) error {
			org, err := app.sdk.Organizations.CreateOrganization(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("%s", rest.Message(err, "Failed to create organization"))
			}
			fmt.Println(org.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Name, "name", "", "组织名称")
	cmd.Flags().StringVar(&params.Slug, "slug", "", "组织标识")
	cmd.Flags().StringVar(&params.Description, "description", "", "组织描述")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newOrgsUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <org-id>",
		Short: "设置后续命令的默认组织",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			org, err := app.sdk.Organizations.GetOrganization(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%s", rest.Message(err, "Failed to load organization"))
			}
			if err := saveCurrentOrg(app.settings, org.ID); err != nil {
				return err
			}
			fmt.Printf("Using organization %s (%s)\n", org.Name, org.ID)
			return nil
		},
	}
}

func newOrgsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <org-id>",
		Short: "删除组织",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.sdk.Organizations.DeleteOrganization(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("%s", rest.Message(err, "Failed to delete organization"))
			}
			if loadCurrentOrg(app.settings) == args[0] {
				_ = saveCurrentOrg(app.settings, "")
			}
			return nil
		},
	}
}

// requireOrg 解析 --org 标志，未提供时回退到 orgs use 记录的默认组织。
func requireOrg(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if id := loadCurrentOrg(app.settings); id != "" {
		return id, nil
	}
	return "", fmt.Errorf("no organization selected, pass --org or run `govctl orgs use`")
}
