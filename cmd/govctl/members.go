package main

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/llm-dev-ops/governance-go/rest"
)

func newMembersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "管理组织成员",
	}

	cmd.AddCommand(
		newMembersListCmd(),
		newMembersAddCmd(),
		newMembersRemoveCmd(),
	)

	return cmd
}

func newMembersListCmd() *cobra.Command {
	var orgID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "列出组织成员",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := requireOrg(orgID)
			if err != nil {
				return err
			}
			list, err := app.sdk.Organizations.ListOrganizationMembers(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("%s", rest.Message(err, "Failed to load members"))
			}

			table := uitable.New()
			table.AddRow("ID", "USER", "EMAIL", "ROLE")
			for _, m := range list {
				table.AddRow(m.ID, m.UserID, m.Email, m.Role)
			}
			fmt.Println(table.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&orgID, "org", "", "组织 ID")
	return cmd
}

func newMembersAddCmd() *cobra.Command {
	var (
		orgID  string
		userID string
		role   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "添加组织成员",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := requireOrg(orgID)
			if err != nil {
				return err
			}
			m, err := app.sdk.Organizations.AddOrganizationMember(cmd.Context(), id, userID, role)
			if err != nil {
				return fmt.Errorf("%s", rest.Message(err, "Failed to add member"))
			}
			fmt.Println(m.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&orgID, "org", "", "组织 ID")
	cmd.Flags().StringVar(&userID, "user", "", "用户 ID")
	cmd.Flags().StringVar(&role, "role", "member", "成员角色")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newMembersRemoveCmd() *cobra.Command {
	var orgID string

	cmd := &cobra.Command{
		Use:   "remove <member-id>",
		Short: "移除组织成员",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := requireOrg(orgID)
			if err != nil {
				return err
			}
			if err := app.sdk.Organizations.RemoveOrganizationMember(cmd.Context(), id, args[0]); err != nil {
				return fmt.Errorf("%s", rest.Message(err, "Failed to remove member"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&orgID, "org", "", "组织 ID")
	return cmd
}
