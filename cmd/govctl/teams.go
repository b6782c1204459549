package main

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/llm-dev-ops/governance-go/orgs"
	"github.com/llm-dev-ops/governance-go/rest"
)

func newTeamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "管理团队",
	}

	cmd.AddCommand(
		newTeamsListCmd(),
		newTeamsCreateCmd(),
		newTeamsDeleteCmd(),
	)

	return cmd
}

func newTeamsListCmd() *cobra.Command {
	var orgID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "列出组织下的团队",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := requireOrg(orgID)
			if err != nil {
				return err
			}
			list, err := app.sdk.Organizations.ListTeams(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("%s", rest.Message(err, "Failed to load teams"))
			}

			table := uitable.New()
			table.AddRow("ID", "NAME", "DESCRIPTION")
			for _, team := range list {
				table.AddRow(team.ID, team.Name, team.Description)
			}
			fmt.Println(table.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&orgID, "org", "", "组织 ID")
	return cmd
}

func newTeamsCreateCmd() *cobra.Command {
	var (
		orgID  string
		params orgs.TeamParams
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "创建团队",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := requireOrg(orgID)
			if err != nil {
				return err
			}
			team, err := app.sdk.Organizations.CreateTeam(cmd.Context(), id, params)
			if err != nil {
				return fmt.Errorf("%s", rest.Message(err, "Failed to create team"))
			}
			fmt.Println(team.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&orgID, "org", "", "组织 ID")
	cmd.Flags().StringVar(&params.Name, "name", "", "团队名称")
	cmd.Flags().StringVar(&params.Description, "description", "", "团队描述")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTeamsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <team-id>",
		Short: "删除团队",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.sdk.Organizations.DeleteTeam(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("%s", rest.Message(err, "Failed to delete team"))
			}
			return nil
		},
	}
}
