package main

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/llm-dev-ops/governance-go/auth"
	"github.com/llm-dev-ops/governance-go/rest"
)

func newLoginCmd() *cobra.Command {
	var (
		email    string
		password string
		mfaCode  string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "登录并保存访问令牌",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.sdk.Auth.Login(cmd.Context(), auth.Credentials{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("%s", rest.Message(err, "Login failed"))
			}

			if resp.RequiresMFA {
				if mfaCode == "" {
					return fmt.Errorf("MFA code required, retry with --mfa-code")
				}
				if _, err := app.sdk.Auth.VerifyMFA(cmd.Context(), auth.MFAVerifyRequest{
					MFAToken: resp.MFAToken,
					Code:     mfaCode,
				}); err != nil {
					return fmt.Errorf("%s", rest.Message(err, "MFA verification failed"))
				}
			}

			fmt.Println("Logged in.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "u", "", "账号邮箱")
	cmd.Flags().StringVarP(&password, "password", "p", "", "账号密码")
	cmd.Flags().StringVar(&mfaCode, "mfa-code", "", "MFA 一次性验证码")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "清除本地访问令牌",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.sdk.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "显示当前登录用户",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.sdk.Auth.CurrentUser(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", rest.Message(err, "Failed to load user"))
			}

			table := uitable.New()
			table.RightAlign(0)
			table.Separator = " "
			table.AddRow("id:", user.ID)
			table.AddRow("email:", user.Email)
			table.AddRow("name:", user.FullName)
			table.AddRow("active:", user.IsActive)
			table.AddRow("superuser:", user.IsSuperuser)
			table.AddRow("mfa:", user.MFAEnabled)
			fmt.Println(table.String())
			return nil
		},
	}
}
