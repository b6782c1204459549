package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llm-dev-ops/governance-go/version"
)

func newVersionCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "显示版本信息",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			switch outputFormat {
			case "json":
				jsonStr, err := info.ToJSON()
				if err != nil {
					return err
				}
				fmt.Println(jsonStr)
			default:
				fmt.Println(info.Text())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "输出格式 (text, json)")
	return cmd
}
