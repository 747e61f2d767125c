package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/wcferry-go/pkg/wcf"
)

func newIsLoginCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "is-login",
		Short: "Report whether WeChat is logged in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *wcf.Client) error {
				ok, err := client.IsLogin()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ok)
				return nil
			})
		},
	}
}

func newWhoamiCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *wcf.Client) error {
				info, err := client.UserInfo()
				if err != nil {
					return err
				}
				if info == nil {
					return fmt.Errorf("sdk returned no user info")
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "wxid:   %s\n", info.Wxid)
				fmt.Fprintf(out, "name:   %s\n", info.Name)
				fmt.Fprintf(out, "mobile: %s\n", info.Mobile)
				fmt.Fprintf(out, "home:   %s\n", info.Home)
				return nil
			})
		},
	}
}

func newContactsCommand(ctx *commandContext) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "List contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *wcf.Client) error {
				contacts, err := client.Contacts()
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(contacts))
				for _, c := range contacts {
					if filter != "" && !strings.Contains(c.Wxid, filter) && !strings.Contains(c.Name, filter) && !strings.Contains(c.Remark, filter) {
						continue
					}
					rows = append(rows, []string{c.Wxid, c.Code, c.Name, c.Remark, genderLabel(c.Gender)})
				}
				sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })
				if len(rows) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No contacts")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Wxid", "Code", "Name", "Remark", "Gender"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "Only show contacts whose wxid, name or remark contains this text")
	return cmd
}

func genderLabel(g int32) string {
	switch g {
	case 1:
		return "male"
	case 2:
		return "female"
	default:
		return ""
	}
}
