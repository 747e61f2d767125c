package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/wcferry-go/pkg/wcf"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Annotations: map[string]string{skipConfigLoad: "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "wcf %s (WeChatFerry %s)\n", wcf.ClientVersion(), wcf.UpstreamVersion())
			return nil
		},
	}
}
