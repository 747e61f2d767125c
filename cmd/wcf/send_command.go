package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/wcferry-go/pkg/wcf"
)

func newSendTextCommand(ctx *commandContext) *cobra.Command {
	var aters string

	cmd := &cobra.Command{
		Use:   "send-text <receiver> <message>",
		Short: "Send a text message to a wxid or room",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *wcf.Client) error {
				ok, err := client.SendText(args[1], args[0], aters)
				if err != nil {
					return err
				}
				if !ok {
					return errors.New("sdk rejected the message")
				}
				fmt.Fprintln(cmd.OutOrStdout(), "sent")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&aters, "at", "", "Comma separated wxids to mention (notify@all for everyone)")
	return cmd
}
