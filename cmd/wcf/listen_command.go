package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/wcferry-go/pkg/wcf"
	"github.com/hsiuhsiu/wcferry-go/pkg/wcf/wcfpb"
)

func newListenCommand(ctx *commandContext) *cobra.Command {
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Print incoming messages until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if duration > 0 {
				var cancel context.CancelFunc
				runCtx, cancel = context.WithTimeout(runCtx, duration)
				defer cancel()
			}

			return ctx.withClient(func(client *wcf.Client) error {
				return listen(runCtx, client, cmd.OutOrStdout())
			})
		},
	}
	cmd.Flags().DurationVar(&duration, "duration", 0, "Stop after this long (0 runs until interrupted)")
	return cmd
}

func listen(ctx context.Context, client *wcf.Client, out io.Writer) error {
	var mu sync.Mutex
	client.RegisterEventHandler(func(ev wcf.Event) {
		if m, ok := ev.(wcf.MessageReceived); ok {
			mu.Lock()
			fmt.Fprintln(out, formatMessage(m.Msg))
			mu.Unlock()
		}
	})
	defer client.UnregisterEventHandler()

	if err := client.EnableListen(); err != nil {
		return err
	}
	<-ctx.Done()

	if _, err := client.DisableListen(); err != nil {
		return err
	}
	client.WaitListener()
	return nil
}

func formatMessage(m *wcfpb.WxMsg) string {
	ts := time.Unix(int64(m.Ts), 0).Format(time.DateTime)
	from := m.Sender
	if m.IsGroup {
		from = m.Sender + "@" + m.RoomID
	}
	if m.IsSelf {
		from += " (self)"
	}
	return fmt.Sprintf("%s [%d] %s: %s", ts, m.Type, from, m.Content)
}
