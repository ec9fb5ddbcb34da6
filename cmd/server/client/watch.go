package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wuxing-api/internal/broadcast"
	"github.com/KirkDiggler/wuxing-api/internal/redis"
)

var (
	watchRedisAddr string
	watchPrefix    string
)

var watchCmd = &cobra.Command{
	Use:   "watch [player_id]",
	Short: "Stream a player's game events from Redis",
	Long: `Subscribe to the player's event channel and print every event as it is
published by the server. Stops on Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: watch,
}

func init() {
	watchCmd.Flags().StringVar(&watchRedisAddr, "redis", "localhost:6379", "Redis address")
	watchCmd.Flags().StringVar(&watchPrefix, "prefix", broadcast.DefaultChannelPrefix, "event channel prefix")
}

func watch(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := redis.NewClient(watchRedisAddr)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}()
	if err := redis.Ping(ctx, client); err != nil {
		return err
	}

	channel := watchPrefix + args[0]
	sub := client.Subscribe(ctx, channel)
	defer func() {
		_ = sub.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "Watching %s...\n", channel)

	msgs := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := printMessage(w, m.Payload); err != nil {
				_, _ = fmt.Fprintf(w, "! %v\n", err)
			}
		}
	}
}

func printMessage(w io.Writer, payload string) error {
	msg, err := broadcast.Decode(payload)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(msg.Fields))
	for k := range msg.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, msg.Fields[k])
	}

	_, err = fmt.Fprintf(w, "%s %-20s %s", msg.SentAt.Format("15:04:05"), msg.Type, msg.Summary)
	if err != nil {
		return err
	}
	if len(parts) > 0 {
		_, err = fmt.Fprintf(w, " (%s)", strings.Join(parts, " "))
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w)
	return err
}
