// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wuxing-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "wuxing-api",
	Short: "WuXing game gRPC server",
	Long:  `WuXing API serves the five-element battle game over gRPC and relays game events to Redis.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
