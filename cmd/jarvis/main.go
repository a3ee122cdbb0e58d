package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Belkouche/jarvis-sub000/internal/interfaces/cli/migrate"
	"github.com/Belkouche/jarvis-sub000/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jarvis",
		Short: "Jarvis - bilingual customer support message pipeline",
		Long:  `Jarvis processes inbound customer messages: intent extraction, contract status lookup, bilingual replies, complaint tracking and escalation.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
