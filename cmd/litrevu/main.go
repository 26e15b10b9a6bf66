package main

import (
	"os"

	"github.com/spf13/cobra"

	"litrevu/internal/interfaces/cli/migrate"
	"litrevu/internal/interfaces/cli/server"
	"litrevu/internal/interfaces/cli/user"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "litrevu",
		Short: "LITRevu - a book and article review community",
		Long:  `LITRevu lets readers request and publish reviews of books and articles, and follow each other's posts.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		user.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
