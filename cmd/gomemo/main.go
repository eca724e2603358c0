package main

import (
	"fmt"
	"os"

	"github.com/mwantia/gomemo/cmd/gomemo/cli"
	"github.com/mwantia/gomemo/cmd/gomemo/cli/client"
	"github.com/mwantia/gomemo/cmd/gomemo/cli/server"
)

var (
	version = "0.0.1-dev"
	commit  = "main"
)

func main() {
	root := cli.NewRootCommand(cli.VersionInfo{
		Version: version,
		Commit:  commit,
	})

	root.AddCommand(cli.NewVersionCommand())

	root.AddCommand(server.NewAgentCommand())
	root.AddCommand(server.NewConfigCommand())
	root.AddCommand(server.NewDatabaseCommand())

	root.AddCommand(client.NewShortcutCommand())
	root.AddCommand(client.NewTagCommand())
	root.AddCommand(client.NewMemoCommand())

	if err := root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
