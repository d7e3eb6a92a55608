package commands

import (
	"os"
	"strconv"

	"facultyhub-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var discoverConcurrency *int

func init() {
	discoverConcurrency = discoverCmd.Flags().Int("concurrency", 4, "Number of node ids probed at once.")
	rootCmd.AddCommand(discoverCmd)
}

var discoverCmd = &cobra.Command{
	Use:   "discover <from> <to>",
	Short: "Probes a node-id range and lists the ids hosting faculty profiles.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		from, err := strconv.Atoi(args[0])
		if err != nil {
			serviceutil.Fatal("invalid <from>", err)
		}
		to, err := strconv.Atoi(args[1])
		if err != nil {
			serviceutil.Fatal("invalid <to>", err)
		}

		cfg := loadConfig()
		client, cleanup := newClient(cfg, false)
		defer cleanup()

		found, err := client.Discover(cmd.Context(), from, to, *discoverConcurrency)
		if err != nil {
			serviceutil.Fatal("discovery interrupted", err)
		}

		w := table.NewWriter()
		w.SetOutputMirror(os.Stdout)
		w.AppendHeader(table.Row{"Node ID", "Name"})
		for _, p := range found {
			w.AppendRow(table.Row{p.NodeID, p.Name})
		}
		w.Render()
	},
}
