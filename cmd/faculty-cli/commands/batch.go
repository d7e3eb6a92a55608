package commands

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"facultyhub-backend/lib/serviceutil"
	"facultyhub-backend/services/faculty"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var batchDb *string

func init() {
	batchDb = batchCmd.Flags().String("db", "faculty.db", "Database to save scraped profiles to.")
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch <from> <to>",
	Short: "Scrapes a node-id range in batches and saves the results.",
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
		client, cleanup := newClient(cfg, true)
		defer cleanup()

		database, err := faculty.OpenDatabase(*batchDb)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()
		service := faculty.NewService(database)

		ids := make([]string, 0, to-from+1)
		for id := from; id <= to; id++ {
			ids = append(ids, strconv.Itoa(id))
		}

		size, delay := batchOptions(cfg)
		t1 := time.Now()
		result := faculty.ScrapeBatch(cmd.Context(), client, ids, faculty.BatchOptions{
			Size:  size,
			Delay: delay,
		})
		slog.Info("batch scrape finished",
			"seconds", time.Since(t1).Seconds(),
			"successful", len(result.Successful),
			"failed", len(result.Failed),
		)

		for _, profile := range result.Successful {
			if _, err := service.Save(cmd.Context(), profile); err != nil {
				slog.Error("failed to save profile", "node_id", profile.NodeID, "err", err)
			}
		}

		w := table.NewWriter()
		w.SetOutputMirror(os.Stdout)
		w.AppendHeader(table.Row{"Node ID", "Name", "Department", "Status"})
		for _, profile := range result.Successful {
			w.AppendRow(table.Row{profile.NodeID, profile.Name, profile.Department, "ok"})
		}
		for _, failure := range result.Failed {
			w.AppendRow(table.Row{failure.NodeID, "", "", failure.Err.Error()})
		}
		w.Render()
	},
}
