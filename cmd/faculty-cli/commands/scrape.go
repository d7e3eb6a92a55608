package commands

import (
	"encoding/json"
	"os"

	"facultyhub-backend/lib/serviceutil"
	"facultyhub-backend/services/faculty"

	"github.com/spf13/cobra"
)

var scrapeDb *string

func init() {
	scrapeDb = scrapeCmd.Flags().String("db", "", "Database to save the profile to. Prints JSON to stdout when unset.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape <node-id>",
	Short: "Scrapes one faculty profile by node id.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		client, cleanup := newClient(cfg, true)
		defer cleanup()

		profile, err := client.ScrapeProfile(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("failed to scrape profile", err)
		}

		if *scrapeDb != "" {
			database, err := faculty.OpenDatabase(*scrapeDb)
			if err != nil {
				serviceutil.Fatal("failed to open db", err)
			}
			defer database.Close()

			profile, err = faculty.NewService(database).Save(cmd.Context(), profile)
			if err != nil {
				serviceutil.Fatal("failed to save profile", err)
			}
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(profile); err != nil {
			serviceutil.Fatal("failed to encode profile", err)
		}
	},
}
