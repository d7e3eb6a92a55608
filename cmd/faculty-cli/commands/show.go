package commands

import (
	"encoding/json"
	"os"

	"facultyhub-backend/lib/serviceutil"
	"facultyhub-backend/services/faculty"

	"github.com/spf13/cobra"
)

var showDb *string

func init() {
	showDb = showCmd.Flags().String("db", "faculty.db", "Database to read the profile from.")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <node-id>",
	Short: "Prints a stored faculty profile as JSON.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		database, err := faculty.OpenDatabase(*showDb)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()

		profile, err := faculty.NewService(database).Get(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("failed to load profile", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(profile); err != nil {
			serviceutil.Fatal("failed to encode profile", err)
		}
	},
}
