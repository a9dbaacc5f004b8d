package cmd

import (
	"fmt"

	"github.com/rajat/learnhub/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		attempts, err := st.AttemptRepo().Recent(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}
		if len(attempts) == 0 {
			fmt.Println("No quiz attempts yet.")
			return nil
		}

		for _, a := range attempts {
			synced := "synced"
			if !a.Reported {
				synced = "local"
			}
			fmt.Printf("%s  %-30s %s  %d/%d  %d%%  [%s]\n",
				a.TakenAt.Format("2006-01-02 15:04"), a.QuizTitle, a.Subject,
				a.Correct, a.Total, a.Accuracy, synced)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of attempts to show")
}
