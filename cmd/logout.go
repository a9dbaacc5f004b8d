package cmd

import (
	"fmt"

	"github.com/rajat/learnhub/internal/store"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored student identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.StudentRepo().Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear student record: %w", err)
		}
		fmt.Println("Logged out. Quiz results will be kept locally only.")
		return nil
	},
}
