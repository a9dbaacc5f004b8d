package cmd

import (
	"fmt"
	"time"

	"github.com/rajat/learnhub/internal/store"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store your student identity for progress sync",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("id")
		name, _ := cmd.Flags().GetString("name")
		token, _ := cmd.Flags().GetString("token")
		if id == "" || name == "" {
			return fmt.Errorf("both --id and --name are required")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		err = st.StudentRepo().Save(cmd.Context(), store.StudentRecord{
			StudentID:  id,
			Name:       name,
			Token:      token,
			LoggedInAt: time.Now(),
		})
		if err != nil {
			return fmt.Errorf("save student record: %w", err)
		}

		fmt.Printf("Logged in as %s. Quiz results will sync to the portal.\n", name)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("id", "", "Portal student id")
	loginCmd.Flags().String("name", "", "Display name")
	loginCmd.Flags().String("token", "", "API token (optional)")
}
