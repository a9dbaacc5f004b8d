package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rajat/learnhub/internal/update"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update learnhub to the latest version",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := update.NewChecker(update.WithTimeout(2 * time.Minute))

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		err := checker.Update(ctx, &update.UpdateInput{
			CurrentVersion: version,
		}, func(p update.UpdateProgress) {
			fmt.Println(p.Message)
		})

		if err == nil {
			return nil
		}

		if errors.Is(err, update.ErrDevBuild) {
			fmt.Println("Cannot update a development build. Install a release build first.")
			return nil
		}
		if errors.Is(err, update.ErrAlreadyLatest) {
			fmt.Println("Already running the latest version.")
			return nil
		}
		if os.IsPermission(err) {
			return fmt.Errorf("%w\n\nTry running: sudo learnhub update", err)
		}

		return err
	},
}
