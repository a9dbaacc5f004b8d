package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/rajat/learnhub/internal/api"
	"github.com/rajat/learnhub/internal/app"
	"github.com/rajat/learnhub/internal/bus"
	"github.com/rajat/learnhub/internal/config"
	"github.com/rajat/learnhub/internal/identity"
	"github.com/rajat/learnhub/internal/report"
	"github.com/rajat/learnhub/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
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

	client := api.New(cfg.APIBaseURL, cfg.RequestTimeout)

	// Identity is optional. Quizzes work without it; results then
	// stay local instead of syncing to the portal.
	student, err := identity.Load(ctx, st.StudentRepo())
	if err != nil {
		if !errors.Is(err, identity.ErrNotAuthenticated) {
			return fmt.Errorf("load identity: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Not logged in. Quiz results will be kept locally only.")
		student = nil
	}
	if student != nil {
		client.SetToken(student.Token)
	}

	events := bus.New()

	return app.Run(app.Options{
		Client:      client,
		Reporter:    report.New(client, student, st.AttemptRepo(), events),
		AttemptRepo: st.AttemptRepo(),
		Student:     student,
		Events:      events,
	})
}
