package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lunara-health/lunara/internal/attempt"
	"github.com/lunara-health/lunara/internal/auth"
	"github.com/lunara-health/lunara/internal/httpapi"
	"github.com/lunara-health/lunara/internal/llm"
	"github.com/lunara-health/lunara/internal/progress"
	"github.com/lunara-health/lunara/internal/quizgen"
	"github.com/lunara-health/lunara/internal/store"
)

// runServer opens the store, builds dependencies, and serves the API.
func runServer(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("LLM configuration: %w", err)
	}
	provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
	if err != nil {
		return fmt.Errorf("initialize LLM provider: %w", err)
	}

	tokens, err := auth.NewTokenIssuerFromEnv()
	if err != nil {
		return err
	}

	progSvc := progress.NewService(st.ProgressRepo())
	attemptSvc := attempt.NewService(st.QuizRepo(), st.AttemptRepo(), progSvc)
	generator := quizgen.New(provider, quizgen.DefaultConfig())

	srv := httpapi.NewServer(st.UserRepo(), st.QuizRepo(), progSvc, attemptSvc, generator, tokens)

	addr, _ := cmd.Flags().GetString("addr")
	if !cmd.Flags().Changed("addr") {
		if env := os.Getenv("LUNARA_ADDR"); env != "" {
			addr = env
		}
	}
	fmt.Fprintf(os.Stderr, "listening on %s (db %s, model %s)\n", addr, dbPath, provider.ModelID())
	return srv.Router().Run(addr)
}
