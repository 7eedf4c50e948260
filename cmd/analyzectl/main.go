// Command analyzectl runs one-shot analysis, matching, and inventory sync
// from the terminal. Results are printed as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fairyhunter13/resume-analyzer/internal/adapter/advisor/noop"
	"github.com/fairyhunter13/resume-analyzer/internal/adapter/inventory/memory"
	"github.com/fairyhunter13/resume-analyzer/internal/domain"
	"github.com/fairyhunter13/resume-analyzer/internal/engine"
	"github.com/fairyhunter13/resume-analyzer/internal/engine/lexicon"
	"github.com/fairyhunter13/resume-analyzer/internal/usecase"
)

const cliUser = "local"

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "analyzectl",
		Short:         "Resume analysis, job matching, and skill sync from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAnalyzeCmd(), newMatchCmd(), newSyncCmd())
	return root
}

func newAnalyzeCmd() *cobra.Command {
	var targetRole string
	var tenScale bool
	cmd := &cobra.Command{
		Use:   "analyze <resume.txt>",
		Short: "Extract signals from resume text and score it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			svc := usecase.NewAnalyzeService(engine.New(lexicon.Default()), noop.New())
			signals, score, err := svc.Analyze(cmd.Context(), string(text), targetRole)
			if err != nil {
				return err
			}
			if tenScale {
				score = engine.OnScale(score, domain.ScaleZeroToTen)
			}
			return printJSON(map[string]any{"signals": signals, "score": score})
		},
	}
	cmd.Flags().StringVar(&targetRole, "role", "", "target role for the role-fit adjustment")
	cmd.Flags().BoolVar(&tenScale, "ten-scale", false, "present the score on the 0-10 scale")
	return cmd
}

func newMatchCmd() *cobra.Command {
	var inventoryPath string
	cmd := &cobra.Command{
		Use:   "match <job.txt>",
		Short: "Match a skill inventory against a job description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			store := memory.New()
			if inventoryPath != "" {
				entries, err := loadInventory(inventoryPath)
				if err != nil {
					return err
				}
				store.Seed(cliUser, entries)
			}
			svc := usecase.NewMatchService(engine.New(lexicon.Default()), store, noop.New())
			result, err := svc.Match(cmd.Context(), cliUser, string(job))
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	cmd.Flags().StringVar(&inventoryPath, "inventory", "", "path to a JSON file with the skill inventory")
	return cmd
}

func newSyncCmd() *cobra.Command {
	var inventoryPath string
	cmd := &cobra.Command{
		Use:   "sync <skill> [skill...]",
		Short: "Reconcile discovered skills against an inventory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := memory.New()
			if inventoryPath != "" {
				entries, err := loadInventory(inventoryPath)
				if err != nil {
					return err
				}
				store.Seed(cliUser, entries)
			}
			svc := usecase.NewSyncService(store)
			created, err := svc.SyncSkills(cmd.Context(), cliUser, args)
			if err != nil {
				return err
			}
			all, err := svc.ListSkills(cmd.Context(), cliUser)
			if err != nil {
				return err
			}
			return printJSON(map[string]any{"created": created, "inventory": all})
		},
	}
	cmd.Flags().StringVar(&inventoryPath, "inventory", "", "path to a JSON file with the skill inventory")
	return cmd
}

func loadInventory(path string) ([]domain.SkillEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []domain.SkillEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse inventory %s: %w", path, err)
	}
	return entries, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
