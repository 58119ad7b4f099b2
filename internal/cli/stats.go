package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlehelper/internal/results"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Average guess count and failures for a run or a game log",
		Long:  "Reads a recorded run (--run, default the latest) or a day,guesses log file (--log).",
		Args:  cobra.NoArgs,
		Run:   runStats,
	}
	cmd.Flags().String("run", "", "Run ID in the results database")
	cmd.Flags().String("log", "", "Game log file with day,guesses lines ('-' for stdin)")
	cmd.MarkFlagsMutuallyExclusive("run", "log")
	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	runID, _ := cmd.Flags().GetString("run")
	logPath, _ := cmd.Flags().GetString("log")

	var sum results.Summary
	if logPath != "" {
		in := cmd.InOrStdin()
		if logPath != "-" {
			f, err := os.Open(logPath)
			if err != nil {
				exitErr("open log", err)
			}
			defer f.Close()
			in = f
		}
		rs, err := results.ReadLog(in)
		if err != nil {
			exitErr("read log", err)
		}
		sum = results.Summarize(rs)
	} else {
		db, err := results.Open(cfg.DB)
		if err != nil {
			exitErr("open results db", err)
		}
		defer db.Close()
		if runID == "" {
			run, err := db.LatestRun(cmd.Context())
			if err != nil {
				exitErr("latest run", err)
			}
			runID = run.ID
		}
		if sum, err = db.Summary(cmd.Context(), runID); err != nil {
			exitErr("results", err)
		}
	}

	if jsonOutput() {
		b, _ := json.MarshalIndent(sum, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatSummary(sum))
}

func formatSummary(s results.Summary) string {
	if s.Wins == 0 {
		return fmt.Sprintf("no solved games with %d failing", s.Failed)
	}
	return fmt.Sprintf("average guess is %.4f with %d failing (%d games)", s.Average, s.Failed, s.Games)
}
