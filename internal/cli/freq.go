package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlehelper/internal/words"
)

func init() {
	cmd := &cobra.Command{
		Use:   "freq",
		Short: "Letter frequency report for the word list",
		Long:  "Counts every letter occurrence in the word list and reports the share held by the ten most common letters.",
		Args:  cobra.NoArgs,
		Run:   runFreq,
	}
	cmd.Flags().IntP("top", "n", 26, "Rows to print")
	RootCmd.AddCommand(cmd)
}

// freqReport is the ranked letter table plus the top-ten share.
type freqReport struct {
	Letters  []letterCount `json:"letters"`
	Total    int           `json:"total"`
	TopShare float64       `json:"top10Share"`
}

type letterCount struct {
	Letter string `json:"letter"`
	Count  int    `json:"count"`
}

func runFreq(cmd *cobra.Command, args []string) {
	top, _ := cmd.Flags().GetInt("top")
	lex, err := loadLexicon()
	if err != nil {
		exitErr("load lexicon", err)
	}
	rep := letterReport(lex)
	if jsonOutput() {
		b, _ := json.MarshalIndent(rep, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return
	}
	writeFreq(cmd.OutOrStdout(), rep, top)
}

// letterReport ranks letters by count, ties in first-appearance order,
// which is the same order the suggestion search uses.
func letterReport(lex *words.Lexicon) freqReport {
	freqs := lex.Frequencies()
	sort.SliceStable(freqs, func(i, j int) bool { return freqs[i].Count > freqs[j].Count })

	var rep freqReport
	top := 0
	for i, f := range freqs {
		rep.Letters = append(rep.Letters, letterCount{Letter: string(f.Letter), Count: f.Count})
		rep.Total += f.Count
		if i < 10 {
			top += f.Count
		}
	}
	if rep.Total > 0 {
		rep.TopShare = float64(top) / float64(rep.Total)
	}
	return rep
}

func writeFreq(w io.Writer, rep freqReport, rows int) {
	r := lipgloss.NewRenderer(w)
	letter := r.NewStyle().Bold(true).Width(3)
	count := r.NewStyle().Width(7).Align(lipgloss.Right).MarginRight(1)
	bar := r.NewStyle().Foreground(lipgloss.Color("#538d4e"))

	maxCount := 1
	if len(rep.Letters) > 0 {
		maxCount = rep.Letters[0].Count
	}
	for i, lc := range rep.Letters {
		if i >= rows {
			break
		}
		width := lc.Count * 40 / maxCount
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
			letter.Render(lc.Letter),
			count.Render(fmt.Sprint(lc.Count)),
			bar.Render(strings.Repeat("█", width)),
		))
	}
	fmt.Fprintf(w, "top 10 letters hold %.4f of %d letters\n", rep.TopShare, rep.Total)
}
