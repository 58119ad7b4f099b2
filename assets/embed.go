// assets/embed.go
//
// Embedded word lists so the helper runs without any files configured.
//   - words.txt:   default lexicon (one five-letter word per line).
//   - answers.txt: past answers in play order, used by automated simulation.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed words.txt answers.txt
var files embed.FS

func readLines(name string) ([]string, error) {
	f, err := files.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// WordList returns the embedded default lexicon.
func WordList() ([]string, error) {
	return readLines("words.txt")
}

// AnswersList returns the embedded answer history, day 0 first.
func AnswersList() ([]string, error) {
	return readLines("answers.txt")
}
