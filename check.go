package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/shivanshs9/wordcheck/set"
	"github.com/shivanshs9/wordcheck/wordcheck"
	"github.com/sirupsen/logrus"
)

var checkLog = logrus.WithField("module", "check")

// Report summarizes one CheckText run.
type Report struct {
	Checked    int
	Misspelled int
	// Distinct counts distinct misspelled words
	Distinct int
}

// normalizeWord strips surrounding punctuation and upper-cases the token,
// matching the upper case word lists. It returns "" for tokens without
// letters or digits.
func normalizeWord(token string) string {
	word := strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.ToUpper(word)
}

// readWords streams the normalized words of r into words and closes it when
// r is exhausted or ctx is done.
func readWords(ctx context.Context, r io.Reader, words chan<- string, errs chan<- error) {
	defer close(words)

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		word := normalizeWord(scanner.Text())
		if word == "" {
			continue
		}
		select {
		case words <- word:
		case <-ctx.Done():
			errs <- ctx.Err()
			return
		}
	}

	errs <- errors.Wrap(scanner.Err(), "scan text")
}

// CheckText checks every word of r, writing one line per word to out:
//
//	WORD: OK
//	WORD: misspelled; suggestions: A, B
//	WORD: misspelled; no suggestions
func CheckText(ctx context.Context, r io.Reader, checker *wordcheck.Checker, out io.Writer) (Report, error) {
	var report Report

	words := make(chan string, 64)
	errs := make(chan error, 1)
	go readWords(ctx, r, words, errs)

	misspelled := set.NewHashSet(set.StringHash)
	w := bufio.NewWriter(out)

loop:
	for {
		select {
		case <-ctx.Done():
			w.Flush()
			return report, ctx.Err()
		case word, ok := <-words:
			if !ok {
				break loop
			}
			report.Checked++

			if checker.WordExists(word) {
				fmt.Fprintf(w, "%s: OK\n", word)
				continue
			}

			report.Misspelled++
			misspelled.Add(word)

			suggestions := checker.FindSuggestions(word)
			if len(suggestions) == 0 {
				fmt.Fprintf(w, "%s: misspelled; no suggestions\n", word)
			} else {
				fmt.Fprintf(w, "%s: misspelled; suggestions: %s\n", word, strings.Join(suggestions, ", "))
			}
		}
	}

	report.Distinct = misspelled.Size()

	if err := <-errs; err != nil {
		return report, err
	}
	if err := w.Flush(); err != nil {
		return report, errors.Wrap(err, "write results")
	}

	checkLog.WithFields(logrus.Fields{
		"checked":    report.Checked,
		"misspelled": report.Misspelled,
		"distinct":   report.Distinct,
	}).Debug("Text checked")
	return report, nil
}
