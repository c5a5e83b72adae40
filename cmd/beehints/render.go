package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
	"github.com/heartmarshall/beetracker-backend/internal/hints"
	"github.com/heartmarshall/beetracker-backend/internal/progress"
	"github.com/heartmarshall/beetracker-backend/internal/service/game"
)

const emptyCell = "-"

// gridTable lays out a hints grid with a totals column and row.
func gridTable(grid domain.HintsGrid) ([]string, [][]string, []columnAlignment) {
	lengths := grid.Lengths()

	headers := make([]string, 0, len(lengths)+2)
	aligns := make([]columnAlignment, 0, len(lengths)+2)
	headers = append(headers, "")
	aligns = append(aligns, alignLeft)
	for _, n := range lengths {
		headers = append(headers, strconv.Itoa(n))
		aligns = append(aligns, alignRight)
	}
	headers = append(headers, "Σ")
	aligns = append(aligns, alignRight)

	rows := make([][]string, 0, len(grid)+1)
	for _, letter := range grid.Letters() {
		row := []string{strings.ToUpper(letter)}
		for _, n := range lengths {
			row = append(row, countCell(grid.Count(letter, n)))
		}
		row = append(row, strconv.Itoa(grid.LetterTotal(letter)))
		rows = append(rows, row)
	}

	totals := []string{"Σ"}
	for _, n := range lengths {
		totals = append(totals, countCell(grid.LengthTotal(n)))
	}
	totals = append(totals, strconv.Itoa(grid.Total()))
	rows = append(rows, totals)

	return headers, rows, aligns
}

func countCell(n int) string {
	if n == 0 {
		return emptyCell
	}
	return strconv.Itoa(n)
}

func upperAll(letters []string) string {
	return strings.ToUpper(strings.Join(letters, " "))
}

func renderParse(w io.Writer, res *hints.Result, styled bool) {
	fmt.Fprintf(w, "Letters:  %s\n", upperAll(res.AllowedLetters.Letters()))
	fmt.Fprintf(w, "Words:    %d\n", res.TotalWords)
	fmt.Fprintf(w, "Points:   %d\n", res.TargetPoints)
	fmt.Fprintf(w, "Pangrams: %d\n", res.PangramCount)

	headers, rows, aligns := gridTable(res.Grid)
	fmt.Fprintln(w, renderTable(headers, rows, aligns, styled))

	if len(res.TwoLetters) > 0 {
		rows := make([][]string, 0, len(res.TwoLetters))
		for _, e := range res.TwoLetters {
			rows = append(rows, []string{strings.ToUpper(e.Combo), countCell(e.Count)})
		}
		fmt.Fprintln(w, renderTable([]string{"Start", "Words"}, rows, []columnAlignment{alignLeft, alignRight}, styled))
	}

	for _, warning := range res.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
}

func renderSummary(w io.Writer, v *game.ProgressView) {
	fmt.Fprintf(w, "Letters:  %s\n", upperAll(v.AllowedLetters))
	fmt.Fprintf(w, "Words:    %d/%d (%d%%)\n", len(v.FoundWords), v.TotalWords, v.ProgressPercentage)
	fmt.Fprintf(w, "Points:   %d/%d\n", v.TotalPoints, v.TargetPoints)
	fmt.Fprintf(w, "Pangrams: %d/%d\n", v.PangramsFound, v.PangramsTotal)
	for _, notice := range v.Notices {
		fmt.Fprintf(w, "notice: %s\n", notice)
	}
}

func renderProgress(w io.Writer, v *game.ProgressView, styled bool) {
	renderSummary(w, v)

	if len(v.RemainingGrid) > 0 {
		fmt.Fprintln(w, "\nRemaining")
		headers, rows, aligns := gridTable(v.RemainingGrid)
		fmt.Fprintln(w, renderTable(headers, rows, aligns, styled))
	}

	if rows := twoLetterRows(v.RemainingTwoLetters); len(rows) > 0 {
		fmt.Fprintln(w, renderTable(
			[]string{"Start", "Found", "Left"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignRight},
			styled,
		))
	}

	if len(v.FoundWords) > 0 {
		fmt.Fprintf(w, "\nFound: %s\n", strings.Join(v.FoundWords, ", "))
	}
	if len(v.InvalidWords) > 0 {
		fmt.Fprintf(w, "Rejected: %s\n", strings.Join(v.InvalidWords, ", "))
	}
}

// twoLetterRows lists the combos that still have words left.
func twoLetterRows(items []progress.TwoLetterProgress) [][]string {
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		if p.Remaining == 0 {
			continue
		}
		rows = append(rows, []string{strings.ToUpper(p.Combo), strconv.Itoa(p.Found), strconv.Itoa(p.Remaining)})
	}
	return rows
}

func classificationLabel(c progress.Classification) string {
	switch {
	case !c.Valid && c.Added:
		return "rejected"
	case !c.Valid:
		return "already rejected"
	case !c.Added:
		return "already found"
	case c.Pangram:
		return "pangram!"
	default:
		return "found"
	}
}

func renderClassifications(w io.Writer, items []progress.Classification, styled bool) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No words found in input.")
		return
	}
	rows := make([][]string, 0, len(items))
	for _, c := range items {
		points := emptyCell
		if c.Valid && c.Added {
			points = "+" + strconv.Itoa(c.Points)
		}
		rows = append(rows, []string{c.Word, classificationLabel(c), points})
	}
	fmt.Fprintln(w, renderTable(
		[]string{"Word", "Result", "Points"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight},
		styled,
	))
}
