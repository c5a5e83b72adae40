package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
	"github.com/heartmarshall/beetracker-backend/internal/hints"
	"github.com/heartmarshall/beetracker-backend/internal/service/game"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type twoLetterJSON struct {
	Combo     string `json:"combo"`
	Total     int    `json:"total"`
	Found     int    `json:"found"`
	Remaining int    `json:"remaining"`
}

// sectionsJSON is the input split into grid lines and two-letter lines.
type sectionsJSON struct {
	Grid      string `json:"grid"`
	TwoLetter string `json:"twoLetter"`
}

type parseJSON struct {
	AllowedLetters []string         `json:"allowedLetters"`
	Lengths        []int            `json:"lengths"`
	Grid           domain.HintsGrid `json:"grid"`
	TwoLetters     []twoLetterJSON  `json:"twoLetters"`
	TotalWords     int              `json:"totalWords"`
	PangramCount   int              `json:"pangramCount"`
	TargetPoints   int              `json:"targetPoints"`
	Warnings       []string         `json:"warnings"`
	Sections       sectionsJSON     `json:"sections"`
}

type statusJSON struct {
	AllowedLetters      []string         `json:"allowedLetters"`
	RemainingGrid       domain.HintsGrid `json:"remainingGrid"`
	RemainingTwoLetters []twoLetterJSON  `json:"remainingTwoLetters"`
	FoundWords          []string         `json:"foundWords"`
	InvalidWords        []string         `json:"invalidWords"`
	Pangrams            []string         `json:"pangrams"`
	TotalWords          int              `json:"totalWords"`
	TotalPoints         int              `json:"totalPoints"`
	TargetPoints        int              `json:"targetPoints"`
	PangramsFound       int              `json:"pangramsFound"`
	PangramsTotal       int              `json:"pangramsTotal"`
	ProgressPercentage  int              `json:"progressPercentage"`
	Notices             []string         `json:"notices"`
}

func toParseJSON(res *hints.Result, raw string) parseJSON {
	grid, twoLetter := hints.SeparateText(raw)
	twoLetters := make([]twoLetterJSON, 0, len(res.TwoLetters))
	for _, e := range res.TwoLetters {
		twoLetters = append(twoLetters, twoLetterJSON{Combo: e.Combo, Total: e.Count, Remaining: e.Count})
	}
	return parseJSON{
		AllowedLetters: orEmpty(res.AllowedLetters.Letters()),
		Lengths:        orEmpty(res.Grid.Lengths()),
		Grid:           res.Grid,
		TwoLetters:     twoLetters,
		TotalWords:     res.TotalWords,
		PangramCount:   res.PangramCount,
		TargetPoints:   res.TargetPoints,
		Warnings:       orEmpty(res.Warnings),
		Sections:       sectionsJSON{Grid: grid, TwoLetter: twoLetter},
	}
}

func toStatusJSON(v *game.ProgressView) statusJSON {
	twoLetters := make([]twoLetterJSON, 0, len(v.RemainingTwoLetters))
	for _, p := range v.RemainingTwoLetters {
		twoLetters = append(twoLetters, twoLetterJSON{Combo: p.Combo, Total: p.Original, Found: p.Found, Remaining: p.Remaining})
	}
	return statusJSON{
		AllowedLetters:      orEmpty(v.AllowedLetters),
		RemainingGrid:       v.RemainingGrid,
		RemainingTwoLetters: twoLetters,
		FoundWords:          orEmpty(v.FoundWords),
		InvalidWords:        orEmpty(v.InvalidWords),
		Pangrams:            orEmpty(v.Pangrams),
		TotalWords:          v.TotalWords,
		TotalPoints:         v.TotalPoints,
		TargetPoints:        v.TargetPoints,
		PangramsFound:       v.PangramsFound,
		PangramsTotal:       v.PangramsTotal,
		ProgressPercentage:  v.ProgressPercentage,
		Notices:             orEmpty(v.Notices),
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
