package rest

import (
	"time"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
	"github.com/heartmarshall/beetracker-backend/internal/hints"
	"github.com/heartmarshall/beetracker-backend/internal/progress"
	"github.com/heartmarshall/beetracker-backend/internal/service/game"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type textRequest struct {
	Text string `json:"text"`
}

type submitWordsRequest struct {
	Words []string `json:"words"`
	Text  string   `json:"text"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type twoLetterResponse struct {
	Combo     string `json:"combo"`
	Total     int    `json:"total"`
	Found     int    `json:"found"`
	Remaining int    `json:"remaining"`
}

type parseResponse struct {
	AllowedLetters []string            `json:"allowedLetters"`
	Lengths        []int               `json:"lengths"`
	Grid           domain.HintsGrid    `json:"grid"`
	TwoLetters     []twoLetterResponse `json:"twoLetters"`
	TotalWords     int                 `json:"totalWords"`
	PangramCount   int                 `json:"pangramCount"`
	TargetPoints   int                 `json:"targetPoints,omitempty"`
	Warnings       []string            `json:"warnings"`
}

type progressResponse struct {
	SessionID          string              `json:"sessionId"`
	LoadedAt           time.Time           `json:"loadedAt"`
	AllowedLetters     []string            `json:"allowedLetters"`
	Grid               domain.HintsGrid    `json:"grid"`
	RemainingGrid      domain.HintsGrid    `json:"remainingGrid"`
	TwoLetters         []twoLetterResponse `json:"twoLetters"`
	FoundWords         []string            `json:"foundWords"`
	InvalidWords       []string            `json:"invalidWords"`
	Pangrams           []string            `json:"pangrams"`
	PangramsFound      int                 `json:"pangramsFound"`
	PangramsTotal      int                 `json:"pangramsTotal"`
	TotalPoints        int                 `json:"totalPoints"`
	TargetPoints       int                 `json:"targetPoints,omitempty"`
	TotalWords         int                 `json:"totalWords"`
	ProgressPercentage int                 `json:"progressPercentage"`
	Notices            []string            `json:"notices,omitempty"`
}

type loadResponse struct {
	Warnings []string         `json:"warnings"`
	Progress progressResponse `json:"progress"`
}

type classificationResponse struct {
	Word    string `json:"word"`
	Valid   bool   `json:"valid"`
	Pangram bool   `json:"pangram"`
	New     bool   `json:"new"`
	Points  int    `json:"points"`
}

type submitResponse struct {
	Results  []classificationResponse `json:"results"`
	Progress progressResponse         `json:"progress"`
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func toParseResponse(res *hints.Result) parseResponse {
	twoLetters := make([]twoLetterResponse, 0, len(res.TwoLetters))
	for _, e := range res.TwoLetters {
		twoLetters = append(twoLetters, twoLetterResponse{Combo: e.Combo, Total: e.Count, Remaining: e.Count})
	}
	return parseResponse{
		AllowedLetters: nonNil(res.AllowedLetters.Letters()),
		Lengths:        res.Header.Lengths,
		Grid:           res.Grid,
		TwoLetters:     twoLetters,
		TotalWords:     res.TotalWords,
		PangramCount:   res.PangramCount,
		TargetPoints:   res.TargetPoints,
		Warnings:       nonNil(res.Warnings),
	}
}

func toTwoLetterResponses(items []progress.TwoLetterProgress) []twoLetterResponse {
	out := make([]twoLetterResponse, 0, len(items))
	for _, p := range items {
		out = append(out, twoLetterResponse{Combo: p.Combo, Total: p.Original, Found: p.Found, Remaining: p.Remaining})
	}
	return out
}

func toProgressResponse(v *game.ProgressView) progressResponse {
	return progressResponse{
		SessionID:          v.SessionID.String(),
		LoadedAt:           v.LoadedAt,
		AllowedLetters:     nonNil(v.AllowedLetters),
		Grid:               v.Grid,
		RemainingGrid:      v.RemainingGrid,
		TwoLetters:         toTwoLetterResponses(v.RemainingTwoLetters),
		FoundWords:         nonNil(v.FoundWords),
		InvalidWords:       nonNil(v.InvalidWords),
		Pangrams:           nonNil(v.Pangrams),
		PangramsFound:      v.PangramsFound,
		PangramsTotal:      v.PangramsTotal,
		TotalPoints:        v.TotalPoints,
		TargetPoints:       v.TargetPoints,
		TotalWords:         v.TotalWords,
		ProgressPercentage: v.ProgressPercentage,
		Notices:            v.Notices,
	}
}

func toLoadResponse(res *game.LoadResult) loadResponse {
	return loadResponse{
		Warnings: nonNil(res.Parse.Warnings),
		Progress: toProgressResponse(res.Progress),
	}
}

func toSubmitResponse(res *game.SubmitResult) submitResponse {
	results := make([]classificationResponse, 0, len(res.Classifications))
	for _, c := range res.Classifications {
		results = append(results, classificationResponse{
			Word:    c.Word,
			Valid:   c.Valid,
			Pangram: c.Pangram,
			New:     c.Added,
			Points:  c.Points,
		})
	}
	return submitResponse{Results: results, Progress: toProgressResponse(res.Progress)}
}
