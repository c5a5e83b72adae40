// Package codec holds the JSON shapes used to store parsed hints.
// Domain types have no json tags, so storage adapters serialise through here.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

type twoLetterJSON struct {
	Combo string `json:"combo"`
	Count int    `json:"count"`
}

// EncodeGrid marshals a grid as {"D": {"4": 2}}.
func EncodeGrid(g domain.HintsGrid) ([]byte, error) {
	if g == nil {
		g = domain.HintsGrid{}
	}
	return json.Marshal(map[string]map[int]int(g))
}

// DecodeGrid is the inverse of EncodeGrid. Zero and negative counts are dropped.
func DecodeGrid(data []byte) (domain.HintsGrid, error) {
	grid := make(domain.HintsGrid)
	if len(data) == 0 {
		return grid, nil
	}
	var raw map[string]map[int]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal hints grid: %w", err)
	}
	for letter, row := range raw {
		for length, count := range row {
			grid.Set(letter, length, count)
		}
	}
	return grid, nil
}

// EncodeTwoLetters marshals the list as [{"combo": "DE", "count": 3}].
func EncodeTwoLetters(l domain.TwoLetterList) ([]byte, error) {
	out := make([]twoLetterJSON, 0, len(l))
	for _, e := range l {
		out = append(out, twoLetterJSON{Combo: e.Combo, Count: e.Count})
	}
	return json.Marshal(out)
}

// DecodeTwoLetters is the inverse of EncodeTwoLetters.
func DecodeTwoLetters(data []byte) (domain.TwoLetterList, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var raw []twoLetterJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal two-letter list: %w", err)
	}
	var list domain.TwoLetterList
	for _, e := range raw {
		list.Add(e.Combo, e.Count)
	}
	return list, nil
}
