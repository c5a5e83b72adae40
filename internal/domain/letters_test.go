package domain

import "testing"

func TestNewLetterSet(t *testing.T) {
	t.Parallel()

	s := NewLetterSet("d e, l-m n p u")
	if s.Len() != 7 {
		t.Fatalf("Len() = %d, want 7", s.Len())
	}
	if got := s.String(); got != "DELMNPU" {
		t.Errorf("String() = %q, want DELMNPU", got)
	}
	for _, r := range "DELMNPUdelmnpu" {
		if !s.Has(r) {
			t.Errorf("Has(%q) = false", r)
		}
	}
	if s.Has('A') || s.Has('1') {
		t.Error("unexpected member")
	}
}

func TestLetterSet_Empty(t *testing.T) {
	t.Parallel()

	var s LetterSet
	if !s.IsEmpty() {
		t.Fatal("zero value should be empty")
	}
	if s.String() != "" {
		t.Errorf("String() = %q, want empty", s.String())
	}
	if len(s.Letters()) != 0 {
		t.Errorf("Letters() = %v, want none", s.Letters())
	}
}

func TestWordLetters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word   string
		want   string
		wantOK bool
	}{
		{word: "PUDDLE", want: "DELPU", wantOK: true},
		{word: "puddle", want: "DELPU", wantOK: true},
		{word: "", want: "", wantOK: true},
		{word: "CAN'T", want: "ACN", wantOK: false},
		{word: "AB1", want: "AB", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			got, ok := WordLetters(tt.word)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got.String() != tt.want {
				t.Errorf("letters = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestLetterSet_Covers(t *testing.T) {
	t.Parallel()

	all := NewLetterSet("DELMNPU")
	if !all.Covers(NewLetterSet("PUDDLE")) {
		t.Error("DELMNPU should cover PUDDLE")
	}
	if all.Covers(NewLetterSet("APPLE")) {
		t.Error("DELMNPU should not cover APPLE")
	}
	if !NewLetterSet("UNDERPLUM").Covers(all) {
		t.Error("UNDERPLUM letters should cover DELMNPU")
	}
}
