package rest

import (
	"context"

	"github.com/heartmarshall/beetracker-backend/internal/hints"
	"github.com/heartmarshall/beetracker-backend/internal/service/game"
)

var _ gameService = &gameServiceMock{}

// gameServiceMock fails every call that a test did not set up.
type gameServiceMock struct {
	ParseFunc              func(ctx context.Context, input game.ParseInput) (*hints.Result, error)
	LoadHintsFunc          func(ctx context.Context, input game.LoadHintsInput) (*game.LoadResult, error)
	LoadHintsFromImageFunc func(ctx context.Context, input game.ImageInput) (*game.LoadResult, error)
	ProgressFunc           func(ctx context.Context) (*game.ProgressView, error)
	DeleteSessionFunc      func(ctx context.Context) error
	SubmitWordsFunc        func(ctx context.Context, input game.SubmitWordsInput) (*game.SubmitResult, error)
	SubmitScreenshotFunc   func(ctx context.Context, input game.ImageInput) (*game.SubmitResult, error)
	RemoveWordFunc         func(ctx context.Context, word string) (*game.ProgressView, error)
	ResetWordsFunc         func(ctx context.Context) (*game.ProgressView, error)
}

func (m *gameServiceMock) Parse(ctx context.Context, input game.ParseInput) (*hints.Result, error) {
	if m.ParseFunc == nil {
		panic("gameServiceMock.ParseFunc is nil")
	}
	return m.ParseFunc(ctx, input)
}

func (m *gameServiceMock) LoadHints(ctx context.Context, input game.LoadHintsInput) (*game.LoadResult, error) {
	if m.LoadHintsFunc == nil {
		panic("gameServiceMock.LoadHintsFunc is nil")
	}
	return m.LoadHintsFunc(ctx, input)
}

func (m *gameServiceMock) LoadHintsFromImage(ctx context.Context, input game.ImageInput) (*game.LoadResult, error) {
	if m.LoadHintsFromImageFunc == nil {
		panic("gameServiceMock.LoadHintsFromImageFunc is nil")
	}
	return m.LoadHintsFromImageFunc(ctx, input)
}

func (m *gameServiceMock) Progress(ctx context.Context) (*game.ProgressView, error) {
	if m.ProgressFunc == nil {
		panic("gameServiceMock.ProgressFunc is nil")
	}
	return m.ProgressFunc(ctx)
}

func (m *gameServiceMock) DeleteSession(ctx context.Context) error {
	if m.DeleteSessionFunc == nil {
		panic("gameServiceMock.DeleteSessionFunc is nil")
	}
	return m.DeleteSessionFunc(ctx)
}

func (m *gameServiceMock) SubmitWords(ctx context.Context, input game.SubmitWordsInput) (*game.SubmitResult, error) {
	if m.SubmitWordsFunc == nil {
		panic("gameServiceMock.SubmitWordsFunc is nil")
	}
	return m.SubmitWordsFunc(ctx, input)
}

func (m *gameServiceMock) SubmitScreenshot(ctx context.Context, input game.ImageInput) (*game.SubmitResult, error) {
	if m.SubmitScreenshotFunc == nil {
		panic("gameServiceMock.SubmitScreenshotFunc is nil")
	}
	return m.SubmitScreenshotFunc(ctx, input)
}

func (m *gameServiceMock) RemoveWord(ctx context.Context, word string) (*game.ProgressView, error) {
	if m.RemoveWordFunc == nil {
		panic("gameServiceMock.RemoveWordFunc is nil")
	}
	return m.RemoveWordFunc(ctx, word)
}

func (m *gameServiceMock) ResetWords(ctx context.Context) (*game.ProgressView, error) {
	if m.ResetWordsFunc == nil {
		panic("gameServiceMock.ResetWordsFunc is nil")
	}
	return m.ResetWordsFunc(ctx)
}
