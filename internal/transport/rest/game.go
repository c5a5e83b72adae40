package rest

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/heartmarshall/beetracker-backend/internal/hints"
	"github.com/heartmarshall/beetracker-backend/internal/service/game"
)

// imageField is the multipart field that carries screenshots.
const imageField = "image"

// multipartOverhead is allowed on top of the image limit for headers and
// boundaries.
const multipartOverhead = 64 << 10

// gameService defines the minimal interface needed by GameHandler.
type gameService interface {
	Parse(ctx context.Context, input game.ParseInput) (*hints.Result, error)
	LoadHints(ctx context.Context, input game.LoadHintsInput) (*game.LoadResult, error)
	LoadHintsFromImage(ctx context.Context, input game.ImageInput) (*game.LoadResult, error)
	Progress(ctx context.Context) (*game.ProgressView, error)
	DeleteSession(ctx context.Context) error
	SubmitWords(ctx context.Context, input game.SubmitWordsInput) (*game.SubmitResult, error)
	SubmitScreenshot(ctx context.Context, input game.ImageInput) (*game.SubmitResult, error)
	RemoveWord(ctx context.Context, word string) (*game.ProgressView, error)
	ResetWords(ctx context.Context) (*game.ProgressView, error)
}

// GameHandler serves hints and word-tracking endpoints.
type GameHandler struct {
	svc           gameService
	log           *slog.Logger
	maxImageBytes int64
	ocrEnabled    bool
}

// NewGameHandler creates a GameHandler. With ocrEnabled false the image
// endpoints answer 501.
func NewGameHandler(svc gameService, logger *slog.Logger, maxImageBytes int64, ocrEnabled bool) *GameHandler {
	return &GameHandler{
		svc:           svc,
		log:           logger.With("handler", "game"),
		maxImageBytes: maxImageBytes,
		ocrEnabled:    ocrEnabled,
	}
}

// Parse handles POST /api/hints/parse.
func (h *GameHandler) Parse(w http.ResponseWriter, r *http.Request) {
	text, ok := readText(w, r)
	if !ok {
		return
	}
	res, err := h.svc.Parse(r.Context(), game.ParseInput{Text: text})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toParseResponse(res))
}

// LoadHints handles PUT /api/session/hints.
func (h *GameHandler) LoadHints(w http.ResponseWriter, r *http.Request) {
	text, ok := readText(w, r)
	if !ok {
		return
	}
	res, err := h.svc.LoadHints(r.Context(), game.LoadHintsInput{Text: text})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLoadResponse(res))
}

// LoadHintsFromImage handles PUT /api/session/hints/image.
func (h *GameHandler) LoadHintsFromImage(w http.ResponseWriter, r *http.Request) {
	input, cleanup, ok := h.readImage(w, r)
	if !ok {
		return
	}
	defer cleanup()

	res, err := h.svc.LoadHintsFromImage(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLoadResponse(res))
}

// Progress handles GET /api/session.
func (h *GameHandler) Progress(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Progress(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressResponse(view))
}

// DeleteSession handles DELETE /api/session.
func (h *GameHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteSession(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SubmitWords handles POST /api/session/words.
func (h *GameHandler) SubmitWords(w http.ResponseWriter, r *http.Request) {
	var req submitWordsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.SubmitWords(r.Context(), game.SubmitWordsInput{Words: req.Words, Text: req.Text})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmitResponse(res))
}

// SubmitScreenshot handles POST /api/session/words/image.
func (h *GameHandler) SubmitScreenshot(w http.ResponseWriter, r *http.Request) {
	input, cleanup, ok := h.readImage(w, r)
	if !ok {
		return
	}
	defer cleanup()

	res, err := h.svc.SubmitScreenshot(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmitResponse(res))
}

// RemoveWord handles DELETE /api/session/words/{word}.
func (h *GameHandler) RemoveWord(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.RemoveWord(r.Context(), r.PathValue("word"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressResponse(view))
}

// ResetWords handles POST /api/session/reset.
func (h *GameHandler) ResetWords(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.ResetWords(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressResponse(view))
}

// readImage extracts the uploaded screenshot. The returned cleanup closes the
// file and removes any temporary files of the multipart form.
func (h *GameHandler) readImage(w http.ResponseWriter, r *http.Request) (game.ImageInput, func(), bool) {
	if !h.ocrEnabled {
		writeError(w, http.StatusNotImplemented, "screenshot recognition is not configured", actionPasteText)
		return game.ImageInput{}, nil, false
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxImageBytes+multipartOverhead)
	file, header, err := r.FormFile(imageField)
	if err != nil {
		var tooBig *http.MaxBytesError
		switch {
		case errors.As(err, &tooBig):
			writeError(w, http.StatusRequestEntityTooLarge, "image too large", "crop the screenshot or paste the text instead")
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			writeError(w, http.StatusBadRequest, "multipart field \"image\" is required", actionCheckInput)
		default:
			writeError(w, http.StatusBadRequest, "invalid upload", actionCheckInput)
		}
		return game.ImageInput{}, nil, false
	}

	cleanup := func() {
		file.Close() //nolint:errcheck
		if r.MultipartForm != nil {
			r.MultipartForm.RemoveAll() //nolint:errcheck
		}
	}
	return imageInput(file, header), cleanup, true
}

func imageInput(file multipart.File, header *multipart.FileHeader) game.ImageInput {
	return game.ImageInput{Image: file, Filename: header.Filename, Size: header.Size}
}
