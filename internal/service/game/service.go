package game

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/beetracker-backend/internal/config"
	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type gameRepo interface {
	GetSessionByUser(ctx context.Context, userID uuid.UUID) (*domain.GameSession, error)
	CreateSession(ctx context.Context, session *domain.GameSession) (*domain.GameSession, error)
	DeleteSessionByUser(ctx context.Context, userID uuid.UUID) error
	ListWordsByUser(ctx context.Context, userID uuid.UUID) ([]domain.SessionWord, error)
	UpsertWords(ctx context.Context, words []domain.SessionWord) error
	DeleteWord(ctx context.Context, sessionID uuid.UUID, word string) error
	ClearWords(ctx context.Context, sessionID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type textExtractor interface {
	ExtractText(ctx context.Context, image io.Reader, filename string) (string, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// ErrNoSession is returned by operations that need loaded hints.
var ErrNoSession = fmt.Errorf("no hints loaded: %w", domain.ErrNotFound)

// Service implements hints loading and word tracking for one session per user.
type Service struct {
	log      *slog.Logger
	repo     gameRepo
	tx       txManager
	ocr      textExtractor
	cfg      config.GameConfig
	trackers *expirable.LRU[uuid.UUID, *tracker]
	loads    singleflight.Group
	ocrGate  *gate
	mirror   *mirror
}

// NewService creates a new game service and starts its persistence worker.
// Callers must Close the service to flush pending writes.
func NewService(
	logger *slog.Logger,
	repo gameRepo,
	tx txManager,
	ocr textExtractor,
	cfg config.GameConfig,
) *Service {
	log := logger.With("service", "game")

	size := cfg.TrackerCacheSize
	if size <= 0 {
		size = 1024
	}
	ttl := cfg.TrackerCacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	return &Service{
		log:      log,
		repo:     repo,
		tx:       tx,
		ocr:      ocr,
		cfg:      cfg,
		trackers: expirable.NewLRU[uuid.UUID, *tracker](size, nil, ttl),
		ocrGate:  newGate(),
		mirror:   newMirror(log, repo, cfg.MirrorQueueSize),
	}
}

// Close stops accepting writes and waits for queued writes to finish or for
// ctx to expire.
func (s *Service) Close(ctx context.Context) error {
	return s.mirror.close(ctx)
}
