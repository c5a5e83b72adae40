package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/beetracker-backend/internal/adapter/provider/ocr"
	"github.com/heartmarshall/beetracker-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/beetracker-backend/internal/app"
	"github.com/heartmarshall/beetracker-backend/internal/config"
	"github.com/heartmarshall/beetracker-backend/internal/service/game"
	"github.com/heartmarshall/beetracker-backend/pkg/ctxutil"
)

// localUserID owns the single session kept in the local database.
var localUserID = uuid.NewSHA1(uuid.NameSpaceURL, []byte("beehints-local"))

const closeTimeout = 5 * time.Second

// maxInputBytes bounds hints pages and pasted word lists read from files.
const maxInputBytes = 1 << 20

type commandContext struct {
	dbFlag *string
}

func newCommandContext(dbFlag *string) *commandContext {
	return &commandContext{dbFlag: dbFlag}
}

// withService opens the local store, runs fn as the local user and flushes
// pending writes before closing the store.
func (c *commandContext) withService(cmd *cobra.Command, fn func(ctx context.Context, svc *game.Service) error) (err error) {
	cfg, err := config.LoadCLI()
	if err != nil {
		return err
	}
	if c.dbFlag != nil && strings.TrimSpace(*c.dbFlag) != "" {
		cfg.DBPath = strings.TrimSpace(*c.dbFlag)
	}

	logger := app.NewLogger(cfg.Log())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := sqlite.Open(ctx, cfg.DBPath, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close store: %w", cerr))
		}
	}()

	// Screenshots are an API feature; the CLI never calls the OCR engine.
	svc := game.NewService(logger, store, store, ocr.NewClient("", "", 0, logger), cliGameConfig())
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
		defer cancel()
		if cerr := svc.Close(closeCtx); cerr != nil {
			logger.Warn("flush pending writes", slog.String("error", cerr.Error()))
			err = errors.Join(err, fmt.Errorf("save progress: %w", cerr))
		}
	}()

	return fn(ctxutil.WithUserID(ctx, localUserID), svc)
}

func cliGameConfig() config.GameConfig {
	return config.GameConfig{
		MaxTextBytes:     maxInputBytes,
		TrackerCacheSize: 1,
		TrackerCacheTTL:  time.Hour,
		MirrorQueueSize:  64,
	}
}

// readInput returns the contents of args[0], or stdin when it is "-" or
// absent.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	var r io.Reader
	if len(args) == 0 || args[0] == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return "", fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, maxInputBytes+1))
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if len(data) > maxInputBytes {
		return "", fmt.Errorf("input larger than %d bytes", maxInputBytes)
	}
	return string(data), nil
}
