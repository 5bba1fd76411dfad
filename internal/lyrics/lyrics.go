// Package lyrics fetches or generates lyric text for catalog authoring.
// Nothing here is used while reading; the generate command is the only
// caller. A provider either returns non-empty text or an error, never a
// placeholder.
package lyrics

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/zhubert/songbook/internal/errors"
	"github.com/zhubert/songbook/internal/logger"
)

// DefaultTimeout bounds a single provider request.
const DefaultTimeout = 30 * time.Second

// Generator produces lyric text for a song.
type Generator interface {
	// Generate returns lyrics for displayTitle. alternateTitle is the
	// original-language title and may be empty.
	Generate(ctx context.Context, displayTitle, alternateTitle string) (string, error)
	// Name identifies the provider in logs and output.
	Name() string
}

// Result is the outcome of one generation request.
type Result struct {
	Text     string
	Provider string
}

// Chain tries each generator in order and returns the first non-empty
// result.
type Chain struct {
	generators []Generator
	log        *slog.Logger
}

// NewChain builds a chain over the given generators.
func NewChain(generators ...Generator) *Chain {
	return &Chain{generators: generators, log: logger.WithComponent("lyrics")}
}

// Len returns the number of providers in the chain.
func (c *Chain) Len() int {
	return len(c.generators)
}

// Generate runs the chain. It fails with KindGeneration when every provider
// fails or returns nothing, and with KindTimeout when ctx expires first.
func (c *Chain) Generate(ctx context.Context, displayTitle, alternateTitle string) (Result, error) {
	var lastErr error
	for _, g := range c.generators {
		if err := ctx.Err(); err != nil {
			return Result{}, errors.GenerationTimeout(displayTitle, err)
		}
		text, err := g.Generate(ctx, displayTitle, alternateTitle)
		text = strings.TrimSpace(text)
		if err == nil && text == "" {
			err = errors.GenerationEmpty(displayTitle)
		}
		if err != nil {
			c.log.Warn("provider failed", "provider", g.Name(), "title", displayTitle, "error", err)
			lastErr = err
			continue
		}
		c.log.Info("lyrics generated", "provider", g.Name(), "title", displayTitle, "bytes", len(text))
		return Result{Text: text, Provider: g.Name()}, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result{}, errors.GenerationTimeout(displayTitle, ctxErr)
	}
	if lastErr == nil {
		return Result{}, errors.E(errors.Op("lyrics.Generate"), errors.KindGeneration, "no lyrics providers configured")
	}
	if errors.Is(lastErr, errors.KindGeneration) {
		return Result{}, lastErr
	}
	return Result{}, errors.GenerationFailed(displayTitle, lastErr)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
