package util_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github/chapool/go-hdgen/internal/util"
)

func TestLogFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Str("chain", "solana").Logger()
	ctx := logger.WithContext(context.Background())

	util.LogFromContext(ctx).Info().Msg("derived")
	assert.Contains(t, buf.String(), `"chain":"solana"`)
	assert.Contains(t, buf.String(), `"message":"derived"`)
}

func TestLogFromContextFallback(t *testing.T) {
	l := util.LogFromContext(context.Background())
	assert.NotNil(t, l)
	assert.NotEqual(t, zerolog.Disabled, l.GetLevel())
}
