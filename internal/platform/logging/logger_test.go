package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"loginflow/internal/platform/logging"
)

func TestNew_Levels(t *testing.T) {
	l, err := logging.New("debug", "json")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = logging.New("", "")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))

	_, err = logging.New("loud", "")
	assert.Error(t, err)
}

func TestContextRoundTrip(t *testing.T) {
	assert.NotNil(t, logging.FromContext(context.Background()))

	l := zap.NewExample()
	ctx := logging.WithLogger(context.Background(), l)
	assert.Same(t, l, logging.FromContext(ctx))
}
