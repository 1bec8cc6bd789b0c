package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskmatrix/pkg/cli/config"
	"github.com/secmon-lab/riskmatrix/pkg/utils/logging"
	"github.com/secmon-lab/riskmatrix/pkg/utils/safe"
)

func TestLogger_Configure(t *testing.T) {
	original := logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	t.Run("invalid level", func(t *testing.T) {
		_, err := config.NewLoggerForTest("verbose", "console", "stdout").Configure()
		gt.Error(t, err).Is(config.ErrInvalidConfig)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := config.NewLoggerForTest("info", "xml", "stdout").Configure()
		gt.Error(t, err).Is(config.ErrInvalidConfig)
	})

	t.Run("stdout has nothing to close", func(t *testing.T) {
		closer, err := config.NewLoggerForTest("debug", "json", "stdout").Configure()
		gt.NoError(t, err).Required()
		gt.Value(t, closer).Nil()
	})

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "riskmatrix.log")
		closer, err := config.NewLoggerForTest("info", "json", path).Configure()
		gt.NoError(t, err).Required()
		gt.Value(t, closer).NotNil()

		logging.Default().Info("hello from test")
		safe.Close(context.Background(), closer)

		data, err := os.ReadFile(path)
		gt.NoError(t, err).Required()
		gt.String(t, string(data)).Contains("hello from test")
	})
}

func TestSentry_Configure(t *testing.T) {
	var s config.Sentry
	gt.Bool(t, s.IsEnabled()).False()

	flush, err := s.Configure()
	gt.NoError(t, err).Required()
	flush()
}
