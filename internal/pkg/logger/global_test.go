package logger

import (
	"sync"
	"testing"

	"github.com/liquex/liquex/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGlobalLogger_FallbackIsSafe(t *testing.T) {
	SetGlobalLogger(nil)

	// Concurrent first access must settle on a single fallback instance
	loggers := make([]*ZapLogger, 8)
	var wg sync.WaitGroup
	for i := range loggers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			loggers[i] = GetGlobalLogger()
		}(i)
	}
	wg.Wait()

	require.NotNil(t, loggers[0])
	for _, logger := range loggers[1:] {
		assert.Same(t, loggers[0], logger)
	}
}

func TestSetGlobalLogger(t *testing.T) {
	configured, err := NewZapLogger(models.LoggerConfig{Level: "debug", Development: true})
	require.NoError(t, err)

	SetGlobalLogger(configured)
	assert.Same(t, configured, GetGlobalLogger())
}
