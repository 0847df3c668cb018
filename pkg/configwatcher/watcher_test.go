package configwatcher

import (
	"os"
	"path/filepath"
	"pathfinder_backend/internal/config"
	"pathfinder_backend/pkg/logger"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const watcherTestConfig = `server:
  port: "8080"
  mode: debug
jwt:
  secret: test-secret
  expire_hours: 24
scoring:
  recommendation_policy: strict
`

// A write to the watched file must reach the reloader, and repeated writes
// must keep reaching it: the debounce timer has to survive its first fire.
func TestWatchConfigReloadsOnWrite(t *testing.T) {
	logger.Log = zap.NewNop()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(watcherTestConfig), 0644))

	reloaded := make(chan *config.Config, 4)
	go WatchConfig(path, nil, func(cfg interface{}) {
		if c, ok := cfg.(*config.Config); ok {
			reloaded <- c
		}
	})

	// Give the watcher time to register before the first write.
	time.Sleep(200 * time.Millisecond)

	for i := 0; i < 2; i++ {
		require.NoError(t, os.WriteFile(path, []byte(watcherTestConfig), 0644))

		select {
		case cfg := <-reloaded:
			require.Equal(t, "strict", cfg.Scoring.RecommendationPolicy)
		case <-time.After(5 * time.Second):
			t.Fatalf("reloader not invoked after config write %d", i+1)
		}
	}
}
