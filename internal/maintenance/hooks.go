package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/albapepper/pokedex-data/internal/config"
	"github.com/albapepper/pokedex-data/internal/db"
)

// AnalyzeRecordCache refreshes planner statistics after a bulk warm so the
// expires_at index is used by the purge query.
// Call this after a successful warm run.
func AnalyzeRecordCache(ctx context.Context, exec db.Execer, logger *slog.Logger) error {
	start := time.Now()
	_, err := exec.Exec(ctx, "ANALYZE "+config.RecordCacheTable)
	dur := time.Since(start).Round(time.Millisecond)

	if err != nil {
		logger.Warn("Failed to analyze table",
			"table", config.RecordCacheTable, "duration", dur, "error", err)
		return fmt.Errorf("analyze %s: %w", config.RecordCacheTable, err)
	}
	logger.Info("Analyzed table", "table", config.RecordCacheTable, "duration", dur)
	return nil
}
