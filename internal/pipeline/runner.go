package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/backmassage/bookpost/internal/config"
	"github.com/backmassage/bookpost/internal/imageprep"
	"github.com/backmassage/bookpost/internal/logging"
	"github.com/backmassage/bookpost/internal/pairing"
	"github.com/backmassage/bookpost/internal/telegram"
)

// Run is the top-level batch entry point. It builds the pair list, uploads
// each pair sequentially with the configured delay between them, writes the
// skipped-too-large report when needed, and returns aggregate stats. The
// returned error is non-nil only for setup failures before the loop starts;
// per-pair failures are counted, not propagated.
func Run(cfg *config.Config, client *telegram.Client, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	pairs, missing, err := pairing.Build(cfg.InputDir)
	if err != nil {
		return stats, fmt.Errorf("scanning %s: %w", cfg.InputDir, err)
	}
	stats.Total = len(pairs)
	stats.Missing = len(missing)

	if len(pairs) == 0 {
		log.Warn("No valid pairs found in: %s", cfg.InputDir)
		return stats, nil
	}

	log.Info("Found pairs: %d", stats.Total)
	if stats.Missing > 0 {
		log.Warn("Skipped (missing image or book): %d", stats.Missing)
		for _, stem := range missing {
			log.Debug("  missing pair: %s", stem)
		}
	}

	var skipLines []string
	for i, pair := range pairs {
		stats.Current = i + 1
		log.Info("[%d/%d] %s", stats.Current, stats.Total, pair.Stem)

		outcome := uploadPair(cfg, client, log, pair)
		switch outcome.Status {
		case StatusUploaded:
			stats.Uploaded++
		case StatusTooLarge:
			stats.TooLarge++
			skipLines = append(skipLines, pair.Stem+" | "+outcome.Reason)
			log.Warn("  skipped (too large): %s", outcome.Reason)
		case StatusFailed:
			stats.Failed++
			log.Error("  failed: %s", outcome.Reason)
		}

		time.Sleep(cfg.PostDelay)
	}

	if len(skipLines) > 0 {
		if err := WriteSkipReport(cfg.ReportPath, skipLines); err != nil {
			log.Error("Could not write skip report: %v", err)
		} else {
			log.Info("Saved skipped list: %s", cfg.ReportPath)
		}
	}

	log.Info("Done.")
	log.Success("Uploaded: %d", stats.Uploaded)
	log.Info("Skipped (too large): %d", stats.TooLarge)
	log.Info("Failed (other errors): %d", stats.Failed)
	return stats, nil
}

// uploadPair runs the per-pair state machine: document size check, cover
// preparation, cover size check, then the two API calls. Any temporary
// converted cover is removed when the pair's processing ends, on every
// exit path.
func uploadPair(cfg *config.Config, client *telegram.Client, log *logging.Logger, pair pairing.Pair) Outcome {
	maxBytes := cfg.MaxFileSizeBytes()

	// The document is checked first: if the book can never be posted there
	// is no point preparing or sending the cover.
	if pair.Document.Size > maxBytes {
		return Outcome{Status: StatusTooLarge, Reason: fmt.Sprintf(
			"book is too large: %s (%s)",
			filepath.Base(pair.Document.Path), humanize.IBytes(uint64(pair.Document.Size)))}
	}

	prep, err := imageprep.Prepare(pair.Image.Path, pair.Stem)
	if err != nil {
		return Outcome{Status: StatusFailed, Reason: fmt.Sprintf("preparing cover: %v", err)}
	}
	defer prep.Cleanup()

	info, err := os.Stat(prep.Path)
	if err != nil {
		return Outcome{Status: StatusFailed, Reason: fmt.Sprintf("checking cover: %v", err)}
	}
	if info.Size() > maxBytes {
		return Outcome{Status: StatusTooLarge, Reason: fmt.Sprintf(
			"cover is too large: %s (%s)",
			filepath.Base(prep.Path), humanize.IBytes(uint64(info.Size())))}
	}

	if cfg.DryRun {
		log.Success("  [DRY] would post %s + %s",
			filepath.Base(prep.Path), filepath.Base(pair.Document.Path))
		return Outcome{Status: StatusUploaded}
	}

	if err := client.SendPhoto(cfg.ChannelID, pair.Stem, prep.Path); err != nil {
		return classify(err)
	}
	// A document failure past this point leaves the cover posted. Accepted
	// partial outcome; there is no rollback.
	if err := client.SendDocument(cfg.ChannelID, pair.Document.Path); err != nil {
		return classify(err)
	}
	return Outcome{Status: StatusUploaded}
}

// classify maps an API client error onto the outcome taxonomy: remote
// oversized-payload rejections join the locally detected ones as TooLarge,
// everything else is Failed.
func classify(err error) Outcome {
	if telegram.IsTooLarge(err) {
		return Outcome{Status: StatusTooLarge, Reason: err.Error()}
	}
	return Outcome{Status: StatusFailed, Reason: err.Error()}
}
