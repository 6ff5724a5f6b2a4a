// Package pipeline orchestrates a full upload run: pair discovery, the
// per-pair upload state machine (size checks, cover preparation, the two
// API calls), rate-limit pacing, outcome accounting, and the
// skipped-too-large report.
//
// Processing is strictly sequential. One pair completes or fails before the
// next begins, and the only suspension points are the bounded network call
// and the configured inter-pair delay. The Bot API rate limits are per-bot,
// so uploads must not be parallelized.
package pipeline
