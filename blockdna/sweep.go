package blockdna

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
)

// Sweep enumerates the Cartesian product of the three length ranges, keeps
// the combinations where total divides evenly into (ds+ss) units, generates
// each system, and — when OutputPrefix is set — writes it to a numbered
// oxDNA folder (<prefix>/1, <prefix>/2, …).
//
// Returns the number of systems generated. Range or generation errors abort
// the sweep immediately.
//
// Complexity: O(|Total|·|Double|·|Single|) combinations, O(total) per hit.
func Sweep(opts SweepOptions) (int, error) {
	totals, err := opts.Total.Values()
	if err != nil {
		return 0, fmt.Errorf("blockdna: total range: %w", err)
	}
	doubles, err := opts.Double.Values()
	if err != nil {
		return 0, fmt.Errorf("blockdna: double-stranded range: %w", err)
	}
	singles, err := opts.Single.Values()
	if err != nil {
		return 0, fmt.Errorf("blockdna: single-stranded range: %w", err)
	}

	cfg := defaultConfig()
	for _, opt := range opts.Options {
		opt(&cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	count := 0
	for _, total := range totals {
		for _, ds := range doubles {
			for _, ss := range singles {
				if ds <= 0 || ss <= 0 || total <= 0 || total%(ds+ss) != 0 {
					continue
				}
				sys, err := GenerateSystem(total, ds, ss, opts.Options...)
				if err != nil {
					return count, err
				}
				count++
				if opts.OutputPrefix != "" {
					dir := filepath.Join(opts.OutputPrefix, strconv.Itoa(count))
					if err = sys.WriteOxDNA(dir); err != nil {
						return count, err
					}
					logger.Info("wrote block system",
						"folder", dir, "total", total, "ds", ds, "ss", ss,
						"nucleotides", sys.NucleotideCount())
					continue
				}
				logger.Info("generated block system",
					"total", total, "ds", ds, "ss", ss,
					"nucleotides", sys.NucleotideCount())
			}
		}
	}

	return count, nil
}
