package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/phil-mansfield/blocksort/bench"
	"github.com/phil-mansfield/blocksort/logging"
	"github.com/phil-mansfield/blocksort/parse"
	"github.com/phil-mansfield/blocksort/stats"
	"github.com/phil-mansfield/blocksort/stress"
)

// BenchConfig is the bench mode: it times Sort/SortWithBuffer against
// the stress distributions across a sweep of lengths and cache sizes,
// reporting wall-clock percentiles and, if requested, a plot.
type BenchConfig struct {
	lengths        []int64
	cacheFractions []float64
	seed           int64
	repeats        int64
	plot           bool
}

var _ Mode = &BenchConfig{}

func (config *BenchConfig) ReadConfig(fname string) error {
	vars := parse.NewConfigVars("bench")
	vars.Ints(&config.lengths, "Lengths", nil)
	vars.Floats(&config.cacheFractions, "CacheFractions", nil)
	vars.Int(&config.seed, "Seed", -1)
	vars.Int(&config.repeats, "Repeats", 10)
	vars.Bool(&config.plot, "Plot", false)

	if fname == "" {
		return nil
	}
	return parse.ReadConfig(fname, vars)
}

func (config *BenchConfig) ExampleConfig() string {
	return `[bench]
# Lengths overrides the global config's length sweep.
Lengths = 0, 1, 2, 4, 8, 16, 32, 100, 1000, 10000, 100000

# CacheFractions overrides the global config's cache-size ladder.
CacheFractions = 0, 0.1, 0.25, 0.5, 1.0

# Seed overrides the global config's seed. -1 means inherit it.
Seed = -1

# Repeats is the number of timed runs behind each reported line,
# which gives their median and p90.
Repeats = 10

# Plot, if true, renders median runtime against length for each
# distribution.
Plot = false`
}

func (config *BenchConfig) Run(
	flags []string, gConfig *GlobalConfig, stdin []string,
) ([]string, error) {
	lengths := config.lengths
	if len(lengths) == 0 {
		lengths = gConfig.lengths
	}
	cacheFractions := config.cacheFractions
	if len(cacheFractions) == 0 {
		cacheFractions = gConfig.cacheFractions
	}
	seed := config.seed
	if seed < 0 {
		seed = gConfig.seed
	}
	repeats := int(config.repeats)
	if repeats <= 0 {
		repeats = 1
	}

	l := logging.Logger("bench")
	var out []string
	var samples []bench.Sample

	for _, n64 := range lengths {
		n := int(n64)
		for _, d := range stress.All {
			for _, frac := range cacheFractions {
				s := bench.Time(n, d, frac, uint64(seed), repeats)
				samples = append(samples, s)

				nsSamples := append([]int64(nil), s.Nanoseconds...)
				p90 := stats.Percentile(nsSamples, 0.1)

				out = append(out, fmt.Sprintf(
					"n=%s dist=%-17s cache=%.2f median=%s ref-median=%s p90=%s",
					humanize.Comma(int64(n)), d, frac,
					formatNs(s.Median()), formatNs(s.RefMedian()), formatNs(p90),
				))
				logging.Perff(l, "n=%d dist=%s cache=%.2f median=%dns", n, d, frac, s.Median())
			}
		}
	}

	if config.plot {
		bench.Plot(samples)
	}

	logging.Debugf(l, "Memory:\n%s", logging.MemString())

	return out, nil
}

func formatNs(ns int64) string {
	return humanize.Comma(ns) + "ns"
}
