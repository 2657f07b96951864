package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phil-mansfield/blocksort/parse"
	"github.com/phil-mansfield/blocksort/stress"
)

// GenConfig is the gen mode: it emits one of the named stress
// distributions to stdout as whitespace-separated integers, for reuse
// by external tooling. check and bench build their own inputs and do
// not read gen's output from stdin.
type GenConfig struct {
	distribution string
	length       int64
	seed         int64
}

var _ Mode = &GenConfig{}

func (config *GenConfig) ReadConfig(fname string) error {
	vars := parse.NewConfigVars("gen")
	vars.String(&config.distribution, "Distribution", "random")
	vars.Int(&config.length, "Length", 1000)
	vars.Int(&config.seed, "Seed", 1)

	if fname == "" {
		return nil
	}
	return parse.ReadConfig(fname, vars)
}

func (config *GenConfig) ExampleConfig() string {
	return `[gen]
# Distribution is one of: random, random-few, mostly-ascending,
# mostly-descending, ascending, descending, equal, jittered,
# mostly-equal, append.
Distribution = random

# Length is the number of integers to emit.
Length = 1000

# Seed seeds the distribution's generator.
Seed = 1`
}

// Run parses --Distribution/--Length/--Seed overrides from flags (the
// gen mode ignores stdin and gConfig's defaults beyond its own Seed,
// since it produces rather than consumes a fixture), and prints the
// distribution's sequence as one whitespace-separated line.
func (config *GenConfig) Run(
	flags []string, gConfig *GlobalConfig, stdin []string,
) ([]string, error) {
	vars := parse.NewConfigVars("gen")
	vars.String(&config.distribution, "Distribution", config.distribution)
	vars.Int(&config.length, "Length", config.length)
	vars.Int(&config.seed, "Seed", config.seed)
	if err := parse.ReadFlags(flags, vars); err != nil {
		return nil, err
	}

	d, err := stress.Parse(config.distribution)
	if err != nil {
		return nil, err
	}
	if config.length < 0 {
		return nil, fmt.Errorf("'Length' must be non-negative, got %d",
			config.length)
	}

	xs := stress.Generate(d, int(config.length), uint64(config.seed))
	toks := make([]string, len(xs))
	for i, x := range xs {
		toks[i] = strconv.Itoa(x)
	}
	return []string{strings.Join(toks, " ")}, nil
}
