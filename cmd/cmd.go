/*Package cmd contains the code for running blocksort's command line
modes: bench, check, and gen.
*/
package cmd

import (
	"fmt"

	"github.com/phil-mansfield/blocksort/parse"
	"github.com/phil-mansfield/blocksort/version"
)

// ModeNames maps each mode name recognized by the root binary to its
// Mode implementation.
var ModeNames map[string]Mode = map[string]Mode{
	"bench": &BenchConfig{},
	"check": &CheckConfig{},
	"gen":   &GenConfig{},
}

// Mode represents the interface used by the main binary when
// interacting with a given command line mode.
type Mode interface {
	// ReadConfig reads a mode-specific config file and stores its
	// contents within the Mode. An empty fname means no mode-specific
	// config file was given; the Mode should fall back to defaults.
	ReadConfig(fname string) error
	// ExampleConfig returns the text of an example config file of this
	// mode.
	ExampleConfig() string
	// Run executes the mode. It takes a list of tokenized command line
	// flags, an initialized GlobalConfig struct, and a slice of lines
	// representing the contents of stdin. It returns a slice of lines
	// that should be written to stdout.
	Run(flags []string, gConfig *GlobalConfig, stdin []string) ([]string, error)
}

// GlobalConfig is a config file read by every mode. It carries the
// defaults shared across bench/check/gen: the length sweep to exercise
// when a mode doesn't override it, the default seed, and the ladder of
// cache-size fractions bench sweeps over.
type GlobalConfig struct {
	version string

	lengths        []int64
	seed           int64
	cacheFractions []float64
}

var _ Mode = &GlobalConfig{}

// ReadConfig reads a config file and returns an error, if applicable.
// An empty fname leaves every field at its default.
func (config *GlobalConfig) ReadConfig(fname string) error {
	vars := parse.NewConfigVars("config")
	vars.String(&config.version, "Version", version.SourceVersion)
	vars.Ints(&config.lengths, "Lengths",
		[]int64{0, 1, 2, 4, 8, 16, 32, 100, 1000, 10000, 100000})
	vars.Int(&config.seed, "Seed", 1)
	vars.Floats(&config.cacheFractions, "CacheFractions",
		[]float64{0, 0.1, 0.25, 0.5, 1.0})

	if fname == "" {
		return config.validate()
	}

	if err := parse.ReadConfig(fname, vars); err != nil {
		return err
	}
	return config.validate()
}

// validate checks that every user-set field of GlobalConfig is sane.
func (config *GlobalConfig) validate() error {
	major, minor, patch, err := version.Parse(config.version)
	if err != nil {
		return fmt.Errorf("I couldn't parse the 'Version' variable: %s",
			err.Error())
	}
	smajor, sminor, spatch, _ := version.Parse(version.SourceVersion)
	if major != smajor || minor != sminor || patch != spatch {
		return fmt.Errorf("The 'Version' variable is set to %s, but the "+
			"version of the source is %s",
			config.version, version.SourceVersion)
	}

	for _, n := range config.lengths {
		if n < 0 {
			return fmt.Errorf("The 'Lengths' variable contains the "+
				"negative value %d.", n)
		}
	}

	if config.seed < 0 {
		return fmt.Errorf("The 'Seed' variable is set to the negative "+
			"value %d.", config.seed)
	}

	for _, f := range config.cacheFractions {
		if f < 0 || f > 1 {
			return fmt.Errorf("The 'CacheFractions' variable contains %f, "+
				"which is outside the valid range [0, 1].", f)
		}
	}

	return nil
}

// ExampleConfig returns an example configuration file.
func (config *GlobalConfig) ExampleConfig() string {
	return fmt.Sprintf(`[config]
# Target version of blocksort. This option merely allows blocksort to
# notice when its source and configuration files are not from the same
# version.
#
# This variable defaults to the source version if not included.
Version = %s

# Lengths is the sweep of slice lengths that bench and check exercise
# when a mode-specific config doesn't override it.
Lengths = 0, 1, 2, 4, 8, 16, 32, 100, 1000, 10000, 100000

# Seed is the default seed handed to every stress distribution.
Seed = 1

# CacheFractions is the ladder of scratch-cache sizes bench sweeps
# over, each expressed as a fraction of (len(xs)+1)/2 - the largest
# cache size that speeds up every merge.
CacheFractions = 0, 0.1, 0.25, 0.5, 1.0`, version.SourceVersion)
}

// Run is a dummy method which allows GlobalConfig to conform to the
// Mode interface for testing purposes.
func (config *GlobalConfig) Run(
	flags []string, gConfig *GlobalConfig, stdin []string,
) ([]string, error) {
	panic("GlobalConfig.Run() should never be executed.")
}
