/*Command blocksort is the command-line front end for the sort package's
stable, in-place merge sort: it dispatches to bench/check/gen the same
way the teacher's own command-line front end dispatches to its
analysis modes.
*/
package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/phil-mansfield/blocksort/cmd"
	"github.com/phil-mansfield/blocksort/version"
)

var helpStrings = map[string]string{
	"bench": `bench times Sort and SortWithBuffer against a reference stable
merge sort across a sweep of lengths, stress distributions, and cache
sizes, reporting wall-clock percentiles.`,
	"check": `check runs the sort package's testable properties - multiset
preservation, sortedness, stability, idempotence, determinism, boundary
lengths, and a differential comparison against a reference sort - and
prints a colored PASS/FAIL line per property.`,
	"gen": `gen emits one of the named stress distributions to stdout as
whitespace-separated integers.`,

	"config":      new(cmd.GlobalConfig).ExampleConfig(),
	"bench.config": cmd.ModeNames["bench"].ExampleConfig(),
	"check.config": cmd.ModeNames["check"].ExampleConfig(),
	"gen.config":   cmd.ModeNames["gen"].ExampleConfig(),
}

var modeDescriptions = `My help modes are:
blocksort help
blocksort help [ bench | check | gen ]
blocksort help [ config | bench.config | check.config | gen.config ]

My modes are:
blocksort bench [flags] [____.config] [____.bench.config]
blocksort check [flags] [____.config] [____.check.config]
blocksort gen   [flags] [____.config] [____.gen.config]`

func main() {
	args := os.Args
	if len(args) <= 1 {
		fmt.Fprintf(
			os.Stderr, "I was not supplied with a mode.\nFor help, type "+
				"'./blocksort help'.\n",
		)
		os.Exit(1)
	}

	if args[1] == "help" {
		switch len(args) - 2 {
		case 0:
			fmt.Println(modeDescriptions)
		case 1:
			text, ok := helpStrings[args[2]]
			if !ok {
				fmt.Printf("I don't recognize the help target '%s'\n", args[2])
			} else {
				fmt.Println(text)
			}
		default:
			fmt.Println("The help mode can only take a single argument.")
		}
		os.Exit(0)
	} else if args[1] == "version" {
		fmt.Printf("blocksort version %s\n", version.SourceVersion)
		os.Exit(0)
	}

	mode, ok := cmd.ModeNames[args[1]]
	if !ok {
		fmt.Fprintf(
			os.Stderr, "You passed me the mode '%s', which I don't "+
				"recognize.\nFor help, type './blocksort help'\n", args[1],
		)
		os.Exit(1)
	}

	lines, err := stdinLines()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s", err.Error())
		os.Exit(1)
	}

	flags := getFlags(args)
	config, hasConfig := getConfig(args)
	_, gConfig, err := getGlobalConfig(args)
	if err != nil {
		log.Fatalf("Error running mode %s:\n%s\n", args[1], err.Error())
	}

	if hasConfig {
		err = mode.ReadConfig(config)
	} else {
		err = mode.ReadConfig("")
	}
	if err != nil {
		log.Fatalf("Error running mode %s:\n%s\n", args[1], err.Error())
	}

	out, err := mode.Run(flags, gConfig, lines)
	if err != nil {
		log.Fatalf("Error running mode %s:\n%s\n", args[1], err.Error())
	}

	for i := range out {
		fmt.Println(out[i])
	}
}

// stdinLines reads stdin and splits it into lines. If stdin is a
// terminal (nothing piped in), it returns an empty slice rather than
// blocking - unlike the teacher's own stdinLines, blocksort's modes
// treat stdin as optional, not a mandatory input.
func stdinLines() ([]string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, fmt.Errorf("error stat-ing stdin: %s.", err.Error())
	}
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return nil, nil
	}

	bs, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %s.", err.Error())
	}
	text := string(bs)
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// getFlags returns the flag tokens from the command line arguments.
func getFlags(args []string) []string {
	return args[2 : len(args)-configNum(args)]
}

// getGlobalConfig returns the name of the base config file from the
// command line arguments, or "" if none was given (and BLOCKSORT_GLOBAL_CONFIG
// wasn't set either), which every mode accepts as "use the defaults."
func getGlobalConfig(args []string) (string, *cmd.GlobalConfig, error) {
	name := os.Getenv("BLOCKSORT_GLOBAL_CONFIG")
	if name != "" {
		if configNum(args) > 1 {
			return "", nil, fmt.Errorf("$BLOCKSORT_GLOBAL_CONFIG has been " +
				"set, so you may only pass a single config file as a " +
				"parameter.")
		}
		config := &cmd.GlobalConfig{}
		if err := config.ReadConfig(name); err != nil {
			return "", nil, err
		}
		return name, config, nil
	}

	switch configNum(args) {
	case 0:
		config := &cmd.GlobalConfig{}
		if err := config.ReadConfig(""); err != nil {
			return "", nil, err
		}
		return "", config, nil
	case 1:
		name = args[len(args)-1]
	case 2:
		name = args[len(args)-2]
	default:
		return "", nil, fmt.Errorf("passed too many config files as arguments")
	}

	config := &cmd.GlobalConfig{}
	if err := config.ReadConfig(name); err != nil {
		return "", nil, err
	}
	return name, config, nil
}

// getConfig returns the name of the mode-specific config file from the
// command line arguments.
func getConfig(args []string) (string, bool) {
	if os.Getenv("BLOCKSORT_GLOBAL_CONFIG") != "" && configNum(args) == 1 {
		return args[len(args)-1], true
	} else if os.Getenv("BLOCKSORT_GLOBAL_CONFIG") == "" && configNum(args) == 2 {
		return args[len(args)-1], true
	}
	return "", false
}

// configNum returns the number of configuration files at the end of
// the argument list (up to 2).
func configNum(args []string) int {
	num := 0
	for i := len(args) - 1; i >= 2; i-- {
		if isConfig(args[i]) {
			num++
		} else {
			break
		}
	}
	return num
}

// isConfig returns true if the given string is a config file name.
func isConfig(s string) bool {
	return len(s) > 7 && s[len(s)-7:] == ".config"
}
