/*Package stress generates integer key sequences shaped to stress
particular code paths in the sort driver - already-sorted runs for the
fast rotate-instead-of-merge branch, all-equal runs for the stable
small-range networks, jittered near-sorted runs for the galloping
merges, and so on. Each distribution is a function of an element's
index, the total count and a seeded generator, following the reference
implementation's
Testing* generators, so a distribution and a seed together reproduce
the same sequence every run.
*/
package stress

import (
	"fmt"

	"github.com/phil-mansfield/blocksort/rand"
)

// Distribution names one of the stress shapes a sequence can take.
type Distribution int

const (
	Random Distribution = iota
	RandomFew
	MostlyAscending
	MostlyDescending
	Ascending
	Descending
	Equal
	Jittered
	MostlyEqual
	Append
)

var names = map[Distribution]string{
	Random:          "random",
	RandomFew:       "random-few",
	MostlyAscending: "mostly-ascending",
	MostlyDescending: "mostly-descending",
	Ascending:       "ascending",
	Descending:      "descending",
	Equal:           "equal",
	Jittered:        "jittered",
	MostlyEqual:     "mostly-equal",
	Append:          "append",
}

// All lists every distribution, in the order the bench and check modes
// report them.
var All = []Distribution{Random, RandomFew, MostlyAscending, MostlyDescending, Ascending, Descending, Equal, Jittered, MostlyEqual, Append}

func (d Distribution) String() string {
	if name, ok := names[d]; ok {
		return name
	}
	return "unknown"
}

// Parse looks up the Distribution named by s, matching the names
// String prints. It returns an error if s isn't one of them.
func Parse(s string) (Distribution, error) {
	for _, d := range All {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("stress: '%s' is not a recognized distribution", s)
}

// Generate returns a slice of n keys shaped according to d, seeded by
// seed so the same (d, n, seed) triple always reproduces the same
// sequence.
func Generate(d Distribution, n int, seed uint64) []int {
	gen := rand.New(rand.Golang, seed)
	xs := make([]int, n)
	for i := range xs {
		xs[i] = sample(d, gen, i, n)
	}
	return xs
}

func sample(d Distribution, gen *rand.Generator, index, total int) int {
	switch d {
	case Random:
		return gen.UniformInt(0, total+1)
	case RandomFew:
		return gen.UniformInt(0, 100)
	case MostlyAscending:
		return index + gen.UniformInt(-2, 3)
	case MostlyDescending:
		return total - index + gen.UniformInt(-2, 3)
	case Ascending:
		return index
	case Descending:
		return total - index
	case Equal:
		return 1000
	case Jittered:
		if gen.Uniform(0, 1) <= 0.9 {
			return index
		}
		return index - 2
	case MostlyEqual:
		return 1000 + gen.UniformInt(0, 4)
	case Append:
		// the last 1/5 of the data is random; the rest is already sorted,
		// stressing the merge driver's already-sorted-run fast paths.
		if index > total-total/5 {
			return gen.UniformInt(0, total+1)
		}
		return index
	default:
		panic("stress: unknown distribution")
	}
}
