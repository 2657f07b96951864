package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/phil-mansfield/blocksort/logging"
	"github.com/phil-mansfield/blocksort/parse"
	"github.com/phil-mansfield/blocksort/refsort"
	"github.com/phil-mansfield/blocksort/sort"
	"github.com/phil-mansfield/blocksort/stress"
)

// CheckConfig is the check mode: it runs the testable properties -
// multiset preservation, sortedness, stability, idempotence,
// determinism, boundary lengths, the differential property against
// refsort, and the concrete end-to-end scenarios - as a standalone
// executable check, printing a colored PASS/FAIL line per property.
type CheckConfig struct {
	lengths []int64
	seed    int64
}

var _ Mode = &CheckConfig{}

func (config *CheckConfig) ReadConfig(fname string) error {
	vars := parse.NewConfigVars("check")
	vars.Ints(&config.lengths, "Lengths", nil)
	vars.Int(&config.seed, "Seed", -1)

	if fname == "" {
		return nil
	}
	return parse.ReadConfig(fname, vars)
}

func (config *CheckConfig) ExampleConfig() string {
	return `[check]
# Lengths overrides the global config's length sweep for this run. Set
# it to the global config's own Lengths value to inherit it verbatim.
Lengths = 0, 1, 2, 3, 4, 7, 8, 15, 16, 65, 1000

# Seed overrides the global config's seed. -1 means inherit it.
Seed = -1`
}

type item struct {
	value, index int
}

func compareByValue(a, b item) int {
	if a.value < b.value {
		return -1
	} else if a.value > b.value {
		return 1
	}
	return 0
}

// property is a single named testable property, run once per length/
// distribution pair and reporting pass/fail plus an optional detail
// string on failure.
type property struct {
	name string
	run  func(xs []int) (ok bool, detail string)
}

func (config *CheckConfig) Run(
	flags []string, gConfig *GlobalConfig, stdin []string,
) ([]string, error) {
	lengths := config.lengths
	if len(lengths) == 0 {
		lengths = gConfig.lengths
	}
	seed := config.seed
	if seed < 0 {
		seed = gConfig.seed
	}

	l := logging.Logger("check")
	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()

	var out []string
	total, failed := 0, 0

	report := func(name string, ok bool, detail string) {
		total++
		if ok {
			out = append(out, fmt.Sprintf("[%s] %s", pass("PASS"), name))
		} else {
			failed++
			out = append(out, fmt.Sprintf("[%s] %s: %s", fail("FAIL"), name, detail))
		}
		logging.Debugf(l, "checked %s ok=%v", name, ok)
	}

	for _, n64 := range lengths {
		n := int(n64)
		for _, d := range stress.All {
			keys := stress.Generate(d, n, uint64(seed))
			xs := make([]item, n)
			for i, k := range keys {
				xs[i] = item{value: k, index: i}
			}

			for _, p := range properties() {
				ok, detail := p.run(keysOf(xs))
				report(fmt.Sprintf("%s n=%s dist=%s", p.name, humanize.Comma(int64(n)), d), ok, detail)
			}

			ok, detail := checkStability(xs)
			report(fmt.Sprintf("stability n=%s dist=%s", humanize.Comma(int64(n)), d), ok, detail)

			ok, detail = checkDifferential(keysOf(xs))
			report(fmt.Sprintf("differential n=%s dist=%s", humanize.Comma(int64(n)), d), ok, detail)
		}
	}

	for _, s := range scenarios() {
		ok, detail := s.run()
		report(s.name, ok, detail)
	}

	logging.Perff(l, "ran %d checks, %d failed", total, failed)
	logging.Debugf(l, "Memory:\n%s", logging.MemString())
	out = append(out, fmt.Sprintf("%s/%s checks passed",
		humanize.Comma(int64(total-failed)), humanize.Comma(int64(total))))
	if failed > 0 {
		return out, fmt.Errorf("%d of %d checks failed", failed, total)
	}
	return out, nil
}

func keysOf(xs []item) []int {
	ys := make([]int, len(xs))
	for i, x := range xs {
		ys[i] = x.value
	}
	return ys
}

func properties() []property {
	return []property{
		{"multiset-preservation", func(xs []int) (bool, string) {
			sorted := append([]int(nil), xs...)
			sort.SortOrdered(sorted)
			return multisetEqual(xs, sorted), "multiset changed under sort"
		}},
		{"sortedness", func(xs []int) (bool, string) {
			sorted := append([]int(nil), xs...)
			sort.SortOrdered(sorted)
			for i := 0; i+1 < len(sorted); i++ {
				if sorted[i] > sorted[i+1] {
					return false, fmt.Sprintf("out of order at index %d", i)
				}
			}
			return true, ""
		}},
		{"idempotence", func(xs []int) (bool, string) {
			once := append([]int(nil), xs...)
			sort.SortOrdered(once)
			twice := append([]int(nil), once...)
			sort.SortOrdered(twice)
			for i := range once {
				if once[i] != twice[i] {
					return false, fmt.Sprintf("differs at index %d", i)
				}
			}
			return true, ""
		}},
		{"determinism", func(xs []int) (bool, string) {
			a := append([]int(nil), xs...)
			b := append([]int(nil), xs...)
			sort.SortOrdered(a)
			sort.SortOrdered(b)
			for i := range a {
				if a[i] != b[i] {
					return false, fmt.Sprintf("differs at index %d across runs", i)
				}
			}
			return true, ""
		}},
	}
}

func multisetEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, x := range a {
		counts[x]++
	}
	for _, x := range b {
		counts[x]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}

func checkStability(xs []item) (bool, string) {
	sorted := append([]item(nil), xs...)
	sort.Sort(sorted, compareByValue)
	for i := 0; i+1 < len(sorted); i++ {
		if sorted[i].value == sorted[i+1].value && sorted[i].index > sorted[i+1].index {
			return false, fmt.Sprintf("indices %d, %d out of original order at equal keys",
				sorted[i].index, sorted[i+1].index)
		}
	}
	return true, ""
}

func checkDifferential(xs []int) (bool, string) {
	got := append([]int(nil), xs...)
	sort.SortOrdered(got)
	want := append([]int(nil), xs...)
	refsort.Sort(want, func(a, b int) int { return a - b })
	for i := range got {
		if got[i] != want[i] {
			return false, fmt.Sprintf("differs from reference sort at index %d", i)
		}
	}
	return true, ""
}

type scenario struct {
	name string
	run  func() (bool, string)
}

func scenarios() []scenario {
	return []scenario{
		{"scenario: empty", func() (bool, string) {
			xs := []int{}
			sort.SortOrdered(xs)
			return len(xs) == 0, "expected empty"
		}},
		{"scenario: single", func() (bool, string) {
			xs := []int{7}
			sort.SortOrdered(xs)
			return xs[0] == 7, "expected [7]"
		}},
		{"scenario: reverse-8", func() (bool, string) {
			xs := []int{8, 7, 6, 5, 4, 3, 2, 1}
			sort.SortOrdered(xs)
			want := []int{1, 2, 3, 4, 5, 6, 7, 8}
			for i := range xs {
				if xs[i] != want[i] {
					return false, fmt.Sprintf("index %d: got %d want %d", i, xs[i], want[i])
				}
			}
			return true, ""
		}},
		{"scenario: stability-tag", func() (bool, string) {
			xs := []item{{5, 0}, {3, 1}, {5, 2}, {3, 3}, {5, 4}}
			sort.Sort(xs, compareByValue)
			want := []item{{3, 1}, {3, 3}, {5, 0}, {5, 2}, {5, 4}}
			for i := range xs {
				if xs[i] != want[i] {
					return false, fmt.Sprintf("index %d: got %v want %v", i, xs[i], want[i])
				}
			}
			return true, ""
		}},
		{"scenario: all-equal-1000", func() (bool, string) {
			xs := make([]item, 1000)
			for i := range xs {
				xs[i] = item{value: 42, index: i}
			}
			sort.Sort(xs, compareByValue)
			for i := range xs {
				if xs[i].index != i {
					return false, fmt.Sprintf("index %d: got original index %d", i, xs[i].index)
				}
			}
			return true, ""
		}},
		{"scenario: buffer-discovery-boundary-65", func() (bool, string) {
			xs := stress.Generate(stress.Random, 65, 1)
			ok, detail := checkDifferential(xs)
			return ok, detail
		}},
	}
}
