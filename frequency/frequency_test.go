package frequency_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.llib.dev/hashkit/frequency"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

func ExampleTally() {
	frequency.Tally([]int{1, 2, 2, 3, 3, 3}) // map[int]int{1: 1, 2: 2, 3: 3}
}

func ExampleGroupBy() {
	words := []string{"act", "pots", "tops", "cat"}
	frequency.GroupBy(words, func(w string) int {
		return len(w)
	}) // [][]string{{"act", "cat"}, {"pots", "tops"}}
}

func ExampleTopK() {
	frequency.TopK([]int{1, 2, 2, 3, 3, 3}, 2) // []int{3, 2}
}

func TestTally(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})

	t.Run("counts every occurrence", func(t *testing.T) {
		got := frequency.Tally([]int{1, 2, 2, 3, 3, 3})
		assert.Equal(t, map[int]int{1: 1, 2: 2, 3: 3}, got)
	})

	t.Run("nil in, nil out", func(t *testing.T) {
		assert.Nil(t, frequency.Tally[int](nil))
	})

	t.Run("total of the counts equals the input length", func(t *testing.T) {
		var vs []string
		rnd.Repeat(3, 42, func() {
			vs = append(vs, rnd.StringNC(1, "abc"))
		})

		var total int
		for _, count := range frequency.Tally(vs) {
			total += count
		}
		assert.Equal(t, len(vs), total)
	})
}

func TestGroupBy(t *testing.T) {
	t.Run("values sharing a key end up in the same group", func(t *testing.T) {
		words := []string{"act", "pots", "tops", "cat", "stop", "hat"}
		got := frequency.GroupBy(words, func(w string) string {
			return sortChars(w)
		})
		exp := [][]string{{"act", "cat"}, {"pots", "tops", "stop"}, {"hat"}}
		assert.Equal(t, exp, got)
	})

	t.Run("groups and their content follow the first-seen order", func(t *testing.T) {
		got := frequency.GroupBy([]int{5, 2, 8, 4, 1}, func(n int) bool {
			return n%2 == 0
		})
		assert.Equal(t, [][]int{{5, 1}, {2, 8, 4}}, got)
	})

	t.Run("nil in, nil out", func(t *testing.T) {
		got := frequency.GroupBy(nil, func(n int) int { return n })
		assert.Equal(t, 0, len(got))
	})

	t.Run("every value lands in exactly one group", func(t *testing.T) {
		rnd := random.New(random.CryptoSeed{})
		var vs []int
		rnd.Repeat(5, 42, func() {
			vs = append(vs, rnd.IntB(0, 9))
		})

		groups := frequency.GroupBy(vs, func(n int) int { return n % 3 })

		var flat []int
		for _, group := range groups {
			flat = append(flat, group...)
		}
		opt := cmpopts.SortSlices(func(a, b int) bool { return a < b })
		assert.True(t, cmp.Equal(vs, flat, opt),
			assert.MessageF("grouping lost or invented values: %s", cmp.Diff(vs, flat, opt)))
	})
}

func TestTopK(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})

	t.Run("returns the k most frequent values", func(t *testing.T) {
		assert.ContainExactly(t, []int{2, 3}, frequency.TopK([]int{1, 2, 2, 3, 3, 3}, 2))
		assert.Equal(t, []int{7}, frequency.TopK([]int{7, 7}, 1))
	})

	t.Run("equal counts resolve to first-seen order", func(t *testing.T) {
		assert.Equal(t, []string{"b", "a"}, frequency.TopK([]string{"b", "a", "b", "a"}, 2))
	})

	t.Run("k equal to the distinct count returns everything", func(t *testing.T) {
		vs := []int{4, 4, 2, 9, 9, 9}
		got := frequency.TopK(vs, 3)
		assert.ContainExactly(t, []int{2, 4, 9}, got)
	})

	t.Run("non positive k yields nothing", func(t *testing.T) {
		assert.Equal(t, 0, len(frequency.TopK([]int{1, 2, 3}, 0)))
		assert.Equal(t, 0, len(frequency.TopK([]int{1, 2, 3}, -1)))
	})

	t.Run("result is invariant under input permutation", func(t *testing.T) {
		var vs []int
		rnd.Repeat(10, 100, func() {
			vs = append(vs, rnd.IntB(0, 5))
		})
		// the planted value outnumbers everything else, guaranteeing a unique answer
		for i, total := 0, len(vs)+1; i < total; i++ {
			vs = append(vs, 7)
		}

		exp := frequency.TopK(vs, 1)

		shuffled := make([]int, len(vs))
		copy(shuffled, vs)
		for i := len(shuffled) - 1; 0 < i; i-- {
			j := rnd.IntN(i + 1)
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		}

		assert.ContainExactly(t, exp, frequency.TopK(shuffled, 1))
	})
}

func sortChars(s string) string {
	chars := strings.Split(s, "")
	for i := 1; i < len(chars); i++ {
		for j := i; 0 < j && chars[j] < chars[j-1]; j-- {
			chars[j], chars[j-1] = chars[j-1], chars[j]
		}
	}
	return strings.Join(chars, "")
}
