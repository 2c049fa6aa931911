package puzzle_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/watersort/puzzle"
	"github.com/katalvlaran/watersort/search"
)

func TestParse_RoundTrip(t *testing.T) {
	for _, enc := range []string{"ab;ba;ee", "a", "aab;bee;eee", "xyzw;eeee"} {
		s, err := puzzle.Parse(enc)
		require.NoError(t, err, enc)
		assert.Equal(t, enc, s.String())
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		enc  string
		want error
	}{
		{"", puzzle.ErrEmptyEncoding},
		{"ab;;ee", puzzle.ErrEmptyBottle},
		{"ab;b;ee", puzzle.ErrCapacityMismatch},
		{"ea;ab", puzzle.ErrEmptyGap},
		{"aeb;abb", puzzle.ErrEmptyGap},
		{"\x00b;ee;ee", puzzle.ErrInvalidColor},
		{"é;ab", puzzle.ErrInvalidColor},
		{"ab;éa", puzzle.ErrInvalidColor},
		{"a b;abb", puzzle.ErrInvalidColor},
		{"ab;b\n", puzzle.ErrInvalidColor},
	}
	for _, tc := range cases {
		_, err := puzzle.Parse(tc.enc)
		require.Error(t, err, tc.enc)
		assert.ErrorIs(t, err, puzzle.ErrMalformedState, tc.enc)
		assert.ErrorIs(t, err, tc.want, tc.enc)
	}
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, puzzle.State{}.Validate(), puzzle.ErrEmptyEncoding)
	mixed := puzzle.State{puzzle.NewBottle(2), puzzle.NewBottle(3)}
	assert.ErrorIs(t, mixed.Validate(), puzzle.ErrCapacityMismatch)
	_, err := puzzle.New(mixed)
	assert.ErrorIs(t, err, puzzle.ErrMalformedState)
}

func TestBottle_Accessors(t *testing.T) {
	b := puzzle.NewBottle(4, 'a', 'a', 'b')
	assert.Equal(t, "aabe", b.String())
	assert.Equal(t, puzzle.Layer('a'), b.Top())
	assert.Equal(t, 2, b.Run())
	assert.Equal(t, 1, b.Free())
	assert.Equal(t, 3, b.Filled())
	assert.False(t, b.Uniform())

	e := puzzle.NewBottle(3)
	assert.True(t, e.IsEmpty())
	assert.True(t, e.Uniform())
	assert.Equal(t, puzzle.Empty, e.Top())
	assert.Equal(t, "eee", e.String())
}

func TestCanPour(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{"ee", "ab", false}, // nothing to pour
		{"ab", "ee", true},  // empty target
		{"ab", "ae", true},  // same color
		{"ab", "be", false}, // color mismatch
		{"ab", "aa", true},  // same color, target full: legal but moves nothing
	}
	for _, tc := range cases {
		s := puzzle.MustParse(tc.from + ";" + tc.to)
		assert.Equal(t, tc.want, puzzle.CanPour(s[0], s[1]), "%s -> %s", tc.from, tc.to)
	}
}

func TestPour(t *testing.T) {
	cases := []struct {
		from, to         string
		wantFrom, wantTo string
		moved            int
	}{
		{"aab", "eee", "bee", "aae", 2},
		{"aab", "aee", "bee", "aaa", 2},
		{"aab", "abe", "abe", "aab", 1},
		{"aaa", "aee", "aee", "aaa", 2},
		{"ab", "aa", "ab", "aa", 0},
	}
	for _, tc := range cases {
		s := puzzle.MustParse(tc.from + ";" + tc.to)
		f, to, moved := puzzle.Pour(s[0], s[1])
		assert.Equal(t, tc.wantFrom, f.String())
		assert.Equal(t, tc.wantTo, to.String())
		assert.Equal(t, tc.moved, moved)
		// inputs untouched
		assert.Equal(t, tc.from, s[0].String())
		assert.Equal(t, tc.to, s[1].String())
	}
}

// allBottles enumerates every valid bottle of the given capacity over colors.
func allBottles(capacity int, colors string) []puzzle.Bottle {
	out := []puzzle.Bottle{puzzle.NewBottle(capacity)}
	var grow func(prefix []puzzle.Layer)
	grow = func(prefix []puzzle.Layer) {
		if len(prefix) == capacity {
			return
		}
		for i := 0; i < len(colors); i++ {
			next := append(append([]puzzle.Layer(nil), prefix...), puzzle.Layer(colors[i]))
			out = append(out, puzzle.NewBottle(capacity, next...))
			grow(next)
		}
	}
	grow(nil)
	return out
}

// TestPour_Conservation checks that every legal pour only moves layers.
func TestPour_Conservation(t *testing.T) {
	bottles := allBottles(3, "ab")
	require.Len(t, bottles, 1+2+4+8)
	for _, from := range bottles {
		for _, to := range bottles {
			if !puzzle.CanPour(from, to) {
				continue
			}
			nf, nt, moved := puzzle.Pour(from, to)
			assert.Equal(t, from.Filled()+to.Filled(), nf.Filled()+nt.Filled())
			assert.Equal(t, from.Free()+to.Free(), nf.Free()+nt.Free())
			assert.Equal(t, from.Capacity(), nf.Capacity())
			assert.Equal(t, to.Capacity(), nt.Capacity())
			assert.Equal(t, moved, from.Filled()-nf.Filled())
			// empty layers stay trailing in the encoding
			for _, b := range []puzzle.Bottle{nf, nt} {
				enc := b.String()
				assert.Equal(t, strings.TrimRight(enc, "e"), strings.ReplaceAll(enc, "e", ""), enc)
			}
		}
	}
}

func TestSolved_Idempotent(t *testing.T) {
	cases := map[string]bool{
		"ab;ba;ee":  false,
		"bb;ae;ae":  true,
		"ee;ee":     true,
		"aae;bbb":   true,
		"aab;bbe":   false,
		"be;aa;be":  true,
		"abc;eee":   false,
		"cccc;eeee": true,
	}
	p := &puzzle.Problem{}
	for enc, want := range cases {
		s := puzzle.MustParse(enc)
		first := s.Solved()
		assert.Equal(t, want, first, enc)
		assert.Equal(t, first, s.Solved(), enc)
		assert.Equal(t, first, p.IsGoal(s), enc)
	}
}

func TestExpand_OrderAndCosts(t *testing.T) {
	p, err := puzzle.FromEncoding("ab;ba;ee")
	require.NoError(t, err)

	tr := search.NewTree[puzzle.State](4)
	root := tr.Node(tr.Root(p.InitialState()))
	children := p.Expand(root)

	var got []string
	for _, c := range children {
		got = append(got, c.Action+"="+c.State.String())
		assert.Equal(t, root.PathCost+1, c.PathCost)
		assert.Equal(t, root.Depth+1, c.Depth)
		assert.Equal(t, root.ID, c.Parent)
	}
	assert.Equal(t, []string{"pour_0_2=be;ba;ae", "pour_1_2=ab;ae;be"}, got)
	assert.Equal(t, "ab;ba;ee", root.State.String(), "Expand must not mutate the parent")

	// a full same-color target yields no successor
	full, err := puzzle.FromEncoding("ab;aa")
	require.NoError(t, err)
	root2 := search.Node[puzzle.State]{State: full.InitialState(), Parent: search.NoParent}
	assert.Empty(t, full.Expand(root2))
}

func TestHeuristics(t *testing.T) {
	s := puzzle.MustParse("ab;ba;ee")
	assert.Equal(t, 0, puzzle.HeuristicZero(s))
	assert.Equal(t, 2, puzzle.HeuristicMixedBottles(s))
	assert.Equal(t, 2, puzzle.HeuristicColorBreaks(s))
	assert.Equal(t, 3, puzzle.HeuristicColorBreaks(puzzle.MustParse("abab;eeee")))

	h, err := puzzle.HeuristicByName("mixed")
	require.NoError(t, err)
	assert.Equal(t, 2, h(s))
	_, err = puzzle.HeuristicByName("nope")
	assert.ErrorIs(t, err, puzzle.ErrOptionViolation)
	assert.Equal(t, []string{"breaks", "mixed", "zero"}, puzzle.HeuristicNames())

	_, err = puzzle.FromEncoding("ab;ee", puzzle.WithHeuristic(nil))
	assert.ErrorIs(t, err, puzzle.ErrOptionViolation)

	p, err := puzzle.FromEncoding("ab;ba;ee", puzzle.WithHeuristic(puzzle.HeuristicMixedBottles))
	require.NoError(t, err)
	root := search.Node[puzzle.State]{State: p.InitialState(), Parent: search.NoParent}
	for _, c := range p.Expand(root) {
		assert.Equal(t, puzzle.HeuristicMixedBottles(c.State), c.HeuristicCost)
	}
}

func TestParseAction(t *testing.T) {
	from, to, err := puzzle.ParseAction(puzzle.ActionLabel(3, 11))
	require.NoError(t, err)
	assert.Equal(t, 3, from)
	assert.Equal(t, 11, to)
	for _, bad := range []string{"", "pour", "pour_1", "pour_x_1", "pour_1_y", "spill_1_2"} {
		_, _, err := puzzle.ParseAction(bad)
		assert.ErrorIs(t, err, puzzle.ErrBadAction, bad)
	}
}

func TestStatePour_Errors(t *testing.T) {
	s := puzzle.MustParse("ab;ba;ee")
	_, _, err := s.Pour(0, 0)
	assert.ErrorIs(t, err, puzzle.ErrBadAction)
	_, _, err = s.Pour(0, 5)
	assert.ErrorIs(t, err, puzzle.ErrBadAction)
	_, _, err = s.Pour(0, 1)
	assert.ErrorIs(t, err, puzzle.ErrIllegalPour)
	_, _, err = s.Pour(2, 0)
	assert.ErrorIs(t, err, puzzle.ErrIllegalPour)

	_, err = puzzle.Replay(s, []string{"pour_0_2", "garbage"})
	assert.ErrorIs(t, err, puzzle.ErrBadAction)
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { puzzle.MustParse("ea") })
}

// sanity check that the sentinel tree is distinguishable
func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(puzzle.ErrEmptyGap, puzzle.ErrCapacityMismatch))
}
