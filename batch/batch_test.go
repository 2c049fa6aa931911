package batch_test

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/watersort/batch"
)

const sample = `
workers: 2
strategies: [BF, DF, AS1]
heuristic: mixed
dedup: true
max_expansions: 5000
timeout: 30s
puzzles:
  - name: trivial
    state: "ab;ba;ee"
  - name: stuck
    state: "ab;ba"
  - state: "aab;abb;eee"
`

func TestLoad(t *testing.T) {
	cfg, err := batch.Load(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, []string{"BF", "DF", "AS1"}, cfg.Strategies)
	assert.Equal(t, "mixed", cfg.Heuristic)
	assert.True(t, cfg.Dedup)
	assert.Equal(t, 5000, cfg.MaxExpansions)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	require.Len(t, cfg.Puzzles, 3)
	assert.Equal(t, "puzzle-2", cfg.Puzzles[2].Name)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := batch.Load(strings.NewReader("puzzles:\n  - state: \"aa;bb\"\n"))
	require.NoError(t, err)
	assert.Positive(t, cfg.Workers)
	assert.Equal(t, []string{"BF"}, cfg.Strategies)
	assert.Equal(t, batch.DefaultHeuristic, cfg.Heuristic)
	assert.Equal(t, batch.DefaultMaxExpansions, cfg.MaxExpansions)
	assert.Zero(t, cfg.Timeout)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "puzzles: []\nthreads: 4\n",
		"no puzzles":    "workers: 1\n",
		"bad strategy":  "strategies: [XX]\npuzzles:\n  - state: \"aa\"\n",
		"bad heuristic": "heuristic: magic\npuzzles:\n  - state: \"aa\"\n",
		"bad state":     "puzzles:\n  - state: \"ea;ab\"\n",
		"duplicate": "puzzles:\n  - name: x\n    state: \"aa\"\n" +
			"  - name: x\n    state: \"bb\"\n",
		"negative workers": "workers: -1\npuzzles:\n  - state: \"aa\"\n",
		"negative budget":  "max_expansions: -3\npuzzles:\n  - state: \"aa\"\n",
		"not yaml":         "workers: [",
	}
	for name, doc := range cases {
		_, err := batch.Load(strings.NewReader(doc))
		assert.ErrorIs(t, err, batch.ErrInvalidConfig, name)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	cfg, err := batch.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Puzzles, 3)

	_, err = batch.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunner_Run(t *testing.T) {
	cfg, err := batch.Load(strings.NewReader(sample))
	require.NoError(t, err)

	var (
		mu   sync.Mutex
		seen int
	)
	core, logs := observer.New(zapcore.InfoLevel)
	sum, err := batch.NewRunner(cfg,
		batch.WithLogger(zap.New(core)),
		batch.WithOnResult(func(batch.Result) {
			mu.Lock()
			seen++
			mu.Unlock()
		}),
	).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, sum.Results, 9)
	assert.Equal(t, 9, seen)
	assert.NotEmpty(t, sum.RunID)
	assert.EqualValues(t, 6, sum.Solved)
	assert.EqualValues(t, 3, sum.Unsolved)
	assert.EqualValues(t, 0, sum.Failed)

	// config order: puzzles outer, strategies inner
	assert.Equal(t, "trivial", sum.Results[0].Puzzle)
	assert.Equal(t, "BF", sum.Results[0].Code)
	assert.Equal(t, "DF", sum.Results[1].Code)
	assert.Equal(t, "pour_0_2,pour_1_0;2;3", sum.Results[0].Outcome.String())
	assert.Equal(t, "pour_1_2,pour_0_1;2;2", sum.Results[1].Outcome.String())
	for _, res := range sum.Results[3:6] {
		assert.Equal(t, batch.StatusNoSolution, res.Status)
	}

	finished := logs.FilterMessage("batch finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, sum.RunID, finished[0].ContextMap()["run_id"])
}

func TestRunner_Budget(t *testing.T) {
	cfg := &batch.Config{
		Workers:       1,
		Strategies:    []string{"DF"},
		MaxExpansions: 50,
		Puzzles:       []batch.Puzzle{{Name: "cycle", State: cycling}},
	}
	cfg.ApplyDefaults()
	sum, err := batch.NewRunner(cfg).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, sum.Results, 1)
	assert.Equal(t, batch.StatusBudget, sum.Results[0].Status)
	assert.EqualValues(t, 1, sum.Failed)
}

// cycling is solvable, but depth-first tree search shuffles its three
// layers between bottles forever.
const cycling = "abc;eee;eee"

func TestRunner_Timeout(t *testing.T) {
	cfg := &batch.Config{
		Workers:       2,
		Strategies:    []string{"DF", "BF"},
		MaxExpansions: math.MaxInt32,
		Timeout:       20 * time.Millisecond,
		Puzzles:       []batch.Puzzle{{Name: "cycle", State: cycling}},
	}
	cfg.ApplyDefaults()
	sum, err := batch.NewRunner(cfg).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, sum.Results, 2)

	df := sum.Results[0]
	assert.Equal(t, batch.StatusTimeout, df.Status)
	assert.ErrorIs(t, df.Err, context.DeadlineExceeded)
	require.NotNil(t, df.Outcome)
	assert.False(t, df.Outcome.Solved)
	assert.Positive(t, df.Outcome.Expanded)

	assert.Equal(t, batch.StatusSolved, sum.Results[1].Status)
	assert.EqualValues(t, 1, sum.Solved)
	assert.EqualValues(t, 1, sum.Failed)
}

func TestRunner_CancelledWhileRunning(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(20*time.Millisecond, cancel)

	cfg := &batch.Config{
		Workers:       1,
		Strategies:    []string{"DF"},
		MaxExpansions: math.MaxInt32,
		Puzzles:       []batch.Puzzle{{Name: "cycle", State: cycling}},
	}
	cfg.ApplyDefaults()
	sum, err := batch.NewRunner(cfg).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, sum)
	require.Len(t, sum.Results, 1)
	assert.Equal(t, batch.StatusCancelled, sum.Results[0].Status)
	assert.EqualValues(t, 1, sum.Failed)
}

func TestRunner_InvalidConfig(t *testing.T) {
	_, err := batch.NewRunner(&batch.Config{}).Run(context.Background())
	assert.ErrorIs(t, err, batch.ErrInvalidConfig)
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := &batch.Config{Puzzles: []batch.Puzzle{{State: "ab;ba;ee"}}}
	cfg.ApplyDefaults()
	sum, err := batch.NewRunner(cfg).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sum.Results)
}

func TestCompare(t *testing.T) {
	sum, err := batch.Compare(context.Background(), "ab;ba;ee",
		[]string{"BF", "UC", "GR1", "AS2"}, batch.Config{Workers: 4})
	require.NoError(t, err)
	require.Len(t, sum.Results, 4)
	for _, res := range sum.Results {
		assert.Equal(t, batch.StatusSolved, res.Status, res.Code)
		assert.Equal(t, 2, res.Outcome.Cost, res.Code)
		assert.Equal(t, "input", res.Puzzle)
	}

	var buf bytes.Buffer
	require.NoError(t, sum.WriteTable(&buf))
	out := buf.String()
	assert.Contains(t, out, "PUZZLE")
	assert.Contains(t, out, "pour_0_2,pour_1_0")
	assert.NotContains(t, out, "pour_0_2,pour_1_0;")
	assert.Contains(t, out, "4 solved, 0 unsolved, 0 failed")
}
