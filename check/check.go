// Package check stress-tests the AVL tree: it replays seeded random
// workloads on several goroutines and validates the tree after every
// mutation.
package check

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"go.lepak.sg/bintree/tree/avl"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

var (
	ErrConfig   = errors.New("invalid check config")
	ErrMismatch = errors.New("tree contents mismatch")
)

// Config controls a Run.
type Config struct {
	// Rounds is the number of independent rounds.
	Rounds int
	// Size is the number of keys inserted in each round.
	Size int
	// Seed derives the seed of every round.
	Seed int64
	// Workers is the maximum number of rounds running at once.
	// Zero means GOMAXPROCS.
	Workers int
	// Logger defaults to a no-op logger.
	Logger *zerolog.Logger
}

// Report summarizes a successful Run.
type Report struct {
	Rounds    int
	Inserts   int
	Removals  int
	MaxHeight int
}

type roundFunc func(ctx context.Context, seed int64, size int) (Report, error)

// Run runs cfg.Rounds rounds. Each round fills an AVL tree from a
// seeded multiset of cfg.Size keys, checks it, removes half of the
// keys with a mix of RemoveFirst, RemoveMinimum and RemoveMaximum,
// and finally empties it with RemoveAll.
//
// The first failing round cancels the others, and its error is
// returned with the round number and seed needed to replay it.
// If ctx is canceled, Run stops and returns the context error.
func Run(ctx context.Context, cfg Config) (Report, error) {
	return run(ctx, cfg, playRound)
}

func run(ctx context.Context, cfg Config, round roundFunc) (Report, error) {
	if cfg.Rounds < 0 || cfg.Size < 0 || cfg.Workers < 0 {
		return Report{}, fmt.Errorf("%w: rounds=%d size=%d workers=%d",
			ErrConfig, cfg.Rounds, cfg.Size, cfg.Workers)
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	logger := cfg.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	// Round seeds are drawn up front so that they don't depend on
	// scheduling.
	seedrd := rand.New(rand.NewSource(cfg.Seed))
	seeds := make([]int64, cfg.Rounds)
	for i := range seeds {
		seeds[i] = seedrd.Int63()
	}

	start := time.Now()
	reports := make([]Report, cfg.Rounds)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, seed := range seeds {
		if egCtx.Err() != nil {
			break
		}

		i, seed := i, seed
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			r, err := round(egCtx, seed, cfg.Size)
			if err != nil {
				logger.Debug().Err(err).Int("round", i).Int64("seed", seed).Msg("round failed")
				return fmt.Errorf("round %d (seed %d): %w", i, seed, err)
			}

			logger.Debug().
				Int("round", i).
				Int64("seed", seed).
				Int("height", r.MaxHeight).
				Msg("round passed")
			reports[i] = r
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return Report{}, err
	}
	// A round that never started leaves no error behind.
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	var total Report
	for _, r := range reports {
		total.Rounds += r.Rounds
		total.Inserts += r.Inserts
		total.Removals += r.Removals
		if r.MaxHeight > total.MaxHeight {
			total.MaxHeight = r.MaxHeight
		}
	}

	logger.Info().
		Int("rounds", total.Rounds).
		Int("inserts", total.Inserts).
		Int("removals", total.Removals).
		Int("max_height", total.MaxHeight).
		Dur("elapsed", time.Since(start)).
		Msg("check finished")

	return total, nil
}

// ctxCheckInterval is how many operations a round runs between
// looks at its context.
const ctxCheckInterval = 64

func playRound(ctx context.Context, seed int64, size int) (r Report, err error) {
	r.Rounds = 1
	rd := rand.New(rand.NewSource(seed))

	keys := make([]int, size)
	for i := range keys {
		// about two of each key
		keys[i] = rd.Intn(size/2 + 1)
	}

	tr := avl.New[int]()
	for i, k := range keys {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return r, err
			}
		}

		tr.Insert(k)
		r.Inserts++
		if err := tr.Validate(); err != nil {
			return r, fmt.Errorf("after inserting #%d (%d): %w", i, k, err)
		}
	}
	r.MaxHeight = tr.Height()

	remaining := slices.Clone(keys)
	slices.Sort(remaining)
	if err := sameKeys(tr, remaining); err != nil {
		return r, err
	}

	for i := 0; i < size/2; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return r, err
			}
		}

		var (
			op      string
			want    int
			removed int
			ok      bool
		)
		switch rd.Intn(3) {
		case 0:
			j := rd.Intn(len(remaining))
			op, want = "RemoveFirst", remaining[j]
			removed, ok = tr.RemoveFirst(want)
			remaining = slices.Delete(remaining, j, j+1)
		case 1:
			op, want = "RemoveMinimum", remaining[0]
			removed, ok = tr.RemoveMinimum()
			remaining = remaining[1:]
		default:
			op, want = "RemoveMaximum", remaining[len(remaining)-1]
			removed, ok = tr.RemoveMaximum()
			remaining = remaining[:len(remaining)-1]
		}
		r.Removals++

		if !ok || removed != want {
			return r, fmt.Errorf("%w: %s #%d returned (%d, %v), want %d",
				ErrMismatch, op, i, removed, ok, want)
		}
		if err := tr.Validate(); err != nil {
			return r, fmt.Errorf("after %s #%d (%d): %w", op, i, want, err)
		}
	}

	if err := sameKeys(tr, remaining); err != nil {
		return r, err
	}

	n := tr.Len()
	all := tr.RemoveAll()
	if len(all) != n || !tr.IsEmpty() {
		return r, fmt.Errorf("%w: RemoveAll returned %d keys from a tree of %d",
			ErrMismatch, len(all), n)
	}

	slices.Sort(all)
	if !slices.Equal(all, remaining) {
		return r, fmt.Errorf("%w: RemoveAll returned the wrong keys", ErrMismatch)
	}

	return r, nil
}

// sameKeys checks that an in-order walk of tr yields want.
func sameKeys(tr *avl.Tree[int], want []int) error {
	got := make([]int, 0, tr.Len())
	tr.InOrder(func(k int) bool {
		got = append(got, k)
		return true
	})

	if !slices.Equal(got, want) {
		return fmt.Errorf("%w: in-order walk has %d keys, want %d",
			ErrMismatch, len(got), len(want))
	}
	return nil
}
