package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.lepak.sg/bintree/chops"
	"go.lepak.sg/bintree/tree"
	"go.lepak.sg/bintree/tree/avl"
	"go.lepak.sg/bintree/tree/bst"
)

const (
	kindAVL = "avl"
	kindBST = "bst"
)

type randomConfig struct {
	Num      int
	Seed     int64
	Kind     string
	Balanced bool
}

// randomTree is what the random command needs from a tree.
type randomTree interface {
	PreOrder(f func(k int) bool)
	LevelOrder(f func(k int) bool)
	InOrderCoroutine() chops.CoIterator[int]
	String() string
	Len() int
}

func newRandomCmd(a *bintreeApp) *cobra.Command {
	config := &randomConfig{}
	var cmd = &cobra.Command{
		Use:   "random",
		Short: "Builds a tree from [0, n) inserted in a random order and prints it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRandom(cmd, config)
		},
	}
	cmd.Flags().IntVarP(&config.Num, "num", "n", 10, "number of nodes in the tree")
	cmd.Flags().Int64VarP(&config.Seed, "seed", "s", 0, "seed (default current unix time in ns)")
	cmd.Flags().StringVar(&config.Kind, "kind", kindBST, "tree kind, one of: avl, bst")
	cmd.Flags().BoolVarP(&config.Balanced, "balanced", "b", false, "bst only: keep building the tree until it is balanced")
	return cmd
}

func (a *bintreeApp) runRandom(cmd *cobra.Command, config *randomConfig) error {
	if config.Num < 0 {
		return fmt.Errorf("number of nodes must not be negative: %d", config.Num)
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	var (
		tr       randomTree
		height   int
		attempts int
	)

	switch config.Kind {
	case kindAVL:
		if config.Balanced {
			return fmt.Errorf("--balanced only applies to %s trees", kindBST)
		}
		t := buildRandomAVL(config.Num, config.Seed)
		tr, height = t, t.Height()
	case kindBST:
		var t *bst.Tree[int]
		if config.Balanced {
			t, attempts = bst.BuildRandomBalanced(config.Num, config.Seed)
		} else {
			t = bst.BuildRandom(config.Num, config.Seed)
		}
		tr = t
		height, _ = t.Height()
	default:
		return fmt.Errorf("unknown tree kind %q", config.Kind)
	}

	a.logger.Debug().
		Str("kind", config.Kind).
		Int("num", config.Num).
		Int64("seed", config.Seed).
		Msg("built random tree")

	preorder := make([]int, 0, config.Num)
	tr.PreOrder(func(k int) bool {
		preorder = append(preorder, k)
		return true
	})

	inorder := make([]int, 0, config.Num)
	for n := range tr.InOrderCoroutine().Items() {
		inorder = append(inorder, n)
	}

	levelorder := make([]int, 0, config.Num)
	tr.LevelOrder(func(k int) bool {
		levelorder = append(levelorder, k)
		return true
	})

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "seed:", config.Seed)
	fmt.Fprintln(out, "preorder:", preorder)
	fmt.Fprintln(out, "inorder:", inorder)
	fmt.Fprintln(out, "levelorder:", levelorder)

	fmt.Fprintln(out, "tree:")
	fmt.Fprintln(out, tr.String())

	fmt.Fprintln(out, "height:", height, "ideal:", tree.IdealHeight(tr.Len()))

	if config.Balanced {
		fmt.Fprintln(out, "attempts:", attempts)
	}

	return nil
}

func buildRandomAVL(num int, seed int64) *avl.Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	tr := avl.New[int]()
	for _, k := range rd.Perm(num) {
		tr.Insert(k)
	}

	return tr
}
