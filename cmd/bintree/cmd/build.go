package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.lepak.sg/bintree/tree/binary"
)

type buildConfig struct {
	In   string
	Pre  string
	Mode string
}

func newBuildCmd(a *bintreeApp) *cobra.Command {
	config := &buildConfig{}
	var cmd = &cobra.Command{
		Use:   "build",
		Short: "Rebuilds a binary tree from its in-order and pre-order traversals",
		Long: `Rebuilds a binary tree from its in-order and pre-order traversals.
Traversals are space-separated integers. Any traversal not given as a flag
is read from a line of standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBuild(cmd, config)
		},
	}
	cmd.Flags().StringVar(&config.In, "in", "", "in-order traversal")
	cmd.Flags().StringVar(&config.Pre, "pre", "", "pre-order traversal")
	cmd.Flags().StringVar(&config.Mode, "mode", "i", "build method, one of: i (iterative), r (recursive)")
	return cmd
}

func (a *bintreeApp) runBuild(cmd *cobra.Command, config *buildConfig) error {
	var impl func([]int, []int) (*binary.Tree[int], error)
	switch config.Mode {
	case "i":
		// interesting...
		// actual type params of the function cannot be inferred
		// even though the variable has the fully instantiated type
		impl = binary.BuildFromPreAndInOrderIter[[]int, int]
	case "r":
		impl = binary.BuildFromPreAndInOrderRec[[]int, int]
	default:
		return fmt.Errorf("not a valid mode: %q", config.Mode)
	}

	out := cmd.OutOrStdout()
	stdin := bufio.NewReader(cmd.InOrStdin())

	in, err := readInts(out, stdin, "in-order", config.In)
	if err != nil {
		return err
	}
	pre, err := readInts(out, stdin, "pre-order", config.Pre)
	if err != nil {
		return err
	}

	a.logger.Debug().Ints("in", in).Ints("pre", pre).Str("mode", config.Mode).Msg("building tree")

	tr, err := impl(pre, in)
	if err != nil {
		return fmt.Errorf("building tree: %w", err)
	}

	fmt.Fprintln(out, "tree:")
	fmt.Fprint(out, tr.String())

	return nil
}

// readInts parses raw, or a line from r with a prompt if raw is empty.
func readInts(prompt io.Writer, r *bufio.Reader, name, raw string) ([]int, error) {
	if raw == "" {
		fmt.Fprintf(prompt, "%s: ", name)

		line, err := r.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return nil, fmt.Errorf("reading %s traversal: %w", name, err)
		}
		raw = line
	}

	raws := strings.Fields(raw)
	out := make([]int, len(raws))

	for i, rawNum := range raws {
		num, err := strconv.Atoi(rawNum)
		if err != nil {
			return nil, fmt.Errorf("parsing %s traversal: %w", name, err)
		}

		out[i] = num
	}
	return out, nil
}
