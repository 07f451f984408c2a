package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/bintree/tree/binary"
	"go.uber.org/goleak"
)

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	a := New()
	var out, errOut bytes.Buffer
	a.baseCmd.SetArgs(args)
	a.baseCmd.SetOut(&out)
	a.baseCmd.SetErr(&errOut)
	a.baseCmd.SetIn(strings.NewReader(stdin))

	err = a.Execute(context.Background())
	return out.String(), errOut.String(), err
}

func TestRandom(t *testing.T) {
	defer goleak.VerifyNone(t)

	tests := []struct {
		name     string
		args     []string
		contains []string
		wantErr  string
	}{
		{
			name: "bst",
			args: []string{"random", "-n", "7", "-s", "1"},
			contains: []string{
				"seed: 1\n",
				"inorder: [0 1 2 3 4 5 6]\n",
				"ideal: 2\n",
			},
		},
		{
			name: "balanced bst",
			args: []string{"random", "-n", "7", "-s", "1", "--balanced"},
			contains: []string{
				"inorder: [0 1 2 3 4 5 6]\n",
				"attempts: ",
			},
		},
		{
			name: "avl",
			args: []string{"random", "--kind", "avl", "-n", "7", "-s", "1"},
			contains: []string{
				"inorder: [0 1 2 3 4 5 6]\n",
				"tree:\n" + buildRandomAVL(7, 1).String(),
			},
		},
		{
			name: "empty",
			args: []string{"random", "-n", "0", "-s", "1"},
			contains: []string{
				"inorder: []\n",
				"height: -1 ideal: -1\n",
			},
		},
		{
			name:    "avl is always balanced",
			args:    []string{"random", "--kind", "avl", "--balanced"},
			wantErr: "--balanced",
		},
		{
			name:    "unknown kind",
			args:    []string{"random", "--kind", "rb"},
			wantErr: "unknown tree kind",
		},
		{
			name:    "negative size",
			args:    []string{"random", "-n", "-1"},
			wantErr: "negative",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	const tree213 = "tree:\n2\n├─L─1\n└─R─3\n"

	tests := []struct {
		name    string
		stdin   string
		args    []string
		want    string
		wantErr error
	}{
		{
			name: "flags",
			args: []string{"build", "--in", "1 2 3", "--pre", "2 1 3"},
			want: tree213,
		},
		{
			name: "recursive",
			args: []string{"build", "--in", "1 2 3", "--pre", "2 1 3", "--mode", "r"},
			want: tree213,
		},
		{
			name:  "stdin",
			stdin: "1 2 3\n2 1 3\n",
			args:  []string{"build"},
			want:  "in-order: pre-order: " + tree213,
		},
		{
			name:  "stdin without final newline",
			stdin: "1 2 3\n2 1 3",
			args:  []string{"build", "--mode", "r"},
			want:  "in-order: pre-order: " + tree213,
		},
		{
			name:  "one flag, one line",
			stdin: "2 1 3\n",
			args:  []string{"build", "--in", "1 2 3"},
			want:  "pre-order: " + tree213,
		},
		{
			name:    "length mismatch",
			args:    []string{"build", "--in", "1 2", "--pre", "1"},
			wantErr: binary.ErrLengthMismatch,
		},
		{
			name:    "inconsistent",
			args:    []string{"build", "--in", "3 1 2", "--pre", "1 2 3", "--mode", "r"},
			wantErr: binary.ErrInconsistent,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.stdin, tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestBuild_BadInput(t *testing.T) {
	_, _, err := execute(t, "", "build", "--in", "1 x", "--pre", "1 2")
	assert.ErrorContains(t, err, "parsing in-order traversal")

	_, _, err = execute(t, "", "build", "--in", "1", "--pre", "1", "--mode", "z")
	assert.ErrorContains(t, err, "not a valid mode")

	_, _, err = execute(t, "", "build")
	assert.ErrorContains(t, err, "reading in-order traversal")
}

func TestCheck(t *testing.T) {
	defer goleak.VerifyNone(t)

	out, logs, err := execute(t, "",
		"check", "--rounds", "2", "--size", "20", "--seed", "5", "--workers", "1",
		"--log-format", "json")
	require.NoError(t, err)

	assert.Contains(t, out, "rounds: 2 inserts: 40 removals: 20 max height: ")
	assert.Contains(t, logs, `"message":"starting check"`)
	assert.Contains(t, logs, `"message":"check finished"`)
	assert.NotContains(t, logs, "round passed")
}

func TestCheck_Env(t *testing.T) {
	t.Setenv("BINTREE_ROUNDS", "3")
	t.Setenv("BINTREE_LOG_LEVEL", "debug")

	out, logs, err := execute(t, "", "check", "--size", "10", "--seed", "1", "--log-format", "json")
	require.NoError(t, err)

	assert.Contains(t, out, "rounds: 3 inserts: 30 ")
	assert.Contains(t, logs, "round passed")

	// flags win over the environment
	out, _, err = execute(t, "", "check", "--rounds", "1", "--size", "10", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "rounds: 1 inserts: 10 ")
}

func TestLoggerFlags(t *testing.T) {
	_, _, err := execute(t, "", "random", "--log-level", "loud")
	assert.ErrorContains(t, err, "initializing logger")

	_, _, err = execute(t, "", "random", "--log-format", "xml")
	assert.ErrorContains(t, err, "unknown log format")

	_, logs, err := execute(t, "", "random", "-n", "3", "-s", "9", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, logs, "built random tree")
}
