package main

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"testing"

	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
	"github.com/stretchr/testify/require"
)

func parseLine(t *testing.T, line string) (string, []int) {
	t.Helper()
	fields := strings.Fields(line)
	require.NotEmpty(t, fields)
	var vals []int
	for _, f := range fields[1:] {
		v, err := strconv.Atoi(f)
		require.NoError(t, err)
		vals = append(vals, v)
	}
	return fields[0], vals
}

func runSteps(t *testing.T, fv *demoFlags) map[string][]int {
	t.Helper()
	var logs, out bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&logs, nil)))
	require.NoError(t, run(ctx, &out, fv))
	require.Contains(t, logs.String(), `"msg":"done"`)

	steps := make(map[string][]int)
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		name, vals := parseLine(t, line)
		steps[name] = vals
	}
	return steps
}

func TestRun(t *testing.T) {
	for _, sort := range []string{"insertion", "merge", "selection"} {
		steps := runSteps(t, &demoFlags{Seed: 42, Size: 12, From: 0, To: 9, Sort: sort})

		random := steps["random"]
		require.Len(t, random, 12)
		want := slices.Clone(random)
		slices.Sort(want)
		require.Equal(t, want, steps[sort])

		bounded := steps["bounded"]
		require.Equal(t, -1, bounded[0])
		require.Equal(t, 10, bounded[len(bounded)-1])
		require.Len(t, steps["popped"], 13)

		inverted := slices.Clone(steps["inverted"])
		slices.Reverse(inverted)
		require.Equal(t, steps["popped"], inverted)
		require.Equal(t, steps["popped"], steps["backwards"])
	}
}

func TestRunSeeded(t *testing.T) {
	fv := &demoFlags{Seed: 5, Size: 20, From: -50, To: 50, Sort: "merge"}
	require.Equal(t, runSteps(t, fv)["random"], runSteps(t, fv)["random"])
}

func TestRunErrors(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	require.Error(t, run(ctx, &out, &demoFlags{Size: 3, To: 5, Sort: "bubble"}))
	require.Error(t, run(ctx, &out, &demoFlags{Size: 3, From: 5, To: 1, Sort: "merge"}))
}

func TestFlagsRegister(t *testing.T) {
	fs := subcmd.NewFlagSet()
	require.NoError(t, fs.RegisterFlagStruct(&demoFlags{}, nil, nil))
}
