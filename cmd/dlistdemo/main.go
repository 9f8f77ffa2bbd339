// Command dlistdemo fills a list with random integers and walks it
// through sorting, insertion, removal and inversion, printing the list
// after every step.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
	"deedles.dev/dlist"
)

type demoFlags struct {
	Seed    int    `subcmd:"seed,0,seed for the random fill; 0 picks a random seed"`
	Size    int    `subcmd:"size,10,number of random values"`
	From    int    `subcmd:"from,0,smallest random value"`
	To      int    `subcmd:"to,99,largest random value"`
	Sort    string `subcmd:"sort,merge,'sorting algorithm: insertion, merge or selection'"`
	JSON    bool   `subcmd:"json,false,log as JSON"`
	Verbose int    `subcmd:"v,0,higher values log every step"`
}

var cmdSet *subcmd.CommandSet

func init() {
	runFlagSet := subcmd.NewFlagSet()
	runFlagSet.MustRegisterFlagStruct(&demoFlags{}, nil, nil)

	runCmd := subcmd.NewCommand("run", runFlagSet, runDemo, subcmd.WithoutArguments())
	runCmd.Document("fill a list with random integers and print it after sorting, insertion, removal and inversion")

	cmdSet = subcmd.NewCommandSet(runCmd)
}

func main() {
	if err := cmdSet.Dispatch(context.Background()); err != nil {
		cmdutil.Exit("%v", err)
	}
}

func runDemo(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*demoFlags)

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if fv.Verbose > 0 {
		opts.Level = slog.LevelDebug
	}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if fv.JSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	ctx = ctxlog.WithLogger(ctx, slog.New(handler))

	if err := run(ctx, os.Stdout, fv); err != nil {
		ctxlog.Logger(ctx).Error("demo failed", "err", err)
		return err
	}
	return nil
}

func sorter(name string) (func(*dlist.List[int]), error) {
	switch name {
	case "insertion":
		return (*dlist.List[int]).SortInsertion, nil
	case "merge":
		return (*dlist.List[int]).SortMerge, nil
	case "selection":
		return (*dlist.List[int]).SortSelection, nil
	default:
		return nil, fmt.Errorf("unknown sort %q", name)
	}
}

func run(ctx context.Context, w io.Writer, fv *demoFlags) error {
	log := ctxlog.Logger(ctx)

	sort, err := sorter(fv.Sort)
	if err != nil {
		return err
	}

	var r *rand.Rand
	if fv.Seed != 0 {
		r = rand.New(rand.NewPCG(uint64(fv.Seed), uint64(fv.Seed)))
	}

	l := dlist.New[int]()
	if err := dlist.FillRandom(l, fv.From, fv.To, fv.Size, r); err != nil {
		return err
	}
	log.Info("filled", "size", l.Len(), "from", fv.From, "to", fv.To, "seed", fv.Seed)

	step := func(name string) error {
		if err := l.Check(); err != nil {
			return fmt.Errorf("%v: %w", name, err)
		}
		log.Debug("step", "name", name, "len", l.Len())
		fmt.Fprintf(w, "%-10s ", name)
		return l.Display(w)
	}

	if err := step("random"); err != nil {
		return err
	}

	sort(l)
	if err := step(fv.Sort); err != nil {
		return err
	}

	l.PushFront(fv.From - 1)
	l.PushBack(fv.To + 1)
	if err := step("bounded"); err != nil {
		return err
	}

	if l.Len() > 2 {
		v, err := l.Pop(l.Len() / 2)
		if err != nil {
			return err
		}
		log.Debug("popped middle", "value", v)
		if err := step("popped"); err != nil {
			return err
		}
	}

	l.Invert()
	if err := step("inverted"); err != nil {
		return err
	}

	fmt.Fprintf(w, "%-10s ", "backwards")
	if err := l.DisplayBackwards(w); err != nil {
		return err
	}

	log.Info("done", "len", l.Len())
	return nil
}
