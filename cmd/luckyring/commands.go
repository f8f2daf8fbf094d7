package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/luckyring/lucky"
	"github.com/katalvlaran/luckyring/ring"
)

// luckyCmd prints the lucky numbers up to n.
func (a *app) luckyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lucky",
		Short: "Print the lucky numbers in 1..n",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lucky.Numbers[int](a.cfg.N,
				lucky.WithContext(cmd.Context()),
				lucky.WithLogger(a.logger))
			if err != nil {
				return fmt.Errorf("lucky: %w", err)
			}
			a.logger.Info("lucky numbers computed", zap.Int("n", a.cfg.N), zap.Int("count", l.Len()))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), l)

			return err
		},
	}
	cmd.Flags().Int("n", 0, "upper bound (default from config: 30)")

	return cmd
}

// unluckyCmd prints the complement of the lucky numbers up to n.
func (a *app) unluckyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlucky",
		Short: "Print the unlucky numbers in 1..n",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, u, err := lucky.Partition[int](a.cfg.N,
				lucky.WithContext(cmd.Context()),
				lucky.WithLogger(a.logger))
			if err != nil {
				return fmt.Errorf("unlucky: %w", err)
			}
			a.logger.Info("unlucky numbers computed", zap.Int("n", a.cfg.N), zap.Int("count", u.Len()))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), u)

			return err
		},
	}
	cmd.Flags().Int("n", 0, "upper bound (default from config: 30)")

	return cmd
}

// randomCmd prints a reproducible random list.
func (a *app) randomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a list of uniformly drawn integers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := ring.NewRandom(a.cfg.Count, a.cfg.Min, a.cfg.Max, ring.WithSeed(a.cfg.Seed))
			if err != nil {
				return fmt.Errorf("random: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), l)

			return err
		},
	}
	cmd.Flags().Int("count", 0, "number of values (default from config: 5)")
	cmd.Flags().Int("min", 0, "lower bound, inclusive (default from config: 10)")
	cmd.Flags().Int("max", 0, "upper bound, inclusive (default from config: 50)")
	cmd.Flags().Int64("seed", 0, "RNG seed, 0 keeps the default 42")

	return cmd
}

// demoCmd replays the full container walkthrough.
func (a *app) demoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through every list operation and the lucky sieve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.runDemo(cmd, cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("demo: %w", err)
			}

			return nil
		},
	}
	cmd.Flags().Int("n", 0, "upper bound for lucky numbers (default from config: 30)")
	cmd.Flags().Int("count", 0, "size of the random list (default from config: 5)")
	cmd.Flags().Int("min", 0, "random lower bound (default from config: 10)")
	cmd.Flags().Int("max", 0, "random upper bound (default from config: 50)")
	cmd.Flags().Int64("seed", 0, "RNG seed, 0 keeps the default 42")

	return cmd
}

// runDemo builds [1 2 0], merges a random list in front and behind, pops both
// ends, deletes every 2, copies, edits index 1 and finishes with the sieve.
func (a *app) runDemo(cmd *cobra.Command, w io.Writer) error {
	list := ring.New[int]()
	list.PushTail(1)
	list.PushTail(2)
	list.PushTail(0)
	fmt.Fprintf(w, "List: %s\n", list)

	another, err := ring.NewRandom(a.cfg.Count, a.cfg.Min, a.cfg.Max, ring.WithSeed(a.cfg.Seed))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Another list: %s\n", another)

	list.PushHeadList(another)
	fmt.Fprintf(w, "Merged list head: %s\n", list)

	list.PushTailList(another)
	fmt.Fprintf(w, "Merged list tail: %s\n", list)

	if _, err = list.PopHead(); err != nil {
		return err
	}
	if _, err = list.PopTail(); err != nil {
		return err
	}
	fmt.Fprintf(w, "After pops: %s\n", list)

	removed := list.Delete(2)
	a.logger.Debug("deleted value", zap.Int("value", 2), zap.Int("removed", removed))
	fmt.Fprintf(w, "After deleting 2s: %s\n", list)

	copied := list.Clone()
	fmt.Fprintf(w, "Copied list: %s\n", copied)

	v, err := list.At(1)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Element at index 1: %d\n", v)

	if err = list.Set(1, 42); err != nil {
		return err
	}
	fmt.Fprintf(w, "After modifying index 1: %s\n", list)
	fmt.Fprintf(w, "List size: %d\n", list.Len())

	l, u, err := lucky.Partition[int](a.cfg.N,
		lucky.WithContext(cmd.Context()),
		lucky.WithLogger(a.logger))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Lucky numbers: %s\n", l)
	fmt.Fprintf(w, "Unlucky numbers: %s\n", u)

	return nil
}
