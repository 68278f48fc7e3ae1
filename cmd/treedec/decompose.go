package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/treedec/algorithm"
	"github.com/katalvlaran/treedec/config"
	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
	"github.com/katalvlaran/treedec/operation"
)

func newDecomposeCmd(a *app) *cobra.Command {
	var tdOut string
	cmd := &cobra.Command{
		Use:   "decompose FILE...",
		Short: "Decompose PACE graph files",
		Long: `Decompose every FILE and print one summary line per file:

  <file>: kind=<kind> nodes=<n> width=<w> [hypertree-width=<h>]

With --td the decomposition of a single input is written in PACE .td format.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if tdOut != "" && len(args) != 1 {
				return errors.New("--td needs exactly one input file")
			}
			results, err := a.decomposeAll(cmd.Context(), args, false)
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Fprintln(cmd.OutOrStdout(), r.summary())
			}
			if tdOut != "" {
				return writeTDFile(tdOut, cmd.OutOrStdout(), results[0])
			}

			return nil
		},
	}
	addDecomposeFlags(cmd)
	cmd.Flags().StringVar(&tdOut, "td", "", "write the decomposition in PACE .td format to this file (- for stdout)")

	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Decompose PACE graph files and check the decomposition invariants",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.decomposeAll(cmd.Context(), args, true)
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Fprintln(cmd.OutOrStdout(), r.summary(), "valid")
			}

			return nil
		},
	}
	addDecomposeFlags(cmd)

	return cmd
}

func addDecomposeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("kind", "k", "tree", "decomposition kind: tree, path or graph")
	f.String("ordering", "natural", "elimination ordering: natural or file:<path>")
	f.IntP("jobs", "j", 4, "files decomposed in parallel")
	f.Bool("normalize", false, "apply normalization")
	f.Bool("empty-root", false, "normalize with an empty root")
	f.Bool("empty-leaves", false, "normalize with empty leaves")
	f.Bool("identical-join-parent", false, "normalize with a copy of every join node above it")
	f.Bool("leaves-as-introduce", false, "treat leaves as introduce nodes when limiting introduced vertices")
	f.Bool("compress", false, "remove nodes whose bag is contained in a neighbour's bag")
	f.Int("max-children", 0, "split join nodes with more children (0 = unlimited)")
	f.Bool("induced", false, "attach the induced subgraph label")
	f.Bool("covering", false, "attach the covering edges label and report hypertree width")
}

// result is the outcome of decomposing one file.
type result struct {
	file     string
	kind     string
	vertices int
	d        decomposition.Decomposition
	width    int
	htw      int
	hasHTW   bool
}

func (r result) summary() string {
	s := fmt.Sprintf("%s: kind=%s nodes=%d width=%d", r.file, r.kind, r.d.NodeCount(), r.width)
	if r.hasHTW {
		s += fmt.Sprintf(" hypertree-width=%d", r.htw)
	}

	return s
}

// decomposeAll decomposes files concurrently, bounded by decompose.jobs.
// Results keep the order of files.
func (a *app) decomposeAll(ctx context.Context, files []string, validate bool) ([]result, error) {
	opts, err := a.algorithmOptions()
	if err != nil {
		return nil, err
	}
	results := make([]result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Decompose.Jobs)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			r, err := a.decomposeFile(ctx, file, opts, validate)
			if err != nil {
				return errors.Wrap(err, file)
			}
			results[i] = r

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (a *app) decomposeFile(ctx context.Context, file string, opts []algorithm.Option, validate bool) (result, error) {
	g, err := readGraph(file)
	if err != nil {
		return result{}, err
	}
	c := a.cfg.Decompose
	ops := operations(c, g)
	r := result{file: file, kind: c.Kind, vertices: g.VertexCount()}

	switch c.Kind {
	case "graph":
		d, err := algorithm.NewGraphDecomposer(opts...)
		if err != nil {
			return r, err
		}
		out, err := d.ComputeDecomposition(ctx, g, ops...)
		if err != nil {
			return r, err
		}
		r.d, r.width = out, out.Width()
	case "path":
		d, err := algorithm.NewPathDecomposer(opts...)
		if err != nil {
			return r, err
		}
		out, err := d.ComputeDecomposition(ctx, g, ops...)
		if err != nil {
			return r, err
		}
		r.d, r.width = out, out.Width()
	default:
		d, err := algorithm.NewTreeDecomposer(opts...)
		if err != nil {
			return r, err
		}
		out, err := d.ComputeDecomposition(ctx, g, ops...)
		if err != nil {
			return r, err
		}
		r.d, r.width = out, out.Width()
	}

	if c.Covering {
		if r.htw, err = decomposition.HypertreeWidth(r.d); err != nil {
			return r, err
		}
		r.hasHTW = true
	}
	if validate {
		if err = decomposition.Validate(g, r.d); err != nil {
			return r, err
		}
	}
	a.logger.Debug("file decomposed", zap.String("file", file), zap.Int("nodes", r.d.NodeCount()))

	return r, nil
}

// operations builds the call-scoped operations for one input graph.
func operations(c config.DecomposeConfig, g hypergraph.View) []operation.Operation {
	var ops []operation.Operation
	if c.Compress {
		ops = append(ops, operation.NewCompression())
	}
	if c.MaxChildren > 0 {
		ops = append(ops, operation.NewLimitChildCount(c.MaxChildren))
	}
	var norm []operation.NormalizationOption
	if c.EmptyRoot {
		norm = append(norm, operation.WithEmptyRoot())
	}
	if c.EmptyLeaves {
		norm = append(norm, operation.WithEmptyLeaves())
	}
	if c.IdenticalJoinParent {
		norm = append(norm, operation.WithIdenticalJoinNodeParent())
	}
	if c.LeavesAsIntroduce {
		norm = append(norm, operation.WithLeafNodesAsIntroduceNodes())
	}
	if c.Normalize || len(norm) > 0 {
		ops = append(ops, operation.NewNormalization(norm...))
	}
	if c.Induced {
		ops = append(ops, operation.NewInducedSubgraphLabeling(g))
	}
	if c.Covering {
		ops = append(ops, operation.NewCoveringEdgesLabeling(g))
	}

	return ops
}

func readGraph(file string) (*hypergraph.Hypergraph, error) {
	var r io.Reader = os.Stdin
	if file != "-" {
		fh, err := os.Open(file)
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		defer fh.Close()
		r = fh
	}

	return hypergraph.ReadPACE(r)
}
