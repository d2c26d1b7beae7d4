// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/lvmul/matmul"
	"github.com/katalvlaran/lvmul/matrix"
	"github.com/katalvlaran/lvmul/metrics"
	"github.com/katalvlaran/lvmul/pool"
	"github.com/katalvlaran/lvmul/vector"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// matrixDoc is the YAML form of one operand.
type matrixDoc[T vector.Numeric] struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
	Data []T `yaml:"data"`
}

// productDoc is the input of "lvmul multiply": two operands a and b.
type productDoc[T vector.Numeric] struct {
	A matrixDoc[T] `yaml:"a"`
	B matrixDoc[T] `yaml:"b"`
}

func newMultiplyCmd(c *cli) *cobra.Command {
	var (
		elem    string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "multiply [file.yaml]",
		Short: "Multiply the matrices a and b read from YAML (stdin when no file)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "open input")
				}
				defer f.Close()
				in = f
			}
			switch elem {
			case "int":
				return runMultiply[int64](c, in, cmd.OutOrStdout(), verbose)
			case "float":
				return runMultiply[float64](c, in, cmd.OutOrStdout(), verbose)
			default:
				return errors.Newf("unknown element type %q (want int or float)", elem)
			}
		},
	}
	cmd.Flags().StringVar(&elem, "type", "int", "element type: int or float")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the debug rendering and a summary")

	return cmd
}

func runMultiply[T vector.Numeric](c *cli, in io.Reader, out io.Writer, verbose bool) error {
	var doc productDoc[T]
	if err := yaml.NewDecoder(in).Decode(&doc); err != nil {
		return errors.Wrap(err, "decode input")
	}
	a, err := matrix.New(doc.A.Data, doc.A.Rows, doc.A.Cols)
	if err != nil {
		return errors.Wrap(err, "operand a")
	}
	b, err := matrix.New(doc.B.Data, doc.B.Rows, doc.B.Cols)
	if err != nil {
		return errors.Wrap(err, "operand b")
	}

	counters := metrics.NewShardedMap()
	m, release, err := newMultiplier[T](c, counters)
	if err != nil {
		return err
	}
	defer release()

	start := time.Now()
	product, err := m.Multiply(a, b)
	elapsed := time.Since(start)
	release() // workers count after delivery; settle before rendering
	if err != nil {
		return err
	}

	fmt.Fprintln(out, product)
	if verbose {
		fmt.Fprintf(out, "%#v\n", product)
		cells := int64(product.Len())
		fmt.Fprintf(out, "%s cells, %s multiply-adds in %s\n",
			humanize.Comma(cells), humanize.Comma(cells*int64(a.Cols())), elapsed)
		if err := metrics.Render(out, counters); err != nil {
			return err
		}
	}

	return nil
}

// newMultiplier builds the engine described by the pool section: the shared
// pool, or a command-owned pool with the configured queue depth.
func newMultiplier[T vector.Numeric](c *cli, counters pool.Counter) (*matmul.Multiplier[T], func(), error) {
	opts := []matmul.Option{
		matmul.WithPolicy(c.cfg.Pool.Policy),
		matmul.WithLogger(c.logger),
		matmul.WithCounters(counters),
	}
	if c.cfg.Pool.Shared {
		return matmul.New[T](append(opts, matmul.WithSharedPool())...), pool.CloseShared, nil
	}
	p, err := pool.New[T](c.cfg.Pool.Policy.Max(),
		pool.WithQueueDepth(c.cfg.Pool.QueueDepth),
		pool.WithLogger(c.logger),
		pool.WithCounters(counters),
	)
	if err != nil {
		return nil, nil, err
	}

	return matmul.NewWithPool(p, opts...), p.Close, nil
}
