package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/genealign/nw"
)

// flag names, also used as viper keys
const (
	flagBanded    = "banded"
	flagMaxLength = "max-length"
	flagMaxIndels = "max-indels"
	flagTable     = "table"
)

func newAlignCmd(v *viper.Viper) *cobra.Command {
	c := &cobra.Command{
		Use:   "align SEQ1 SEQ2",
		Short: "Print the minimum alignment cost and the aligned strings",
		Long: `Aligns SEQ1 (table columns) with SEQ2 (table rows).

Scoring is fixed: match -3, substitution 1, insertion/deletion 5.
With --banded only cells within --max-indels of the diagonal are computed;
if the sequences differ in length by more than that, no alignment is
possible and the cost is reported as +Inf.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := nw.DefaultOptions()
			opts.Banded = v.GetBool(flagBanded)
			opts.MaxCompareLength = v.GetInt(flagMaxLength)
			opts.MaxIndels = v.GetInt(flagMaxIndels)

			return runAlign(cmd.OutOrStdout(), args[0], args[1], opts, v.GetBool(flagTable))
		},
	}

	c.Flags().BoolP(flagBanded, "b", false, "Restrict the search to a diagonal band")
	c.Flags().IntP(flagMaxLength, "n", nw.DefaultMaxCompareLength, "Compare at most this many symbols of each sequence")
	c.Flags().IntP(flagMaxIndels, "k", nw.DefaultMaxIndels, "Band radius used with --banded")
	c.Flags().BoolP(flagTable, "t", false, "Also print the cost table")
	if err := v.BindPFlags(c.Flags()); err != nil {
		panic(err) // flags are static, binding cannot fail
	}

	return c
}

// runAlign writes the result of one alignment to w.
func runAlign(w io.Writer, seq1, seq2 string, opts nw.Options, table bool) error {
	res, err := nw.AlignWithOptions(seq1, seq2, opts)
	if err != nil {
		return fmt.Errorf("align: %w", err)
	}

	if table {
		tbl, err := nw.Compute(seq1, seq2, opts)
		if err != nil {
			return fmt.Errorf("align: %w", err)
		}
		if _, err := io.WriteString(w, tbl.Format()); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(w, "cost: %v\n%s\n%s\n", res.Cost, res.Seq1, res.Seq2)

	return err
}
