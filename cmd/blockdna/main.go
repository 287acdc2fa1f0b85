// Command blockdna sweeps block-DNA length combinations and writes one oxDNA
// input folder per valid (total, double-stranded, single-stranded) triple.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lamr18/origami/blockdna"
)

var (
	numberRange []int
	doubleRange []int
	singleRange []int
	outputDir   string
	seed        int64
)

// rootCmd represents the blockdna command.
var rootCmd = &cobra.Command{
	Use:   "blockdna",
	Short: "Generate oxDNA input for sweeps of alternating ds/ss DNA blocks",
	Long: `Generate oxDNA input for sweeps of alternating ds/ss DNA blocks.

Each range is given as start,step,stop (inclusive). Every combination whose
total length divides evenly into (ds+ss) units is assembled into a straight
block construct and, with --output-prefix, written to a numbered folder of
oxDNA configuration and topology files.`,
	Version: "0.1.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		total, err := toRange(viper.GetIntSlice("number"))
		if err != nil {
			return fmt.Errorf("--number: %w", err)
		}
		ds, err := toRange(viper.GetIntSlice("double-stranded"))
		if err != nil {
			return fmt.Errorf("--double-stranded: %w", err)
		}
		ss, err := toRange(viper.GetIntSlice("single-stranded"))
		if err != nil {
			return fmt.Errorf("--single-stranded: %w", err)
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		count, err := blockdna.Sweep(blockdna.SweepOptions{
			Total:        total,
			Double:       ds,
			Single:       ss,
			OutputPrefix: viper.GetString("output-prefix"),
			Options: []blockdna.Option{
				blockdna.WithSeed(viper.GetInt64("seed")),
				blockdna.WithLogger(logger),
			},
		})
		if err != nil {
			return err
		}
		fmt.Printf("generated %d system(s)\n", count)

		return nil
	},
}

// toRange converts a start,step,stop flag triple into a blockdna.Range.
func toRange(v []int) (blockdna.Range, error) {
	if len(v) != 3 {
		return blockdna.Range{}, fmt.Errorf("want start,step,stop, got %d value(s)", len(v))
	}
	return blockdna.Range{Start: v[0], Step: v[1], Stop: v[2]}, nil
}

func init() {
	rootCmd.Flags().IntSliceVarP(&numberRange, "number", "n", nil, "total length range as start,step,stop (base pairs)")
	rootCmd.Flags().IntSliceVarP(&doubleRange, "double-stranded", "d", nil, "double-stranded segment range as start,step,stop")
	rootCmd.Flags().IntSliceVarP(&singleRange, "single-stranded", "s", nil, "single-stranded segment range as start,step,stop")
	rootCmd.Flags().StringVarP(&outputDir, "output-prefix", "f", "", "directory to write numbered oxDNA folders under")
	rootCmd.Flags().Int64Var(&seed, "seed", 1, "seed for random sequence content")

	rootCmd.MarkFlagRequired("number")
	rootCmd.MarkFlagRequired("double-stranded")
	rootCmd.MarkFlagRequired("single-stranded")

	// Bind the parameters to viper
	viper.BindPFlag("number", rootCmd.Flags().Lookup("number"))
	viper.BindPFlag("double-stranded", rootCmd.Flags().Lookup("double-stranded"))
	viper.BindPFlag("single-stranded", rootCmd.Flags().Lookup("single-stranded"))
	viper.BindPFlag("output-prefix", rootCmd.Flags().Lookup("output-prefix"))
	viper.BindPFlag("seed", rootCmd.Flags().Lookup("seed"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
