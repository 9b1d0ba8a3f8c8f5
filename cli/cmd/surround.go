package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nolman/fragment"
)

var (
	line   int
	column int

	surroundCmd = &cobra.Command{
		Use:   "surround [fragment]",
		Short: "Classify the token surrounding a line/column position",
		RunE: func(cmd *cobra.Command, args []string) error {
			frag, err := readFragment(args)
			if err != nil {
				return err
			}
			res, ok := fragment.SurroundContext(frag, fragment.Position{Line: line, Column: column})
			if !ok {
				fmt.Println("none")
				return nil
			}
			return emit(res)
		},
	}
)

func init() {
	surroundCmd.Flags().IntVar(&line, "line", 1, "1-based line of the position")
	surroundCmd.Flags().IntVar(&column, "column", 1, "1-based column of the position, counted in grapheme clusters")
	rootCmd.AddCommand(surroundCmd)
}
