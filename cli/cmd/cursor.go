package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nolman/fragment"
)

var cursorCmd = &cobra.Command{
	Use:   "cursor [fragment]",
	Short: "Classify what is being typed at the end of a fragment",
	RunE: func(cmd *cobra.Command, args []string) error {
		frag, err := readFragment(args)
		if err != nil {
			return err
		}
		return emit(fragment.CursorContext(frag))
	},
}

func init() {
	rootCmd.AddCommand(cursorCmd)
}

// readFragment takes the fragment from the single argument, or from stdin
// so shells can pipe the current input line in.
func readFragment(args []string) (string, error) {
	switch len(args) {
	case 0:
		buf, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(buf), nil
	case 1:
		return args[0], nil
	default:
		return "", errors.New("expected at most one fragment argument")
	}
}
