package completion_helper

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"
)

// FlagComplete prints every flag of the command being completed, so flags are
// offered even where the default urfave/cli completion only lists commands.
func FlagComplete(w io.Writer) func(context.Context, *cli.Command) {
	return func(_ context.Context, cmd *cli.Command) {
		for _, f := range cmd.Flags {
			for _, name := range f.Names() {
				if len(name) == 1 {
					_, _ = fmt.Fprintln(w, "-"+name)
				} else {
					_, _ = fmt.Fprintln(w, "--"+name)
				}
			}
		}
	}
}
