package debug

import (
	"fmt"
	"io"
	"os"
)

var (
	Enabled = false

	// Output receives debug lines. Stderr keeps them out of the generated message.
	Output io.Writer = os.Stderr
)

const prefix = "[DEBUG] "

func Printf(format string, args ...interface{}) {
	if Enabled {
		fmt.Fprintf(Output, prefix+format, args...)
	}
}

func Println(args ...interface{}) {
	if Enabled {
		fmt.Fprint(Output, prefix)
		fmt.Fprintln(Output, args...)
	}
}
