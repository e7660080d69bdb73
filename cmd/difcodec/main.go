// Command difcodec inspects and verifies interior path follower files.
//
// Usage:
//
//	difcodec [--config FILE] [--log-level LEVEL] [--json] <command> FILE
//
// Exit codes: 0 on success, 1 when a file fails to load or verify, 2 on
// usage errors.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:    "difcodec",
		Usage:   "Inspect and verify binary interior records",
		Version: version,
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			inspectCommand(),
			verifyCommand(),
			versionCommand(),
		},
		// exit codes are resolved in main
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func main() {
	err := newApp().Run(os.Args)
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, err)
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		os.Exit(ec.ExitCode())
	}
	os.Exit(1)
}
