package main

import (
	"errors"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/5w1tchy/password-checker/internal/commands"
)

func main() {
	parser := flags.NewParser(&commands.PassCheck, flags.HelpFlag|flags.PrintErrors|flags.PassDoubleDash)

	_, err := parser.Parse()
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
