package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/5w1tchy/password-checker/internal/security/password"
)

type GenerateCommand struct {
	Count int `short:"n" long:"count" description:"Number of passwords to print" default:"1" value-name:"COUNT"`

	Generator interface{ Generate() (string, error) } `no-flag:"true"`
	Out       io.Writer                               `no-flag:"true"`
}

func (c *GenerateCommand) Execute(args []string) error {
	if c.Count < 1 {
		return errors.New("--count must be at least 1")
	}
	gen := c.Generator
	if gen == nil {
		gen = password.Generator{}
	}
	out := c.Out
	if out == nil {
		out = os.Stdout
	}

	for i := 0; i < c.Count; i++ {
		pwd, err := gen.Generate()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, pwd); err != nil {
			return err
		}
	}
	return nil
}
