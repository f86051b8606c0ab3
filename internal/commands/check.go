package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/5w1tchy/password-checker/internal/strength"
)

type CheckCommand struct {
	JSON    bool `long:"json" description:"Print the result as JSON"`
	NoColor bool `long:"no-color" description:"Disable colored output"`

	Args struct {
		Password string `positional-arg-name:"PASSWORD"`
	} `positional-args:"yes"`

	In  io.Reader `no-flag:"true"`
	Out io.Writer `no-flag:"true"`
}

func (c *CheckCommand) Execute(args []string) error {
	in, out := c.In, c.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	pwd := c.Args.Password
	if pwd == "" {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("read password: %w", err)
		}
		pwd = strings.TrimRight(line, "\r\n")
	}

	res := strength.Evaluate(pwd)
	if c.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	return c.print(out, res)
}

func (c *CheckCommand) print(w io.Writer, res strength.Result) error {
	label := res.Strength
	if !c.NoColor {
		label = paint(label, res.Color)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Strength: %s (%d/%d)\n", label, res.Score, strength.MaxScore)
	fmt.Fprintf(&b, "Entropy:  %.1f bits\n", res.Entropy)
	fmt.Fprintf(&b, "Length:   %d\n", res.Length)
	b.WriteString("Feedback:\n")
	for _, f := range res.Feedback {
		fmt.Fprintf(&b, "  - %s\n", f)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
