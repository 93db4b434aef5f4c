package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abiosoft/ishell"
)

type shellCmd struct {
	name, help, word string
	arg              int // 0 none, 1 optional, 2 required
}

var shellCmds = []shellCmd{
	{name: "forward", help: "forward", word: "F"},
	{name: "backward", help: "backward", word: "B"},
	{name: "stop", help: "stop", word: "S"},
	{name: "right", help: "right [multiplier]", word: "R", arg: 1},
	{name: "left", help: "left [multiplier]", word: "L", arg: 1},
	{name: "speed", help: "speed <1-100>", word: "V", arg: 2},
}

// line builds the wcode line for a shell command.
func (sc shellCmd) line(args []string) (string, error) {
	switch {
	case len(args) > 1, len(args) == 1 && sc.arg == 0:
		return "", fmt.Errorf("usage: %s", sc.help)
	case len(args) == 0 && sc.arg == 2:
		return "", fmt.Errorf("usage: %s", sc.help)
	case len(args) == 1:
		return sc.word + args[0], nil
	}
	return sc.word, nil
}

func printStatus(c *ishell.Context, d Drive) {
	data, err := json.Marshal(d.Status())
	if err != nil {
		c.Err(err)
		return
	}
	c.Println(string(data))
}

func newShell(ctx context.Context, d Drive) *ishell.Shell {
	shell := ishell.New()
	shell.Println("Wheelbase development shell")

	exec := func(c *ishell.Context, line string) {
		_, err := runText(ctx, d, line)
		if err != nil {
			c.Err(err)
			return
		}
		printStatus(c, d)
	}

	for _, sc := range shellCmds {
		sc := sc
		shell.AddCmd(&ishell.Cmd{
			Name: sc.name,
			Help: sc.help,
			Func: func(c *ishell.Context) {
				line, err := sc.line(c.Args)
				if err != nil {
					c.Err(err)
					return
				}
				exec(c, line)
			},
		})
	}

	shell.AddCmd(&ishell.Cmd{
		Name: "state",
		Help: "state",
		Func: func(c *ishell.Context) { printStatus(c, d) },
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "run",
		Help: "run <codes>",
		Func: func(c *ishell.Context) { exec(c, strings.Join(c.Args, " ")) },
	})

	return shell
}
