// Bclass reports which named byte classes the bytes of its arguments
// belong to. With no arguments it reads bytes from standard input.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/grego/bset"
)

// classes holds the named classes in a stable display order.
var classes = []struct {
	name string
	set  bset.ByteSet
}{
	{"lowercase", bset.Lowercase},
	{"uppercase", bset.Uppercase},
	{"digit", bset.Digits},
	{"alphabetic", bset.Alphabetic},
	{"alphanumeric", bset.Alphanumeric},
	{"whitespace", bset.Whitespace},
	{"graphic", bset.Graphic},
	{"uri-reserved", bset.URIReserved},
}

func main() {
	app := &cli.App{
		Name:  "bclass",
		Usage: "show the byte classes of the given bytes",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "list",
				Usage: "list the known classes and their members",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("list") {
				for _, cl := range classes {
					fmt.Printf("%-14s %v\n", cl.name, cl.set)
				}
				return nil
			}
			if c.NArg() == 0 {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
				report(data)
				return nil
			}
			for _, arg := range c.Args().Slice() {
				report([]byte(arg))
			}
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func report(data []byte) {
	for _, b := range data {
		var names []string
		for _, cl := range classes {
			if cl.set.Contains(b) {
				names = append(names, cl.name)
			}
		}
		if len(names) == 0 {
			names = append(names, "-")
		}
		fmt.Printf("%q\t%s\n", b, strings.Join(names, " "))
	}
}
