package main

import (
	"flag"
	"fmt"

	"github.com/efficio-cad/efficio/internal/catalog"
)

func handleObjects(args []string) {
	fs := flag.NewFlagSet("objects", flag.ExitOnError)
	fs.Parse(args)

	for _, e := range catalog.All() {
		fmt.Printf("%s\n    %s\n", e.Name, e.Description)
		for _, p := range e.Params {
			fmt.Printf("    -param %-14s default %-12s %s\n", p.Name, p.Default, p.Description)
		}
		fmt.Println()
	}
}
