// Command efficio builds parametric printable parts from the object
// catalog and exports them as STL meshes or technical drawings.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/efficio-cad/efficio/internal/version"
)

// defaultDBFile is the build history database created in the working
// directory unless -db points elsewhere.
const defaultDBFile = "efficio.db"

func main() {
	flag.Usage = printUsage
	flag.Parse()

	// Help is the default: a bare invocation explains itself and
	// exits cleanly.
	if flag.NArg() < 1 {
		printUsage()
		return
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "build":
		handleBuild(args)
	case "objects":
		handleObjects(args)
	case "history":
		handleHistory(args)
	case "report":
		handleReport(args)
	case "migrate":
		handleMigrate(args)
	case "version":
		fmt.Println(version.String())
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`efficio - parametric CAD for printable parts

Usage: efficio <command> [options]

Commands:
  build      Build a catalog object and export STL, PNG or SVG output
  objects    List the object catalog with parameters and defaults
  history    Show recent builds from the history database
  report     Write an HTML chart report of the build history
  migrate    Manage the history database schema
  version    Show the efficio version
  help       Show this help message

Examples:
  # List everything the catalog can build
  efficio objects

  # Mesh a trapezoidal gear for printing
  efficio build -object gear -param teeth=12 -param profile=trapezoidal -stl gear.stl

  # Draw the four standard views on one sheet
  efficio build -object rounded-box -param width=2in -composite box.png

  # A single dimensioned view, in inches
  efficio build -object m3-bolt-assembly -param length=16mm -svg bolt.svg -view left

Run 'efficio <command> -h' for the options of each command.`)
}
