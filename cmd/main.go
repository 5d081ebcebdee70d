package main

import (
	"flag"
	"fmt"
	"os"

	"tmplgen/internal/driver"
	"tmplgen/internal/logger"

	"github.com/charmbracelet/log"
)

// Main entry point for the tmplgen plan runner.
func main() {
	options := driver.Driver{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.BoolVar(&options.ListBackends, "l", false, "List available backends")
	flag.StringVar(&options.Backend, "b", "", "Backend (e.g., js-concat, js-stringbuilder, python); overrides the plan")
	flag.IntVar(&options.IndentWidth, "w", 0, "Spaces per indent unit; overrides the plan")
	flag.StringVar(&options.OutputFile, "o", "", "Output file (default stdout)")

	flag.Parse()
	args := flag.Args()

	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] <plan.yaml>\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if len(args) == 0 && !options.ListBackends {
		log.Fatal("No plan file provided", "help", fmt.Sprintf("%s -h", os.Args[0]))
	}
	if len(args) > 0 {
		options.PlanFile = args[0]
	}

	if err := options.Run(); err != nil {
		log.Fatal("Generation failed", "error", err)
	}
}
