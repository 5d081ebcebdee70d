package driver

import (
	"fmt"
	"io"
	"os"
	"strings"

	"tmplgen/internal/plan"
	"tmplgen/pkg/codegen"
	"tmplgen/pkg/codegen/backend"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/muesli/termenv"
)

// Driver holds the command-line options of a single plan run.
type Driver struct {
	Help         bool   // Show help message
	Verbose      bool   // Enable verbose output
	NoColor      bool   // Disable colored output
	ListBackends bool   // Print the available backends and exit
	Backend      string // Backend name, overrides the plan (e.g., "js-concat")
	IndentWidth  int    // Spaces per indent unit, overrides the plan
	PlanFile     string // Path to the generation plan
	OutputFile   string // Path to the output file, stdout when empty

	Stdout io.Writer // defaults to os.Stdout
}

func (d *Driver) stdout() io.Writer {
	if d.Stdout == nil {
		return os.Stdout
	}
	return d.Stdout
}

func (d *Driver) heading(text string) string {
	profile := termenv.ANSI
	if d.NoColor {
		profile = termenv.Ascii
	}
	return termenv.String(text).Foreground(profile.Color("2")).Bold().String()
}

// Run loads the plan, replays it with the selected backend and emits the generated code.
func (d *Driver) Run() error {
	out := d.stdout()

	if d.ListBackends {
		fmt.Fprintln(out, strings.Join(backend.Names(), "\n"))
		return nil
	}

	log.Info("Processing plan", "file", d.PlanFile)

	p, err := plan.Load(d.PlanFile)
	if err != nil {
		return err
	}

	name := p.Backend
	if d.Backend != "" {
		name = d.Backend
	}
	if name == "" {
		return errors.WithHint(errors.New("no backend selected"), "set backend in the plan or pass -b")
	}
	b, err := backend.Lookup(name)
	if err != nil {
		return err
	}

	width := p.IndentWidth
	if d.IndentWidth > 0 {
		width = d.IndentWidth
	}

	log.Debug("Generating", "backend", name, "indent", width, "steps", len(p.Steps))

	a := codegen.NewAssembler(b,
		codegen.WithIndentWidth(width),
		codegen.WithLogger(log.Default().WithPrefix("codegen")))
	if err := p.Run(a); err != nil {
		return errors.Wrap(err, "generation failed")
	}
	if depth := a.IndentDepth(); depth != 0 {
		log.Warn("Plan left indentation unbalanced", "depth", depth)
	}

	code := a.Code()

	if d.OutputFile == "" {
		if d.Verbose {
			fmt.Fprintln(out, d.heading(fmt.Sprintf("=== Generated code (%s) ===", name)))
		}
		fmt.Fprintln(out, code)
		return nil
	}

	if err := os.WriteFile(d.OutputFile, []byte(code+"\n"), 0644); err != nil {
		return errors.Wrapf(err, "write %s", d.OutputFile)
	}
	log.Info("Wrote generated code", "file", d.OutputFile, "lines", len(a.Lines()))
	return nil
}
