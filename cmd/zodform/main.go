// Command zodform generates React Hook Form components from zod schemas.
//
//	zodform init [-cwd dir] [-alias @/components/form]
//	zodform generate [-name form-name] [-schema Name] [-output dir] [-renderer shadcn] <file>
//	zodform inspect [-schema Name] [-format fields|ir|openapi] <file>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ilyichv/shadcn-zod-form/pkg/prompt"
	"github.com/ilyichv/shadcn-zod-form/pkg/schema"
)

const usage = `usage: zodform <command> [flags]

commands:
  init       record the forms alias in components.json
  generate   generate a form component from a schema file
  inspect    print the extracted schema, its fields or an OpenAPI export
`

// errUsage marks argument errors; the usage text has already been printed.
var errUsage = errors.New("invalid usage")

type app struct {
	stdout io.Writer
	stderr io.Writer
	driver prompt.Driver
	logger *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{stdout: os.Stdout, stderr: os.Stderr, driver: prompt.NewSurveyDriver()}
	if err := a.run(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "zodform: %v\n", err)
		}
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.stderr, usage)
		return errUsage
	}
	command, rest := args[0], args[1:]
	switch command {
	case "init":
		return a.initCommand(rest)
	case "generate":
		return a.generateCommand(ctx, rest)
	case "inspect":
		return a.inspectCommand(ctx, rest)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(a.stdout, usage)
		return nil
	}
	fmt.Fprintf(a.stderr, "unknown command %q\n\n%s", command, usage)
	return errUsage
}

// flagSet returns a FlagSet reporting to stderr with the shared -cwd and -v
// flags registered.
func (a *app) flagSet(name string) (*flag.FlagSet, *string, *bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	cwd := fs.String("cwd", ".", "project directory")
	verbose := fs.Bool("v", false, "enable debug logging")
	return fs, cwd, verbose
}

func (a *app) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return errUsage
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

func (a *app) configureLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
}

func (a *app) logWarning(w schema.Warning) {
	a.logger.Warn("schema warning", "code", string(w.Code), "detail", w.Detail)
}
