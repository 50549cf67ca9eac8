// Command stepflow is a line-oriented shell over the stepflow
// packages: graph editing by mnemonic, text-format load and save, and
// stepwise max-flow runs.
//
// Usage:
//
//	stepflow [-f path] [-v]
//
// Commands are read from stdin one per line; type "help" for the
// table. Results and errors print to stdout, diagnostics to stderr.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/stepflow/flow"
	"github.com/katalvlaran/stepflow/graphtext"
)

// Usage errors of the shell's own commands. Graph and flow errors
// surface from their packages verbatim.
var (
	errUsageMF    = errors.New("usage: mf <source> <sink>")
	errUsageRun   = errors.New("usage: run <source> <sink>")
	errUsagePath  = errors.New("usage: pp")
	errUsagePrint = errors.New("usage: p")

	// errQuit unwinds the loop on q.
	errQuit = errors.New("quit")
)

const helpText = `commands:
  n   <directed|undirected> <weighted|unweighted> [int|float]  new graph
  +v  <id> [label]      add a vertex
  -v  <id>              remove a vertex
  +e  <from> <to> [w]   add an edge
  -e  <from> <to>       remove an edge
  lf  <path>            load a graph file
  sf  <path>            save the graph to a file
  p                     print the graph
  mf  <source> <sink>   advance max-flow by one step
  run <source> <sink>   advance max-flow until it finishes
  pp                    print the last augmenting path's arc deltas
  help                  this text
  q                     quit
`

func main() {
	file := flag.String("f", "", "graph file to load before reading commands")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := newLogger(os.Stderr, level)

	sh := &shell{sess: graphtext.NewSession(), out: os.Stdout, log: logger}
	if *file != "" {
		if err := sh.sess.Load(*file); err != nil {
			logger.Error("preload failed", "path", *file, "err", err)
			os.Exit(1)
		}
		logger.Info("graph loaded", "path", *file)
	}

	if err := sh.loop(os.Stdin); err != nil {
		logger.Error("input read failed", "err", err)
		os.Exit(1)
	}
}

// newLogger builds the stderr text logger, trimming source paths to
// their base names.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok && source != nil {
					source.File = filepath.Base(source.File)
				}
			}
			return a
		},
	}))
}

// shell threads the editing session and the held flow state through
// the command loop.
type shell struct {
	sess *graphtext.Session
	st   flow.State
	out  io.Writer
	log  *slog.Logger
}

// loop reads commands line by line until q or EOF. Blank lines are
// skipped; command errors print and the loop continues.
func (sh *shell) loop(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		err := sh.exec(fields[0], fields[1:])
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(sh.out, err)
		}
	}

	return sc.Err()
}

// exec dispatches one command. The flow commands live here; everything
// else is a graph mnemonic and goes to the session.
func (sh *shell) exec(cmd string, args []string) error {
	sh.log.Debug("command", "cmd", cmd, "args", args)

	switch cmd {
	case "q":
		return errQuit
	case "help":
		fmt.Fprint(sh.out, helpText)

		return nil
	case "p":
		if len(args) != 0 {
			return errUsagePrint
		}

		return graphtext.Encode(sh.out, sh.sess.Graph())
	case "mf":
		return sh.stepFlow(args)
	case "run":
		return sh.runFlow(args)
	case "pp":
		return sh.printPath(args)
	default:
		return sh.sess.Apply(cmd, args...)
	}
}

// stepFlow advances the held machine by one transition and reports the
// phase it landed in. A failed start leaves the machine reset.
func (sh *shell) stepFlow(args []string) error {
	if len(args) != 2 {
		return errUsageMF
	}
	st, err := flow.Step(sh.st, sh.sess.Graph(), args[0], args[1])
	if err != nil {
		sh.st = flow.State{}

		return err
	}
	sh.st = st
	sh.report()

	return nil
}

// runFlow steps the held machine until it finishes or resets, then
// reports once. A source equal to the sink never finishes, so the loop
// stops once the total saturates.
func (sh *shell) runFlow(args []string) error {
	if len(args) != 2 {
		return errUsageRun
	}
	for {
		st, err := flow.Step(sh.st, sh.sess.Graph(), args[0], args[1])
		if err != nil {
			sh.st = flow.State{}

			return err
		}
		sh.st = st
		if st.Status != flow.Running {
			break
		}
		if st.Data.Source == st.Data.Sink && st.Data.TotalFlow.IsInf() {
			sh.log.Debug("run saturated", "source", st.Data.Source)
			break
		}
	}
	sh.report()

	return nil
}

// report prints the line the current phase warrants.
func (sh *shell) report() {
	switch sh.st.Status {
	case flow.Running:
		fmt.Fprintf(sh.out, "flow through augmenting path: %s\n", sh.st.Data.LastFlow)
	case flow.Finished:
		fmt.Fprintf(sh.out, "maximum flow: %s\n", sh.st.Data.TotalFlow)
	default:
		fmt.Fprintln(sh.out, "not started")
	}
}

// printPath lists the last augmenting path's arc deltas in ascending
// (from, to) order, one "<from> <to> <delta>" line each. No machine or
// no path prints nothing.
func (sh *shell) printPath(args []string) error {
	if len(args) != 0 {
		return errUsagePath
	}
	if sh.st.Data == nil {
		return nil
	}
	arcs := make([]flow.Arc, 0, len(sh.st.Data.Path))
	for a := range sh.st.Data.Path {
		arcs = append(arcs, a)
	}
	sort.Slice(arcs, func(i, j int) bool {
		if arcs[i].From != arcs[j].From {
			return arcs[i].From < arcs[j].From
		}

		return arcs[i].To < arcs[j].To
	})
	for _, a := range arcs {
		fmt.Fprintf(sh.out, "%s %s %s\n", a.From, a.To, sh.st.Data.Path[a])
	}

	return nil
}
