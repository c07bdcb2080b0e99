// Command textedit-demo is a small terminal program exercising
// internal/textedit end to end: a single-line or multi-line field
// edited interactively through internal/termhost, or driven headlessly
// by an internal/macro Lua script when stdin is not a terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/dshills/stbtextedit/internal/macro"
	"github.com/dshills/stbtextedit/internal/persist"
	"github.com/dshills/stbtextedit/internal/termhost"
	"github.com/dshills/stbtextedit/internal/textedit"
)

func main() {
	os.Exit(run())
}

type options struct {
	singleLine  bool
	macroPath   string
	snapshot    string
	seedText    string
	undoRecords int
	undoChars   int
}

func run() int {
	opts := parseFlags()

	if opts.macroPath != "" || !term.IsTerminal(int(os.Stdin.Fd())) {
		if err := runHeadless(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := runInteractive(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.BoolVar(&opts.singleLine, "single-line", false, "edit a single-line field instead of multi-line")
	flag.StringVar(&opts.macroPath, "macro", "", "run a Lua macro script headlessly instead of opening the terminal UI")
	flag.StringVar(&opts.snapshot, "snapshot", "", "path to a persist.Save JSON snapshot to load at start and save on quit")
	flag.StringVar(&opts.seedText, "text", "", "initial field text, used when -snapshot is unset or missing")
	flag.IntVar(&opts.undoRecords, "undo-records", textedit.DefaultUndoRecordCapacity, "undo record capacity")
	flag.IntVar(&opts.undoChars, "undo-chars", textedit.DefaultUndoCharCapacity, "undo character capacity")
	flag.BoolVar(&showVersion, "version", false, "print version information and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "textedit-demo - terminal driver for the textedit engine\n\n")
		fmt.Fprintf(os.Stderr, "Usage: textedit-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  textedit-demo                       Open an interactive multi-line field\n")
		fmt.Fprintf(os.Stderr, "  textedit-demo -single-line          Open a single-line field\n")
		fmt.Fprintf(os.Stderr, "  textedit-demo -macro script.lua     Run a macro headlessly and print the result\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Println("textedit-demo dev")
		os.Exit(0)
	}

	return opts
}

// runHeadless loads (or seeds) a field and EditorState, runs a macro
// script against them if one was given, and prints the resulting text.
// It is the path exercised when stdin isn't a terminal (piped input,
// CI) as well as the explicit -macro mode.
func runHeadless(opts options) error {
	field, state, err := loadOrSeed(opts)
	if err != nil {
		return err
	}

	if opts.macroPath != "" {
		script, err := os.ReadFile(opts.macroPath)
		if err != nil {
			return fmt.Errorf("reading macro %s: %w", opts.macroPath, err)
		}
		runner := macro.NewRunner(macro.Target{Host: field, State: state})
		defer runner.Close()
		if err := runner.Run(string(script)); err != nil {
			return fmt.Errorf("running macro %s: %w", opts.macroPath, err)
		}
	}

	fmt.Println(field.String())

	if opts.snapshot != "" {
		return saveSnapshot(opts.snapshot, field, state)
	}
	return nil
}

// runInteractive opens a tcell screen and drives a termhost.Widget from
// keyboard and mouse events until Ctrl+Q or Escape.
func runInteractive(opts options) error {
	field, state, err := loadOrSeed(opts)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal screen: %w", err)
	}
	screen.EnableMouse()
	screen.EnablePaste()
	defer screen.Fini()

	widget := termhost.NewWidget(screen, field, opts.singleLine,
		textedit.WithUndoRecordCapacity(opts.undoRecords),
		textedit.WithUndoCharCapacity(opts.undoChars))
	*widget.State() = *state
	width, height := screen.Size()
	widget.SetBounds(0, 0, width, height)

	for {
		screen.Clear()
		widget.Draw()
		screen.Show()

		ev := screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventResize:
			width, height = screen.Size()
			widget.SetBounds(0, 0, width, height)
			screen.Sync()
		case *tcell.EventKey:
			if quitKey(e) {
				if opts.snapshot != "" {
					return saveSnapshot(opts.snapshot, field, widget.State())
				}
				return nil
			}
			widget.HandleEvent(e)
		default:
			widget.HandleEvent(ev)
		}
	}
}

func quitKey(e *tcell.EventKey) bool {
	return e.Key() == tcell.KeyCtrlQ || e.Key() == tcell.KeyEscape
}

func loadOrSeed(opts options) (*termhost.Field, *textedit.EditorState, error) {
	if opts.snapshot != "" {
		if data, err := os.ReadFile(opts.snapshot); err == nil {
			text, state, err := persist.Load(string(data),
				textedit.WithUndoRecordCapacity(opts.undoRecords),
				textedit.WithUndoCharCapacity(opts.undoChars))
			if err != nil && !errors.Is(err, persist.ErrMalformedSnapshot) {
				return nil, nil, fmt.Errorf("loading snapshot %s: %w", opts.snapshot, err)
			}
			if err == nil {
				return termhost.NewField(text), &state, nil
			}
		}
	}

	field := termhost.NewField(opts.seedText)
	var state textedit.EditorState
	textedit.Initialize(&state, opts.singleLine,
		textedit.WithUndoRecordCapacity(opts.undoRecords),
		textedit.WithUndoCharCapacity(opts.undoChars))
	return field, &state, nil
}

func saveSnapshot(path string, field *termhost.Field, state *textedit.EditorState) error {
	data, err := persist.Save(field.String(), state)
	if err != nil {
		return fmt.Errorf("building snapshot: %w", err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return nil
}
