package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/diffnav"
	"github.com/fwojciec/diffnav/bubbletea"
	"github.com/fwojciec/diffnav/chroma"
	"github.com/fwojciec/diffnav/fs"
	"github.com/fwojciec/diffnav/git"
	"github.com/fwojciec/diffnav/gitdiff"
	"github.com/fwojciec/diffnav/gogit"
	"github.com/fwojciec/diffnav/jsonl"
	"github.com/fwojciec/diffnav/lipgloss"
)

// ErrEmptyHistory is returned when -last is used with no recorded sessions.
var ErrEmptyHistory = errors.New("no previous diff to reopen")

// repo provides the git repository facts the app needs at startup.
type repo interface {
	Root(ctx context.Context, dir string) (string, error)
	CurrentBranch(ctx context.Context, root string) (string, error)
}

// ui runs the interactive viewer.
type ui interface {
	Run(ctx context.Context) error
}

// App encapsulates the application logic for testing.
type App struct {
	Dir      string
	Revision string
	Path     string
	Staged   bool
	Locate   int // 1-based diff buffer line; 0 means interactive mode
	Side     string
	Last     bool

	Stdout      io.Writer
	Git         repo
	Ctrl        *diffnav.View
	Viewer      ui
	History     diffnav.HistoryStore
	HistoryPath string
}

// Run opens the requested diff buffer and either prints the location a
// buffer line maps to (headless mode) or starts the interactive viewer.
func (a *App) Run(ctx context.Context) error {
	root, err := a.Git.Root(ctx, a.Dir)
	if err != nil {
		return err
	}

	revision, path, staged := a.Revision, a.Path, a.Staged
	if a.Last {
		root, revision, path, staged, err = a.lastSession()
		if err != nil {
			return err
		}
	}
	if path == "" {
		// The buffer name needs a pathspec fragment; "." diffs the
		// whole tree.
		path = "."
	}

	id, err := a.Ctrl.Open(ctx, root, revision, staged, nil, path)
	if err != nil {
		return err
	}

	// The diff request and the branch lookup are independent git
	// invocations, so issue them together.
	g, gctx := errgroup.WithContext(ctx)
	var branch string
	g.Go(func() error {
		var err error
		branch, err = a.Git.CurrentBranch(gctx, root)
		return err
	})
	var text string
	if a.Locate > 0 {
		g.Go(func() error {
			var err error
			text, _, err = a.Ctrl.Render(gctx, id)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	entry := diffnav.HistoryEntry{Identifier: id, Branch: branch, OpenedAt: time.Now()}
	if err := a.History.Append(a.HistoryPath, entry); err != nil {
		return err
	}

	if a.Locate > 0 {
		return a.printLocation(text)
	}
	return a.Viewer.Run(ctx)
}

// lastSession recovers the open parameters of the most recent history
// entry from its serialized buffer name.
func (a *App) lastSession() (root, revision, path string, staged bool, err error) {
	entries, err := a.History.Load(a.HistoryPath)
	if err != nil {
		return "", "", "", false, err
	}
	if len(entries) == 0 {
		return "", "", "", false, ErrEmptyHistory
	}
	name, err := diffnav.ParseBufferName(entries[len(entries)-1].Identifier)
	if err != nil {
		return "", "", "", false, err
	}
	return name.Root, name.Revision(), name.Fragment, name.Staged(), nil
}

func (a *App) printLocation(text string) error {
	var side diffnav.Side
	switch a.Side {
	case "old":
		side = diffnav.SideOld
	case "", "new":
		side = diffnav.SideNew
	default:
		return fmt.Errorf("unknown side %q: want old or new", a.Side)
	}

	loc, ok := diffnav.Locate(text, a.Locate-1, side)
	if !ok {
		return fmt.Errorf("diff line %d does not map to a file line on the %s side", a.Locate, sideName(side))
	}
	_, err := fmt.Fprintf(a.Stdout, "%s:%d\n", loc.Path, loc.Line)
	return err
}

func sideName(side diffnav.Side) string {
	if side == diffnav.SideOld {
		return "old"
	}
	return "new"
}

func main() {
	staged := flag.Bool("staged", false, "diff the index against HEAD")
	locate := flag.Int("locate", 0, "print the file location for the given diff buffer line and exit")
	side := flag.String("side", "new", "side -locate maps to: old or new")
	last := flag.Bool("last", false, "reopen the most recently opened diff")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: diffnav [flags] [revision] [path]")
		flag.PrintDefaults()
	}
	flag.Parse()

	var revision, path string
	switch args := flag.Args(); len(args) {
	case 0:
	case 1:
		revision = args[0]
	case 2:
		revision, path = args[0], args[1]
	default:
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	theme := lipgloss.DefaultTheme()
	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(theme.Palette()))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	viewer := bubbletea.NewViewer(theme, chroma.NewDetector(), tokenizer)

	runner := git.NewRunner()
	ctrl := &diffnav.View{
		Runner: runner,
		Source: gogit.NewSource(),
		Parser: gitdiff.NewParser(),
		Editor: viewer.Editor(),
	}
	viewer.SetController(ctrl)

	app := &App{
		Dir:         dir,
		Revision:    revision,
		Path:        path,
		Staged:      *staged,
		Locate:      *locate,
		Side:        *side,
		Last:        *last,
		Stdout:      os.Stdout,
		Git:         runner,
		Ctrl:        ctrl,
		Viewer:      viewer,
		History:     jsonl.NewHistory(),
		HistoryPath: fs.HistoryPath(),
	}

	if err := app.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
