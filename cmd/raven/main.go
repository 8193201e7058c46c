// Command raven is a minimal terminal front end driving the editor core:
// an interactive tcell screen when stdin/stdout are a TTY, otherwise a
// batch mode that loads a file's contents and echoes them back, since
// file I/O and ex-commands are outside the core's scope.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/kiahjh/raven/cmd/raven/internal/theme"
	"github.com/kiahjh/raven/internal/editor"
	"github.com/kiahjh/raven/internal/engine/cursor"
	"github.com/kiahjh/raven/internal/plugin"
)

func main() {
	indentUnit := flag.String("indent", "    ", "indent unit used by the >/< operators and auto-indent")
	pluginPath := flag.String("plugin", "", "path to a Lua script registering pre/post keystroke hooks")
	flag.Parse()

	ed := editor.New("", editor.WithIndentUnit(*indentUnit))

	var host *plugin.Host
	if *pluginPath != "" {
		host = plugin.NewHost()
		defer host.Close()
		src, err := os.ReadFile(*pluginPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "raven:", err)
			os.Exit(1)
		}
		if err := host.LoadScript(string(src)); err != nil {
			fmt.Fprintln(os.Stderr, "raven:", err)
			os.Exit(1)
		}
	}

	var src io.Reader = os.Stdin
	if path := flag.Arg(0); path != "" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "raven:", err)
			os.Exit(1)
		}
		defer f.Close()
		src = f
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		runBatch(ed, src)
		return
	}

	text, err := io.ReadAll(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "raven:", err)
		os.Exit(1)
	}
	ed.Load(string(text))

	if err := runInteractive(ed, host); err != nil {
		fmt.Fprintln(os.Stderr, "raven:", err)
		os.Exit(1)
	}
}

// runBatch loads src and writes the editor's (unmodified) snapshot back
// out, exercising Load/SnapshotText without a terminal.
func runBatch(ed *editor.Editor, src io.Reader) {
	text, err := io.ReadAll(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "raven:", err)
		os.Exit(1)
	}
	ed.Load(string(text))
	fmt.Print(ed.SnapshotText())
}

func runInteractive(ed *editor.Editor, host *plugin.Host) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	for {
		draw(screen, ed)
		ev := screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if quit := handleKey(ed, host, e); quit {
				return nil
			}
		}
	}
}

// handleKey translates one tcell key event into an editor.FeedKey call,
// returning true when the user asked to quit (Ctrl-C, since ex-commands
// like :q are out of scope). A loaded plugin's pre/post hooks registered
// under the action name "feed_key" run around every keystroke.
func handleKey(ed *editor.Editor, host *plugin.Host, e *tcell.EventKey) bool {
	if e.Key() == tcell.KeyCtrlC {
		return true
	}

	if host != nil {
		host.Before("feed_key")
		defer host.After("feed_key")
	}

	switch e.Key() {
	case tcell.KeyEscape:
		ed.FeedKey(editor.KeyEscape)
	case tcell.KeyEnter:
		ed.FeedKey(editor.KeyEnter)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ed.FeedKey(editor.KeyBackspace)
	case tcell.KeyRune:
		ed.FeedKey(e.Rune())
	}
	return false
}

func draw(screen tcell.Screen, ed *editor.Editor) {
	screen.Clear()
	width, height := screen.Size()

	for i := 0; i < ed.LineCount() && i < height-1; i++ {
		drawLine(screen, i, ed.Line(i), width)
	}

	drawStatusLine(screen, ed, height-1, width)

	cur := ed.Cursor()
	screen.ShowCursor(cur.Column, cur.Line)
	screen.Show()
}

func drawLine(screen tcell.Screen, row int, line string, width int) {
	col := 0
	for _, r := range line {
		if col >= width {
			return
		}
		screen.SetContent(col, row, r, nil, tcell.StyleDefault)
		col++
	}
}

func drawStatusLine(screen tcell.Screen, ed *editor.Editor, row, width int) {
	modeName := "normal"
	if ed.Mode() == cursor.ModeInsert {
		modeName = "insert"
	}
	if _, ok := ed.VisualRange(); ok {
		modeName = "visual"
	}

	bg := theme.StatusBarColor(theme.AccentForMode(modeName))
	style := tcell.StyleDefault.Background(bg).Foreground(theme.TextColor())

	info := ed.SearchInfo()
	status := fmt.Sprintf(" %s  %s", modeName, ed.PendingInput())
	if info.Pattern != "" {
		status += fmt.Sprintf("  /%s (%d/%d)", info.Pattern, info.Index+1, info.Total)
	}

	col := 0
	for _, r := range status {
		if col >= width {
			break
		}
		screen.SetContent(col, row, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		screen.SetContent(col, row, ' ', nil, style)
	}
}
