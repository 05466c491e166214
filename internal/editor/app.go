package editor

import (
	"io"
	"log"
	"os"

	"github.com/JackWReid/kite/internal/config"
	"github.com/JackWReid/kite/internal/storage"
	"github.com/JackWReid/kite/internal/terminal"
)

const helpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"

// Terminal dimensions assumed until the real terminal is measured.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// wheelStep is how many rows one mouse wheel notch moves the cursor.
const wheelStep = 3

// FindHook is the extension point for interactive search. kite ships
// without a search implementation; embedders may install one on App.Find.
type FindHook func(ed *Editor)

// App is the top-level editor state: the editing core plus the file it is
// bound to and the modal input state machine around it.
type App struct {
	ed       *Editor
	filename string
	pending  string // Filename awaiting a y/n answer

	renderer *Renderer
	status   *StatusBar
	mode     Mode
	cfg      config.Config
	logger   *log.Logger
	out      io.Writer

	quitTimes int
	quit      bool

	Find FindHook
}

// NewApp creates an editor for filename (which may be empty). A nil logger
// discards log output.
func NewApp(filename string, cfg config.Config, logger *log.Logger, version string) *App {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	a := &App{
		ed:        New(defaultHeight-2, defaultWidth, cfg.TabStop),
		filename:  filename,
		renderer:  NewRenderer(version),
		status:    NewStatusBar(cfg.MessageTimeout),
		mode:      ModeNormal,
		cfg:       cfg,
		logger:    logger,
		out:       os.Stdout,
		quitTimes: cfg.QuitTimes,
	}
	return a
}

// Editor returns the editing core.
func (a *App) Editor() *Editor { return a.ed }

// Filename returns the file the document is bound to, or "".
func (a *App) Filename() string { return a.filename }

// Mode returns the current input mode.
func (a *App) Mode() Mode { return a.mode }

// screen is the part of terminal.Terminal the main loop drives.
type screen interface {
	Width() int
	Height() int
	Resize() bool
	SigwinchChan() <-chan os.Signal
	ReadEvent() (terminal.InputEvent, bool, error)
	Buffered() int
}

// Run takes over the terminal and edits until the user quits.
func (a *App) Run() error {
	t, err := terminal.NewTerminal()
	if err != nil {
		return err
	}
	defer t.Restore()

	a.out = t.Writer()
	a.resize(t.Width(), t.Height())

	if err := a.open(a.filename); err != nil {
		return err
	}
	if a.mode == ModeNormal {
		a.status.SetMessage(helpMessage)
	}

	err = a.loop(t)
	a.logger.Printf("quit %q", a.filename)
	return err
}

// loop handles one event at a time until quit. ReadEvent returns empty-handed
// after a short timeout, so a resize is picked up without waiting for a key.
// Events already decoded from one read are handled before the next redraw.
func (a *App) loop(s screen) error {
	a.render()
	for !a.quit {
		select {
		case <-s.SigwinchChan():
			if s.Resize() {
				a.resize(s.Width(), s.Height())
			}
			a.render()
		default:
		}

		event, ok, err := s.ReadEvent()
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		a.handleInput(event)
		if !a.quit && s.Buffered() == 0 {
			a.render()
		}
	}
	return nil
}

// resize fits the text area to a terminal of width x height, leaving two
// rows for the status and message bars.
func (a *App) resize(width, height int) {
	a.ed.View.Resize(height-2, width)
}

// open loads filename into the document. A missing file switches to the
// create confirmation instead of failing.
func (a *App) open(filename string) error {
	if filename == "" {
		return nil
	}
	lines, err := storage.ReadLines(filename)
	if err != nil {
		if storage.IsNotExist(err) {
			a.pending = filename
			a.filename = ""
			a.setMode(ModeConfirmCreate)
			a.status.SetMessage("File '%s' does not exist. Create it? (y/n)", filename)
			return nil
		}
		a.logger.Printf("open failed: %v", err)
		return err
	}
	a.ed.Open(lines)
	a.filename = filename
	a.logger.Printf("opened %q (%d lines)", filename, len(lines))
	return nil
}

// save writes the document to its file, prompting for a name first when it
// has none.
func (a *App) save() {
	if a.filename == "" {
		a.status.StartPrompt("Save as: ")
		a.setMode(ModePromptFilename)
		return
	}
	a.writeFile(a.filename)
}

func (a *App) writeFile(filename string) {
	data, length := a.ed.Serialize()
	n, err := storage.WriteFile(filename, data)
	if err != nil {
		a.logger.Printf("save failed: %v", err)
		a.status.SetMessage("Can't save! I/O error: %v", err)
		return
	}
	if n != length {
		a.logger.Printf("short write to %q: %d of %d bytes", filename, n, length)
	}
	a.ed.Doc.MarkSaved()
	a.logger.Printf("saved %q (%d bytes)", filename, n)
	a.status.SetMessage("%d bytes written to disk", n)
}

func (a *App) handleInput(event terminal.InputEvent) {
	if event.Type == terminal.EventMouse {
		if a.mode == ModeNormal {
			a.handleMouse(event.Mouse)
		}
		return
	}
	modeHandlers[a.mode](a, event.Key)
}

func (a *App) handleMouse(mouse terminal.MouseEvent) {
	if !mouse.Press {
		return
	}
	switch mouse.Button {
	case terminal.MouseLeft:
		a.ed.ClickAt(mouse.Row-1, mouse.Col-1)
	case terminal.MouseWheelUp:
		for i := 0; i < wheelStep; i++ {
			a.ed.MoveCursor(DirUp)
		}
	case terminal.MouseWheelDown:
		for i := 0; i < wheelStep; i++ {
			a.ed.MoveCursor(DirDown)
		}
	}
}

func (a *App) find() {
	if a.Find == nil {
		a.status.SetMessage("Search is not available")
		return
	}
	a.Find(a.ed)
}

// requestQuit quits, unless the document is dirty and the user has not yet
// pressed the quit key enough times in a row.
func (a *App) requestQuit() {
	if a.ed.Doc.Dirty() && a.quitTimes > 0 {
		a.status.SetMessage("WARNING!!! File has unsaved changes. "+
			"Press Ctrl-Q or Ctrl-X %d more times to quit.", a.quitTimes)
		a.quitTimes--
		return
	}
	a.quit = true
}

func (a *App) render() {
	a.ed.Scroll()
	frame := a.renderer.RenderFrame(a.ed, a.status, a.filename)
	if _, err := io.WriteString(a.out, frame); err != nil {
		a.logger.Printf("render: %v", err)
	}
}
