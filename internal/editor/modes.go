package editor

import (
	"github.com/JackWReid/kite/internal/storage"
	"github.com/JackWReid/kite/internal/terminal"
)

// Mode is a state of the input state machine. Each mode has its own key
// handler in modeHandlers.
type Mode int

const (
	ModeNormal           Mode = iota // Editing the document
	ModePromptFilename               // "Save as: " prompt
	ModeConfirmOverwrite             // Save target exists, waiting for y/n
	ModeConfirmCreate                // Opened file missing, waiting for y/n
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModePromptFilename:
		return "prompt-filename"
	case ModeConfirmOverwrite:
		return "confirm-overwrite"
	case ModeConfirmCreate:
		return "confirm-create"
	}
	return "unknown"
}

var modeHandlers = map[Mode]func(*App, terminal.Key){
	ModeNormal:           (*App).handleNormalKey,
	ModePromptFilename:   (*App).handleFilenameKey,
	ModeConfirmOverwrite: (*App).handleOverwriteKey,
	ModeConfirmCreate:    (*App).handleCreateKey,
}

func (a *App) setMode(m Mode) {
	a.mode = m
}

func (a *App) handleNormalKey(key terminal.Key) {
	ed := a.ed
	switch key.Type {
	case terminal.KeyEnter:
		ed.InsertNewline()
	case terminal.KeyCtrlQ, terminal.KeyCtrlX:
		a.requestQuit()
		return
	case terminal.KeyCtrlS:
		a.save()
	case terminal.KeyCtrlF:
		a.find()
	case terminal.KeyHome:
		ed.Home()
	case terminal.KeyEnd:
		ed.End()
	case terminal.KeyBackspace:
		ed.DeleteChar()
	case terminal.KeyDelete:
		ed.DeleteForward()
	case terminal.KeyPgUp:
		ed.PageUp()
	case terminal.KeyPgDn:
		ed.PageDown()
	case terminal.KeyUp:
		ed.MoveCursor(DirUp)
	case terminal.KeyDown:
		ed.MoveCursor(DirDown)
	case terminal.KeyLeft:
		ed.MoveCursor(DirLeft)
	case terminal.KeyRight:
		ed.MoveCursor(DirRight)
	case terminal.KeyRune:
		ed.InsertChar(key.Rune)
	case terminal.KeyCtrlL, terminal.KeyEscape, terminal.KeyUnknown:
	}
	a.quitTimes = a.cfg.QuitTimes
}

func (a *App) handleFilenameKey(key terminal.Key) {
	text, done, cancelled := a.status.HandlePromptKey(key)
	switch {
	case cancelled:
		a.setMode(ModeNormal)
		a.status.SetMessage("Save aborted")
	case done:
		if storage.Exists(text) {
			a.pending = text
			a.setMode(ModeConfirmOverwrite)
			a.status.SetMessage("File '%s' exists. Overwrite? (y/n)", text)
			return
		}
		a.setMode(ModeNormal)
		a.filename = text
		a.writeFile(text)
	}
}

func (a *App) handleOverwriteKey(key terminal.Key) {
	name := a.pending
	a.pending = ""
	a.setMode(ModeNormal)
	if !isYes(key) {
		a.status.SetMessage("Save aborted")
		return
	}
	a.filename = name
	a.writeFile(name)
}

func (a *App) handleCreateKey(key terminal.Key) {
	name := a.pending
	a.pending = ""
	a.setMode(ModeNormal)
	if !isYes(key) {
		a.status.SetMessage("Open aborted")
		return
	}
	if err := storage.Create(name); err != nil {
		a.logger.Printf("create failed: %v", err)
		a.status.SetMessage("Can't create file: %v", err)
		return
	}
	a.filename = name
	a.logger.Printf("created %q", name)
	a.status.SetMessage(helpMessage)
}

func isYes(key terminal.Key) bool {
	return key.Type == terminal.KeyRune && (key.Rune == 'y' || key.Rune == 'Y')
}
