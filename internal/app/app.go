// Package app wires the editor state, dispatcher, renderer, and input
// handling into a runnable application.
package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/multisel/internal/config"
	"github.com/dshills/multisel/internal/dispatcher"
	"github.com/dshills/multisel/internal/dispatcher/handlers/selection"
	"github.com/dshills/multisel/internal/input"
	"github.com/dshills/multisel/internal/renderer"
)

// Options configures the application.
type Options struct {
	// Path of the file to open.
	Path string
	// Config holds the host configuration.
	Config config.Config
	// Logger receives application logs. Nil disables logging.
	Logger *Logger
	// WatchFile enables reloading when the file changes on disk.
	WatchFile bool
}

// Application coordinates the demo host: one open file, its selection
// state, the action dispatcher, and the terminal view.
type Application struct {
	opts   Options
	log    *Logger
	editor *Editor
	disp   *dispatcher.Dispatcher
	keymap Keymap

	screen  tcell.Screen
	view    *renderer.View
	watcher *FileWatcher

	quit bool
}

// New creates an application for the given options.
func New(opts Options) (*Application, error) {
	log := opts.Logger
	if log == nil {
		log = NullLogger
	}

	editor, err := OpenFile(opts.Path)
	if err != nil {
		return nil, err
	}

	keymap, err := NewKeymap(opts.Config.Keys)
	if err != nil {
		log.Warn("keymap: %v", err)
	}

	disp := dispatcher.New()
	disp.RegisterNamespace(selection.NewHandler())

	a := &Application{
		opts:   opts,
		log:    log.WithComponent("app"),
		editor: editor,
		disp:   disp,
		keymap: keymap,
	}
	a.syncDispatcher()
	return a, nil
}

// SetScreen sets the screen to render on. When unset, Run creates a
// real terminal screen.
func (a *Application) SetScreen(screen tcell.Screen) {
	a.screen = screen
}

// Editor returns the editor state (exposed for tests).
func (a *Application) Editor() *Editor {
	return a.editor
}

// Run executes the event loop until quit. The screen is initialized
// and torn down here.
func (a *Application) Run() error {
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("creating screen: %w", err)
		}
		a.screen = screen
	}
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer a.screen.Fini()

	theme := a.opts.Config.Theme
	a.view = renderer.NewView(a.screen, renderer.NewTheme(
		theme.Foreground, theme.Background,
		theme.PrimarySelection, theme.SecondarySelection,
		theme.StatusForeground, theme.StatusBackground,
	))
	a.view.SetTitle(a.editor.Path())
	a.disp.SetRenderer(a.view)

	if a.opts.WatchFile {
		watcher, err := NewFileWatcher(a.editor.Path(), a.postReload, a.log)
		if err != nil {
			a.log.Warn("file watcher unavailable: %v", err)
		} else {
			a.watcher = watcher
			defer a.watcher.Close()
		}
	}

	a.log.Info("opened %s", a.editor.Path())
	a.render()

	for !a.quit {
		ev := a.screen.PollEvent()
		if ev == nil {
			break
		}
		a.handleEvent(ev)
		a.render()
	}
	return nil
}

// Quit stops the event loop after the current event.
func (a *Application) Quit() {
	a.quit = true
}

// Interrupt requests shutdown from another goroutine, typically a
// signal handler.
func (a *Application) Interrupt() {
	if a.screen == nil {
		return
	}
	if err := a.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		a.log.Warn("dropping interrupt: %v", err)
	}
}

// eventReload is posted by the file watcher goroutine to request a
// reload on the event loop.
type eventReload struct {
	tcell.EventTime
}

// postReload marshals a reload request onto the event loop.
func (a *Application) postReload() {
	ev := &eventReload{}
	ev.SetEventNow()
	if err := a.screen.PostEvent(ev); err != nil {
		a.log.Warn("dropping reload event: %v", err)
	}
}

// handleEvent processes one tcell event.
func (a *Application) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	case *eventReload:
		a.reload()
	case *tcell.EventInterrupt:
		a.Quit()
	}
}

// handleKey routes a key event to an action or a movement.
func (a *Application) handleKey(ev *tcell.EventKey) {
	if action, ok := a.keymap.Lookup(ev); ok {
		a.dispatch(action)
		return
	}

	extend := ev.Modifiers()&tcell.ModShift != 0
	word := ev.Modifiers()&tcell.ModCtrl != 0
	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyCtrlC:
		a.Quit()
	case tcell.KeyLeft:
		if word {
			a.editor.MoveWordLeft(extend)
		} else {
			a.editor.MoveLeft(extend)
		}
	case tcell.KeyRight:
		if word {
			a.editor.MoveWordRight(extend)
		} else {
			a.editor.MoveRight(extend)
		}
	case tcell.KeyUp:
		a.editor.MoveUp(extend)
	case tcell.KeyDown:
		a.editor.MoveDown(extend)
	case tcell.KeyHome:
		a.editor.MoveLineStart(extend)
	case tcell.KeyEnd:
		a.editor.MoveLineEnd(extend)
	}
}

// dispatch runs an action and applies its result to the view.
func (a *Application) dispatch(name string) {
	start := time.Now()
	res := a.disp.Dispatch(input.Action{Name: name, Source: input.SourceKeyboard})
	a.log.Debug("action %s: %s in %s", name, res.Status, time.Since(start))

	if res.IsError() {
		a.log.Error("action %s failed: %v", name, res.Error)
	}
	if a.view == nil {
		return
	}
	a.view.SetMessage(res.Message)
	if target := res.ViewUpdate.ScrollTo; target != nil {
		a.view.ScrollTo(target.Line, target.Column)
	}
}

// reload replaces the document with the on-disk content.
func (a *Application) reload() {
	if err := a.editor.Reload(); err != nil {
		a.log.Error("reload failed: %v", err)
		return
	}
	a.syncDispatcher()
	if a.view != nil {
		a.view.SetMessage("file changed on disk, reloaded")
	}
	a.log.Info("reloaded %s (revision %s)", a.editor.Path(), a.editor.Document().RevisionID())
}

// syncDispatcher points the dispatcher at the current document and
// selection set. Must be called after any reload, because reloading
// replaces both.
func (a *Application) syncDispatcher() {
	a.disp.SetDocument(a.editor.Document())
	a.disp.SetSelections(a.editor.Selections())
}

// render draws the current state.
func (a *Application) render() {
	if a.view == nil {
		return
	}
	a.view.Render(a.editor.Document(), a.editor.Selections())
}
