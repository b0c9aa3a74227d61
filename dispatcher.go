package main

// EventKind identifies a platform event the dispatcher knows how to handle.
type EventKind int

const (
	EventNone EventKind = iota
	EventShown
	EventResized
	EventKeyNext
	EventKeyPrev
	EventDropFile
	EventToggleInfo
	EventQuit
)

// Event is one translated platform event. Width/Height are set for
// EventResized, Path for EventDropFile.
type Event struct {
	Kind   EventKind
	Width  int
	Height int
	Path   string
}

// WindowTitler pushes a title out to the window collaborator.
type WindowTitler interface {
	SetTitle(title string)
}

// Dispatcher translates events into ImageSet / TextureCache / Renderer
// operations. Its whole state is the titleDirty flag and the quit flag;
// everything else lives in the collaborators it drives.
//
// A roll is reload-if-dirty followed (when titleDirty) by a title push; the
// actual draw happens on the platform's next frame. Each transition assigns
// titleDirty before rolling, so resizes never churn the title while the
// window is being dragged, and navigation or drops always refresh it.
type Dispatcher struct {
	set      *ImageSet
	cache    *TextureCache
	renderer *Renderer
	viewport *Viewport
	window   WindowTitler

	titleDirty bool
	quit       bool
}

func NewDispatcher(set *ImageSet, cache *TextureCache, renderer *Renderer, viewport *Viewport, window WindowTitler) *Dispatcher {
	return &Dispatcher{
		set:      set,
		cache:    cache,
		renderer: renderer,
		viewport: viewport,
		window:   window,
	}
}

// Quit reports whether a quit event has been dispatched.
func (d *Dispatcher) Quit() bool {
	return d.quit
}

// Dispatch runs one event to completion. Unrecognized kinds are ignored.
// The only error it can return is a texture load failure, which the caller
// treats as fatal.
func (d *Dispatcher) Dispatch(ev Event) error {
	switch ev.Kind {
	case EventShown:
		d.titleDirty = true
		return d.roll()
	case EventResized:
		d.viewport.Width = ev.Width
		d.viewport.Height = ev.Height
		d.titleDirty = false
		return d.roll()
	case EventKeyNext:
		d.set.Next()
		d.titleDirty = true
		return d.roll()
	case EventKeyPrev:
		d.set.Prev()
		d.titleDirty = true
		return d.roll()
	case EventDropFile:
		d.set.Rescan(ev.Path)
		d.titleDirty = true
		return d.roll()
	case EventToggleInfo:
		d.renderer.ToggleInfo()
		return nil
	case EventQuit:
		d.quit = true
		return nil
	default:
		return nil
	}
}

func (d *Dispatcher) roll() error {
	if err := d.cache.Refresh(d.set); err != nil {
		return err
	}
	if d.titleDirty {
		if name := d.set.CurrentName(); name != "" {
			d.window.SetTitle(name)
		}
	}
	return nil
}
