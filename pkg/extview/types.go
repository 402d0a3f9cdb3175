// Package extview provides the platform view binding for hosted extension
// UI surfaces. It adapts a toolkit widget (GTK4/WebKitGTK) behind a common
// capability interface so the hosting layer never touches toolkit types.
package extview

import "context"

// Toolkit identifies the widget backend a view binding is built on.
type Toolkit string

const (
	// ToolkitGTK4 is the GTK4/WebKitGTK backend. Requires the webkit_cgo
	// build tag; without it construction reports ErrNativeUnavailable.
	ToolkitGTK4 Toolkit = "gtk4"
)

// Size is a widget size in logical pixels.
type Size struct {
	Width  int
	Height int
}

// ContentID uniquely identifies a content surface for its lifetime.
type ContentID uint64

// Content is a page surface owned outside the extension hosting layer,
// e.g. the tab a popup was opened from. Hosts only ever watch content;
// they never own it.
type Content interface {
	ID() ContentID
	URL() string

	// OnDestroyed registers fn to run synchronously when the content is
	// torn down, before its storage is reclaimed. The returned cancel
	// function unsubscribes; calling it after the content is destroyed is
	// a no-op. fn fires at most once.
	OnDestroyed(fn func()) (cancel func())
}

// Disposition says where a navigation requested by hosted content should land.
type Disposition int

const (
	DispositionCurrentTab Disposition = iota
	DispositionSingletonTab
	DispositionNewForegroundTab
	DispositionNewBackgroundTab
	DispositionNewPopup
	DispositionNewWindow
	DispositionSaveToDisk
	DispositionOffTheRecord
)

func (d Disposition) String() string {
	switch d {
	case DispositionCurrentTab:
		return "current_tab"
	case DispositionSingletonTab:
		return "singleton_tab"
	case DispositionNewForegroundTab:
		return "new_foreground_tab"
	case DispositionNewBackgroundTab:
		return "new_background_tab"
	case DispositionNewPopup:
		return "new_popup"
	case DispositionNewWindow:
		return "new_window"
	case DispositionSaveToDisk:
		return "save_to_disk"
	case DispositionOffTheRecord:
		return "off_the_record"
	default:
		return "unknown"
	}
}

// OpenURLParams describes a navigation requested by hosted content.
type OpenURLParams struct {
	URL         string
	Disposition Disposition
	UserGesture bool
}

// WindowController is the command surface of the top-level browser window a
// view is embedded in. Hosts resolve it through ViewBinding.Window; absence
// (nil) is a valid state for hosts not bound to any window.
type WindowController interface {
	// WindowID returns the logical window identifier announced to hosted
	// documents.
	WindowID() int

	// OpenURL performs a navigation in this window. Returns the content
	// that now hosts the navigation, or nil if the window declined.
	OpenURL(ctx context.Context, params OpenURLParams) Content

	// PreHandleKeyboardShortcut offers ev to the window's high-priority
	// accelerators (e.g. close-tab). Its decision is authoritative.
	PreHandleKeyboardShortcut(ev KeyEvent) (handled, isShortcut bool)

	// HandleKeyboardEvent offers ev to the window's low-priority
	// accelerators (e.g. find-in-page).
	HandleKeyboardEvent(ev KeyEvent)
}
