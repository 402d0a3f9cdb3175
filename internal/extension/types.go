// Package extension implements the lifecycle and keyboard routing of hosted
// extension UI surfaces (popups, dialogs, infobars). It sits between the
// extension host framework, which drives document lifecycle callbacks, and
// the platform view layer in pkg/extview.
package extension

// HostType identifies the UI surface a host renders into. The set is closed;
// background pages are served by a different host family.
type HostType int

const (
	HostTypeDialog HostType = iota
	HostTypeInfobar
	HostTypePopup
)

func (t HostType) String() string {
	switch t {
	case HostTypeDialog:
		return "dialog"
	case HostTypeInfobar:
		return "infobar"
	case HostTypePopup:
		return "popup"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the supported surface types.
func (t HostType) Valid() bool {
	switch t {
	case HostTypeDialog, HostTypeInfobar, HostTypePopup:
		return true
	default:
		return false
	}
}

// hostPolicy is the per-surface behavior table. Keeping the policy matrix in
// one place makes the type-conditioned branches auditable without chasing
// type checks through the host.
type hostPolicy struct {
	// CloseOnEscape: a raw Escape key-down closes the host.
	CloseOnEscape bool

	// OwnContentVisible: with no association set, the host's own content
	// counts as the visible content.
	OwnContentVisible bool

	// InjectInfobarCSS: the shared infobar stylesheet is inserted on each
	// document-available notification.
	InjectInfobarCSS bool
}

var hostPolicies = map[HostType]hostPolicy{
	HostTypeDialog:  {},
	HostTypeInfobar: {InjectInfobarCSS: true},
	HostTypePopup:   {CloseOnEscape: true, OwnContentVisible: true},
}

func (t HostType) policy() hostPolicy {
	return hostPolicies[t]
}
