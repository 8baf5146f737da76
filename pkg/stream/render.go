package stream

import (
	"log/slog"
	"strings"

	"github.com/wutup-dev/wutup/internal/errors"
	"github.com/wutup-dev/wutup/pkg/vdom"
)

// Resolver finds page elements by id. *vdom.Document implements it.
type Resolver interface {
	ElementByID(id string) *vdom.VNode
}

// Mode controls how repeated renders into one container behave.
type Mode string

const (
	// ModeAppend adds a new tbody on every call.
	ModeAppend Mode = "append"
	// ModeReplace removes existing tbody sections first.
	ModeReplace Mode = "replace"
)

// Options configures a render call.
type Options struct {
	Placeholders    Placeholders
	NamesPolicy     NamesPolicy
	Mode            Mode
	CurrentStreamID string
	Logger          *slog.Logger
}

// Option configures Options.
type Option func(*Options)

// WithPlaceholders sets the placeholder content. Zero fields keep their
// defaults.
func WithPlaceholders(p Placeholders) Option {
	return func(o *Options) {
		o.Placeholders = p.Merge(DefaultPlaceholders())
	}
}

// WithNamesPolicy sets the policy for short name lists.
func WithNamesPolicy(p NamesPolicy) Option {
	return func(o *Options) {
		o.NamesPolicy = p
	}
}

// WithMode sets append or replace mode.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithCurrentStreamID overrides the id that receives Attend/Decline
// controls.
func WithCurrentStreamID(id string) Option {
	return func(o *Options) {
		o.CurrentStreamID = id
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{
		Placeholders:    DefaultPlaceholders(),
		NamesPolicy:     PolicyStrict,
		Mode:            ModeAppend,
		CurrentStreamID: CurrentEventStreamID,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.Default().With("component", "stream")
	}
	return o
}

// RenderEventStream renders rowCount event rows labelled by names into the
// table with id containerID.
func RenderEventStream(doc Resolver, containerID string, rowCount int, names []string, opts ...Option) error {
	o := NewOptions(opts...)
	rows, err := RowsFromNames(rowCount, names, o.NamesPolicy)
	if err != nil {
		return err
	}
	return RenderRows(doc, containerID, EventLayout(containerID, o), rows, opts...)
}

// RenderEventRows renders full event rows into the table with id
// containerID.
func RenderEventRows(doc Resolver, containerID string, rows []Row, opts ...Option) error {
	o := NewOptions(opts...)
	return RenderRows(doc, containerID, EventLayout(containerID, o), rows, opts...)
}

// RenderGuestList renders rowCount guest rows labelled by names into the
// table with id containerID.
func RenderGuestList(doc Resolver, containerID string, rowCount int, names []string, opts ...Option) error {
	o := NewOptions(opts...)
	rows, err := RowsFromNames(rowCount, names, o.NamesPolicy)
	if err != nil {
		return err
	}
	return RenderRows(doc, containerID, GuestLayout(o), rows, opts...)
}

// RenderGuestRows renders full guest rows into the table with id
// containerID.
func RenderGuestRows(doc Resolver, containerID string, rows []Row, opts ...Option) error {
	o := NewOptions(opts...)
	return RenderRows(doc, containerID, GuestLayout(o), rows, opts...)
}

// RenderRows builds one tbody from rows with layout and appends it to the
// table with id containerID. The document is left untouched on error.
func RenderRows(doc Resolver, containerID string, layout Layout, rows []Row, opts ...Option) error {
	o := NewOptions(opts...)

	table, err := lookupTable(doc, containerID)
	if err != nil {
		o.Logger.Debug("render rejected", "container", containerID, "error", err)
		return err
	}

	resolved := make([]Row, len(rows))
	for i, row := range rows {
		resolved[i] = row.withDefaults(o.Placeholders)
	}
	body := BuildBody(layout, resolved)

	if o.Mode == ModeReplace {
		table.RemoveChildren(isBody)
	}
	table.AppendChild(body)

	o.Logger.Debug("rendered table body",
		"container", containerID,
		"rows", len(rows),
		"mode", string(o.Mode),
	)
	return nil
}

// Body returns the last tbody of the table with id containerID, or nil.
func Body(doc Resolver, containerID string) *vdom.VNode {
	if doc == nil {
		return nil
	}
	bodies := vdom.ChildElements(doc.ElementByID(containerID), "tbody")
	if len(bodies) == 0 {
		return nil
	}
	return bodies[len(bodies)-1]
}

func lookupTable(doc Resolver, containerID string) (*vdom.VNode, error) {
	if doc == nil {
		return nil, containerNotFound(containerID)
	}
	el := doc.ElementByID(containerID)
	if el == nil {
		return nil, containerNotFound(containerID)
	}
	if el.Tag != "table" {
		return nil, notTable(containerID, el.Tag)
	}
	return el, nil
}

func isBody(n *vdom.VNode) bool {
	return n != nil && n.Kind == vdom.KindElement && n.Tag == "tbody"
}

// Kind selects which table to render.
type Kind string

const (
	KindEvents Kind = "events"
	KindGuests Kind = "guests"
)

// ParseKind parses a table kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindEvents, "event", "stream":
		return KindEvents, nil
	case KindGuests, "guest", "attendees":
		return KindGuests, nil
	}
	return "", errors.New("E005").
		WithDetailf("%q is not a table kind (want events or guests)", s).
		Wrap(ErrUnknownKind)
}

// Render dispatches to the event or guest renderer for kind.
func Render(kind Kind, doc Resolver, containerID string, rows []Row, opts ...Option) error {
	switch kind {
	case KindEvents:
		return RenderEventRows(doc, containerID, rows, opts...)
	case KindGuests:
		return RenderGuestRows(doc, containerID, rows, opts...)
	}
	return errors.New("E005").WithDetailf("%q", string(kind)).Wrap(ErrUnknownKind)
}
