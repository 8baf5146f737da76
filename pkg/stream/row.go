package stream

import (
	"fmt"
	"strings"
)

// CurrentEventStreamID is the id of the main event stream. Event rows
// rendered into it get Attend/Decline controls.
const CurrentEventStreamID = "current-event-stream"

// Row is the data for one table row. Empty fields fall back to the
// configured Placeholders.
type Row struct {
	Name        string `json:"name" yaml:"name"`
	ImageURL    string `json:"image,omitempty" yaml:"image,omitempty"`
	ImageAlt    string `json:"imageAlt,omitempty" yaml:"imageAlt,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	TimeLabel   string `json:"time,omitempty" yaml:"time,omitempty"`
	Link        string `json:"link,omitempty" yaml:"link,omitempty"`
}

// Placeholders is the fixed content used where a Row has no data.
type Placeholders struct {
	ImageURL    string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty" toml:"imageUrl,omitempty"`
	ImageAlt    string `json:"imageAlt,omitempty" yaml:"imageAlt,omitempty" toml:"imageAlt,omitempty"`
	ImageSize   int    `json:"imageSize,omitempty" yaml:"imageSize,omitempty" toml:"imageSize,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	TimeLabel   string `json:"timeLabel,omitempty" yaml:"timeLabel,omitempty" toml:"timeLabel,omitempty"`
	EventLink   string `json:"eventLink,omitempty" yaml:"eventLink,omitempty" toml:"eventLink,omitempty"`
	ButtonClass string `json:"buttonClass,omitempty" yaml:"buttonClass,omitempty" toml:"buttonClass,omitempty"`
}

// DefaultPlaceholders returns the stock placeholder content.
func DefaultPlaceholders() Placeholders {
	return Placeholders{
		ImageURL:    "http://24.media.tumblr.com/tumblr_lurm27QJ2X1r6d623o1_500.jpg",
		ImageAlt:    "Llamas",
		ImageSize:   50,
		Description: "IT'S GOING TO BE A LLAMA PALOOZA",
		TimeLabel:   "time goes here",
		EventLink:   "edu.lmu.cs.wutup.EventPage",
		ButtonClass: "btn btn-small",
	}
}

// Merge returns p with every zero field replaced by the value from fallback.
func (p Placeholders) Merge(fallback Placeholders) Placeholders {
	if p.ImageURL == "" {
		p.ImageURL = fallback.ImageURL
	}
	if p.ImageAlt == "" {
		p.ImageAlt = fallback.ImageAlt
	}
	if p.ImageSize == 0 {
		p.ImageSize = fallback.ImageSize
	}
	if p.Description == "" {
		p.Description = fallback.Description
	}
	if p.TimeLabel == "" {
		p.TimeLabel = fallback.TimeLabel
	}
	if p.EventLink == "" {
		p.EventLink = fallback.EventLink
	}
	if p.ButtonClass == "" {
		p.ButtonClass = fallback.ButtonClass
	}
	return p
}

// withDefaults fills empty row fields from p. Name is never defaulted.
func (r Row) withDefaults(p Placeholders) Row {
	if r.ImageURL == "" {
		r.ImageURL = p.ImageURL
	}
	if r.ImageAlt == "" {
		r.ImageAlt = p.ImageAlt
	}
	if r.Description == "" {
		r.Description = p.Description
	}
	if r.TimeLabel == "" {
		r.TimeLabel = p.TimeLabel
	}
	if r.Link == "" {
		r.Link = p.EventLink
	}
	return r
}

// NamesPolicy decides what happens when fewer names than rows are given.
type NamesPolicy string

const (
	// PolicyStrict rejects the call with ErrInsufficientData.
	PolicyStrict NamesPolicy = "strict"
	// PolicyPad renders the missing rows with empty labels.
	PolicyPad NamesPolicy = "pad"
	// PolicyTruncate lowers the row count to the number of names.
	PolicyTruncate NamesPolicy = "truncate"
)

// ParseNamesPolicy parses a policy name. The empty string means strict.
func ParseNamesPolicy(s string) (NamesPolicy, error) {
	switch NamesPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyStrict:
		return PolicyStrict, nil
	case PolicyPad:
		return PolicyPad, nil
	case PolicyTruncate:
		return PolicyTruncate, nil
	}
	return "", fmt.Errorf("unknown names policy %q (want strict, pad, or truncate)", s)
}

// RowsFromNames builds rowCount rows labelled by names, applying policy
// when names is shorter than rowCount. Extra names are ignored.
func RowsFromNames(rowCount int, names []string, policy NamesPolicy) ([]Row, error) {
	if rowCount < 0 {
		return nil, invalidRowCount(rowCount)
	}
	n := rowCount
	if len(names) < rowCount {
		switch policy {
		case PolicyPad:
		case PolicyTruncate:
			n = len(names)
		default:
			return nil, insufficientData(rowCount, len(names))
		}
	}
	rows := make([]Row, n)
	for i := range rows {
		if i < len(names) {
			rows[i].Name = names[i]
		}
	}
	return rows, nil
}
