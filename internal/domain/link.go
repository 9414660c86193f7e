package domain

import (
	"encoding/json"
	"fmt"
)

// LinkAction tells a consumer how to treat a resolved link.
type LinkAction int

const (
	// Redirect means the resolved link should be followed as an HTTP redirect target.
	Redirect LinkAction = iota + 1
	// Content means the resolved link should be fetched as page content.
	Content
)

// String returns the enumerated name, exactly "Redirect" or "Content".
func (a LinkAction) String() string {
	switch a {
	case Redirect:
		return "Redirect"
	case Content:
		return "Content"
	default:
		return fmt.Sprintf("LinkAction(%d)", int(a))
	}
}

// ParseLinkAction converts an enumerated name back into a LinkAction.
func ParseLinkAction(s string) (LinkAction, error) {
	switch s {
	case "Redirect":
		return Redirect, nil
	case "Content":
		return Content, nil
	default:
		return 0, fmt.Errorf("unknown link action %q", s)
	}
}

// MarshalJSON encodes the action as its enumerated name.
func (a LinkAction) MarshalJSON() ([]byte, error) {
	switch a {
	case Redirect, Content:
		return json.Marshal(a.String())
	default:
		return nil, fmt.Errorf("unknown link action %d", int(a))
	}
}

// UnmarshalJSON accepts only "Redirect" and "Content".
func (a *LinkAction) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("link action: %w", err)
	}
	v, err := ParseLinkAction(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// LinkToFetch is one original URL submitted for resolution.
// Nothing is trimmed or validated: an empty Link is sent to the service as-is.
type LinkToFetch struct {
	// Link is the original URL.
	Link string

	// Label is an optional caller annotation echoed back by the service.
	Label *string
}

// NewLinkToFetch creates a LinkToFetch. An empty label means no label.
func NewLinkToFetch(link, label string) LinkToFetch {
	return LinkToFetch{Link: link, Label: Optional(label)}
}

// LinkInfo is a resolved link.
type LinkInfo struct {
	// Original is the URL as submitted.
	Original string

	// Page is the page context supplied by the caller; the service does not echo it.
	Page *string

	// Label is the label echoed by the service.
	Label *string

	// Link is the absolute service-hosted URL.
	Link string

	// Action classifies how Link should be used.
	Action LinkAction
}

// PageOrEmpty returns the page context or "" when there is none.
func (l LinkInfo) PageOrEmpty() string { return deref(l.Page) }

// LabelOrEmpty returns the echoed label or "" when there is none.
func (l LinkInfo) LabelOrEmpty() string { return deref(l.Label) }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Optional returns nil for an empty string and a pointer to s otherwise.
// CSV and CLI input encode "absent" as the empty string.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
