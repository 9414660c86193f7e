package codec

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/bft-labs/urlfreezer/internal/domain"
)

// FetchLinkData is the wire form of a LinkToFetch.
type FetchLinkData struct {
	Link      string  `json:"link"`
	LinkLabel *string `json:"link_label"`
}

// FetchRequestBatch is the request envelope for POST /api/fetch_links_v2.
type FetchRequestBatch struct {
	User  string          `json:"user"`
	Page  *string         `json:"page"`
	Links []FetchLinkData `json:"links"`
}

// LinkMatch is one resolved entry of a response.
type LinkMatch struct {
	Link      string            `json:"link"`
	LinkLabel *string           `json:"link_label"`
	LinkID    string            `json:"link_id"`
	Action    domain.LinkAction `json:"action"`
}

// FetchedBatch is the response envelope. Every LinkID is relative to Base.
type FetchedBatch struct {
	Links []LinkMatch
	Base  *url.URL
}

// wireMatch and wireBatch use pointers so missing required fields can be told apart from zero values.
type wireMatch struct {
	Link      *string            `json:"link"`
	LinkLabel *string            `json:"link_label"`
	LinkID    *string            `json:"link_id"`
	Action    *domain.LinkAction `json:"action"`
}

type wireBatch struct {
	Links *[]wireMatch `json:"links"`
	Base  *string      `json:"base"`
}

// checkFieldNames rejects required keys that only match case-insensitively,
// which encoding/json would otherwise accept.
func checkFieldNames(raw []byte) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return domain.Wrap(domain.ErrProtocolDecode, "decode response", err)
	}
	if err := requireKeys(top, "", "links", "base"); err != nil {
		return err
	}

	var items []map[string]json.RawMessage
	if err := json.Unmarshal(top["links"], &items); err != nil {
		return domain.Wrap(domain.ErrProtocolDecode, "decode links", err)
	}
	for i, item := range items {
		if err := requireKeys(item, fmt.Sprintf("links[%d]: ", i), "link", "link_id", "action"); err != nil {
			return err
		}
	}
	return nil
}

func requireKeys(obj map[string]json.RawMessage, prefix string, keys ...string) error {
	for _, k := range keys {
		if _, ok := obj[k]; !ok {
			return domain.Wrap(domain.ErrProtocolDecode, fmt.Sprintf("%smissing field %q", prefix, k), nil)
		}
	}
	return nil
}

// ToWire converts a LinkToFetch into its wire form. The copy is lossless.
func ToWire(l domain.LinkToFetch) FetchLinkData {
	return FetchLinkData{Link: l.Link, LinkLabel: l.Label}
}

// Encode builds the request envelope for one batch. Link order is preserved.
func Encode(user string, page *string, links []domain.LinkToFetch) FetchRequestBatch {
	data := make([]FetchLinkData, len(links))
	for i, l := range links {
		data[i] = ToWire(l)
	}
	return FetchRequestBatch{
		User:  user,
		Page:  page,
		Links: data,
	}
}

// Decode parses a response body.
// It fails with domain.ErrProtocolDecode on malformed JSON or missing
// required fields, and with domain.ErrURLParse when base is not an absolute URL.
func Decode(raw []byte) (FetchedBatch, error) {
	var wb wireBatch
	if err := json.Unmarshal(raw, &wb); err != nil {
		return FetchedBatch{}, domain.Wrap(domain.ErrProtocolDecode, "decode response", err)
	}
	if err := checkFieldNames(raw); err != nil {
		return FetchedBatch{}, err
	}
	if wb.Links == nil {
		return FetchedBatch{}, domain.Wrap(domain.ErrProtocolDecode, `missing field "links"`, nil)
	}
	if wb.Base == nil {
		return FetchedBatch{}, domain.Wrap(domain.ErrProtocolDecode, `missing field "base"`, nil)
	}

	matches := make([]LinkMatch, len(*wb.Links))
	for i, m := range *wb.Links {
		switch {
		case m.Link == nil:
			return FetchedBatch{}, domain.Wrap(domain.ErrProtocolDecode, fmt.Sprintf(`links[%d]: missing field "link"`, i), nil)
		case m.LinkID == nil:
			return FetchedBatch{}, domain.Wrap(domain.ErrProtocolDecode, fmt.Sprintf(`links[%d]: missing field "link_id"`, i), nil)
		case m.Action == nil:
			return FetchedBatch{}, domain.Wrap(domain.ErrProtocolDecode, fmt.Sprintf(`links[%d]: missing field "action"`, i), nil)
		}
		matches[i] = LinkMatch{
			Link:      *m.Link,
			LinkLabel: m.LinkLabel,
			LinkID:    *m.LinkID,
			Action:    *m.Action,
		}
	}

	base, err := ParseAbsolute(*wb.Base)
	if err != nil {
		return FetchedBatch{}, domain.Wrap(domain.ErrURLParse, fmt.Sprintf("base %q", *wb.Base), err)
	}

	return FetchedBatch{Links: matches, Base: base}, nil
}

// Resolve joins m.LinkID against base and builds the LinkInfo.
// Page is the caller-supplied context; the service does not echo it.
func Resolve(base *url.URL, page *string, m LinkMatch) (domain.LinkInfo, error) {
	ref, err := url.Parse(m.LinkID)
	if err != nil {
		return domain.LinkInfo{}, domain.Wrap(domain.ErrURLParse, fmt.Sprintf("link id %q", m.LinkID), err)
	}
	return domain.LinkInfo{
		Original: m.Link,
		Page:     page,
		Label:    m.LinkLabel,
		Link:     base.ResolveReference(ref).String(),
		Action:   m.Action,
	}, nil
}

// ResolveAll resolves every match of a batch, in response order.
// The first failure fails the whole batch.
func ResolveAll(batch FetchedBatch, page *string) ([]domain.LinkInfo, error) {
	infos := make([]domain.LinkInfo, 0, len(batch.Links))
	for _, m := range batch.Links {
		info, err := Resolve(batch.Base, page, m)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// ParseAbsolute parses s and requires a scheme and a host.
func ParseAbsolute(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%q is not an absolute url", s)
	}
	return u, nil
}
