package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/urlfreezer/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestEncode(t *testing.T) {
	links := []domain.LinkToFetch{
		domain.NewLinkToFetch("http://exp.com/bla", "nana"),
		domain.NewLinkToFetch("http://exp.com/other", ""),
	}

	batch := Encode("user-1", strPtr("http://local.com/page.html"), links)

	b, err := json.Marshal(batch)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"user": "user-1",
		"page": "http://local.com/page.html",
		"links": [
			{"link": "http://exp.com/bla", "link_label": "nana"},
			{"link": "http://exp.com/other", "link_label": null}
		]
	}`, string(b))
}

func TestEncode_NoPage(t *testing.T) {
	batch := Encode("user-1", nil, []domain.LinkToFetch{domain.NewLinkToFetch("", "")})

	b, err := json.Marshal(batch)
	require.NoError(t, err)
	assert.JSONEq(t, `{"user":"user-1","page":null,"links":[{"link":"","link_label":null}]}`, string(b))
}

func TestDecode(t *testing.T) {
	raw := []byte(`{"links":[{"link":"http://exp.com/bla","link_label":"nana","action":"Redirect","link_id":"ASXDAERERE"},
		{"link":"http://exp.com/x","link_label":null,"action":"Content","link_id":"QWE"}],"base":"https://example.com"}`)

	batch, err := Decode(raw)
	require.NoError(t, err)
	require.Len(t, batch.Links, 2)
	assert.Equal(t, "https://example.com", batch.Base.String())
	assert.Equal(t, LinkMatch{
		Link:      "http://exp.com/bla",
		LinkLabel: strPtr("nana"),
		LinkID:    "ASXDAERERE",
		Action:    domain.Redirect,
	}, batch.Links[0])
	assert.Nil(t, batch.Links[1].LinkLabel)
	assert.Equal(t, domain.Content, batch.Links[1].Action)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind error
	}{
		{name: "not json", raw: `<html>oops</html>`, kind: domain.ErrProtocolDecode},
		{name: "trailing data", raw: `{"links":[],"base":"https://example.com"} {"garbage`, kind: domain.ErrProtocolDecode},
		{name: "trailing value", raw: `{"links":[],"base":"https://example.com"} {}`, kind: domain.ErrProtocolDecode},
		{name: "key case differs", raw: `{"LINKS":[],"Base":"https://example.com"}`, kind: domain.ErrProtocolDecode},
		{
			name: "match key case differs",
			raw:  `{"links":[{"Link":"http://exp.com/bla","link_id":"A","action":"Redirect"}],"base":"https://example.com"}`,
			kind: domain.ErrProtocolDecode,
		},
		{name: "missing links", raw: `{"base":"https://example.com"}`, kind: domain.ErrProtocolDecode},
		{name: "null links", raw: `{"links":null,"base":"https://example.com"}`, kind: domain.ErrProtocolDecode},
		{name: "missing base", raw: `{"links":[]}`, kind: domain.ErrProtocolDecode},
		{name: "links wrong shape", raw: `{"links":{},"base":"https://example.com"}`, kind: domain.ErrProtocolDecode},
		{
			name: "missing link_id",
			raw:  `{"links":[{"link":"http://exp.com/bla","action":"Redirect"}],"base":"https://example.com"}`,
			kind: domain.ErrProtocolDecode,
		},
		{
			name: "unknown action",
			raw:  `{"links":[{"link":"http://exp.com/bla","link_id":"A","action":"Download"}],"base":"https://example.com"}`,
			kind: domain.ErrProtocolDecode,
		},
		{name: "base not a url", raw: `{"links":[],"base":"not a url"}`, kind: domain.ErrURLParse},
		{name: "base without host", raw: `{"links":[],"base":"mailto:someone"}`, kind: domain.ErrURLParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.raw))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		linkID string
		want   string
	}{
		{name: "bare host", base: "https://example.com", linkID: "ASXDAERERE", want: "https://example.com/ASXDAERERE"},
		{name: "host with slash", base: "https://example.com/", linkID: "ASXDAERERE", want: "https://example.com/ASXDAERERE"},
		{name: "directory base", base: "https://example.com/l/", linkID: "abc", want: "https://example.com/l/abc"},
		{name: "file base replaces last segment", base: "https://example.com/l/index", linkID: "abc", want: "https://example.com/l/abc"},
		{name: "absolute path id", base: "https://example.com/l/", linkID: "/abc", want: "https://example.com/abc"},
		{name: "dot segments", base: "https://example.com/a/b/", linkID: "../c", want: "https://example.com/a/c"},
		{name: "query id", base: "https://example.com/l", linkID: "?id=1", want: "https://example.com/l?id=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, err := ParseAbsolute(tt.base)
			require.NoError(t, err)

			info, err := Resolve(base, strPtr("http://local.com/page.html"), LinkMatch{
				Link:      "http://exp.com/bla",
				LinkLabel: strPtr("nana"),
				LinkID:    tt.linkID,
				Action:    domain.Redirect,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, info.Link)
			assert.Equal(t, "http://exp.com/bla", info.Original)
			assert.Equal(t, "http://local.com/page.html", info.PageOrEmpty())
			assert.Equal(t, "nana", info.LabelOrEmpty())
			assert.Equal(t, domain.Redirect, info.Action)
		})
	}
}

func TestResolve_InvalidLinkID(t *testing.T) {
	base, err := ParseAbsolute("https://example.com")
	require.NoError(t, err)

	_, err = Resolve(base, nil, LinkMatch{Link: "http://exp.com", LinkID: "%zz", Action: domain.Content})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrURLParse)
}

func TestResolveAll(t *testing.T) {
	batch, err := Decode([]byte(`{"links":[
		{"link":"a","link_id":"1","action":"Redirect"},
		{"link":"b","link_id":"2","action":"Content"},
		{"link":"c","link_id":"%zz","action":"Content"}],"base":"https://example.com"}`))
	require.NoError(t, err)

	_, err = ResolveAll(batch, nil)
	assert.ErrorIs(t, err, domain.ErrURLParse)

	batch.Links = batch.Links[:2]
	infos, err := ResolveAll(batch, nil)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "https://example.com/1", infos[0].Link)
	assert.Equal(t, "https://example.com/2", infos[1].Link)
	assert.Nil(t, infos[0].Page)
}
