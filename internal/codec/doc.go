// Package codec maps between link entities and the resolution service's
// JSON envelopes.
//
// It owns the only URL-joining logic in the module: the service answers
// with short relative link ids plus one absolute base per response, and
// [Resolve] composes them with RFC 3986 reference resolution.
//
// The codec performs no I/O. The blocking and suspending clients both go
// through [Encode], [Decode] and [ResolveAll].
package codec
