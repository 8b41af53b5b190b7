// Package rendezvous implements a two-party pairing barrier over HTTP.
//
// Two parties that want to run a protocol session agree out of band on
// an opaque id. Each calls GET /sync/{id}; the first caller blocks
// until the second arrives or a bounded wait (10 seconds by default)
// elapses. On timeout the caller is told to retry with a fresh id. An
// id that has already paired two callers answers 409 to anyone else,
// so a misconfigured third party fails fast instead of hanging.
//
// The barrier carries no payloads and attaches no meaning to ids; it
// only synchronizes arrival. Proof bytes travel over a separate
// transport (see the bridge package).
package rendezvous
