// Package session orchestrates a mutual discrete-logarithm
// proof-of-knowledge handshake between two parties.
//
// The proof engine itself is stateless; everything that smells of
// lifecycle — meeting the peer, shipping bytes, deciding when a proof
// has been consumed — lives here, behind two small contracts:
//
//   - [Barrier] pairs the two parties under an opaque session id
//     (implemented by the rendezvous package),
//   - [Transport] carries opaque payloads between them (implemented by
//     the bridge package).
//
// A [Party] wraps a party id and an engine. [Party.Handshake] waits at
// the barrier, proves knowledge of its secret under the session id,
// exchanges messages with the peer, and verifies the peer's proof under
// the peer's id. Both sides end up with the other's authenticated
// public point, the usual prologue of a distributed key-generation
// ceremony.
package session
