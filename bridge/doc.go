// Package bridge moves opaque message bytes between the two parties of
// a session over WebSocket.
//
// The [Relay] pairs two connections under an agreed id and pipes
// frames between them without interpreting the payload; serialized
// proofs are just bytes to it. [Client] is the party-side counterpart:
// dial the relay under the session's id, Send your message, Recv the
// peer's.
//
// The bridge deliberately has no timeout policy of its own beyond
// context deadlines on the client: session timing belongs to the
// rendezvous barrier, which the parties pass before they connect here.
package bridge
