// Package cli provides the SecureShare command-line client.
//
// Content is encrypted locally before upload and decrypted locally after
// access; the server only ever sees ciphertext, the IV and a hash of the key.
// Each subcommand maps to one server operation. Without a subcommand the
// client starts an interactive prompt that accepts the same commands and
// shows whether the server is reachable.
package cli
