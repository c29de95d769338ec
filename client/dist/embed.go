package clientdist

import _ "embed"

// ContactJS is the thin client script.
//
// It is served at "/_contact/client.js".
//
//go:embed contact.js
var ContactJS []byte
