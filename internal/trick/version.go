package trick

// Version of the trick.
// Bumping this number will eventually make clients reload the WASM.
//
// If you set this to an empty string, the go-app handler picks a random
// version on every server restart, forcing the reload of the WASM each time.
// This is useful during development.
var Version = "v0.1.0"
