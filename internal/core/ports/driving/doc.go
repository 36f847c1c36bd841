// Package driving defines interfaces that external actors (TUI, CLI, HTTP
// API) use to interact with core services. These are the "driving" ports in
// hexagonal architecture terminology - they drive the application.
//
// Implementations live in internal/core/services (local) and in
// internal/adapters/driven/api (remote, proxying a running server over HTTP).
package driving
