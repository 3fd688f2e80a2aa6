// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no external infrastructure; every
// operation is in-memory computation over data the driven ports
// loaded at startup.
package services
