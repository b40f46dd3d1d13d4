// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle that wires input
// acquisition, the graph registry, the cycle search, and the tracker
// together, decoupled from any specific entrypoint like a CLI.
package app
