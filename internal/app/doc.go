// Package app loads configuration and wires application dependencies.
//
// Config is read from the environment (and a .env file when present). NewWire
// builds the credential store, API client, availability cache, session store
// and services from it, exposing them via the Wire struct for commands to use.
package app
