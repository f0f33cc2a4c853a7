package main

// Exit codes shared by all commands.
const (
	ExitSuccess         = 0 // Success
	ExitError           = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError     = 2 // Configuration error (unreadable config, invalid backend name)
	ExitStoreError      = 3 // Store or data error (unreachable store, missing database, bad fixture)
	ExitGenerationError = 4 // Generation backend explicitly configured but unreachable
)
