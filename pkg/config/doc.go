// Package config loads env-tagged configuration structs from the process
// environment, with optional .env file support for local development.
//
// Every authkit package ships a Config struct with `env:` tags and a
// DefaultConfig() constructor. DefaultConfig is enough when configuring in
// code; Load fills the same struct from the environment instead:
//
//	var cfg lockout.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	tracker := lockout.NewTracker(store, lockout.WithConfig(cfg))
package config
