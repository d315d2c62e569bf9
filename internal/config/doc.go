// Package config loads the call client configuration from the environment.
//
// Values come from process environment variables, optionally seeded from
// .env files. The loaded Config is validated, applied to a settings.Store
// and turned into agent.ClientOptions.
package config
