// Package config provides configuration management for the gitstory CLI.
//
// Settings are resolved with the usual precedence: command-line flags,
// then GITSTORY_* environment variables, then a config file, then defaults.
// Each invocation works on its own [viper.Viper] built by [New]; nothing is
// stored in package state.
//
// # Configuration File
//
// The config file is searched for in ./.gitstory/config.yaml and then in
// the user config directory (see [paths.UserConfigDir]):
//
//	json: false
//	ascii: false
//	log_level: warn
//	log_format: text
//	validate:
//	  path: .gitstory/workflow.yaml
//
// # Environment
//
// Every key maps to GITSTORY_<KEY> with dots replaced by underscores, so
// validate.path is GITSTORY_VALIDATE_PATH. GITSTORY_DEBUG=1 lowers the
// default log level to debug.
package config
