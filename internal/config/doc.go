// Package config defines the bilingo configuration, its defaults and its
// validation. Values come from viper, so a YAML file, BILINGO_* environment
// variables and command line flags all end up in the same Config.
package config
