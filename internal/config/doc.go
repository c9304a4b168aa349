// Package config holds colorscan's configuration: defaults, CLI-derived
// settings, validation, and the optional .colorscan YAML file.
//
// Precedence is flag > config file > default. The config file is looked
// up in the current directory first, then the home directory, matching
// the usual dotfile convention for developer tools.
package config
