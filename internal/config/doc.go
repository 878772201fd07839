// Package config handles loading and validation of newsite configuration.
//
// Configuration is read from ~/.config/newsite/config.toml. The file is
// optional: when it is missing every setting takes its default.
//
// # Key Settings
//
//   - template_script: file name of the template script, resolved against
//     the directory the newsite binary is installed in (default:
//     "create-project-from-template.sh"). An absolute path is used as is.
//   - log_file: optional run log (must be absolute or ~/...). Rotated by size.
//
// # Theme Configuration
//
//	[theme]
//	name = "nord"   # none, default, dracula, nord
//	mode = "auto"   # auto, light, dark
//
// # Path Validation
//
// log_file must be absolute or start with ~ (no relative paths like "." or
// "..") so the run log does not depend on the caller's working directory.
package config
