// Package scaffold runs the template script that instantiates a new
// converter site.
//
// The script lives next to the newsite binary, so the tool keeps working
// when the install directory is moved. [InstallDir] locates that directory
// and [Resolve] joins it with the configured script name.
//
// # Invocation Contract
//
// The script receives exactly four positional arguments:
//
//	<folder> <display-name> <#RRGGBB> <conversion-mode>
//
// It inherits the caller's working directory and terminal. Its exit status
// is surfaced through [ExitError] so the CLI can exit with the same code.
package scaffold
