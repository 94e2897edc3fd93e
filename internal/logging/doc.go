// Package logger provides leveled logging for quick-gist commands.
//
// Output is prefixed and colored with fatih/color. Verbosity is controlled
// by two root flags:
//
//   - --verbose: shows info and warning messages
//   - --debug: shows everything, including debug details and errors
//
// Without flags only WarnfUser output is shown; command results are printed
// by the cmd package itself.
//
// # Log Methods
//
//	Logger.Infof()          // --verbose or --debug
//	Logger.Debugf()         // --debug only
//	Logger.Warnf()          // --verbose or --debug
//	Logger.WarnfUser()      // always
//	Logger.Errorf()         // --debug only
//	Logger.ErrorfAndReturn() // Errorf, then returns the error
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Reading %d files", count)
//
// The root command builds the logger in PersistentPreRun and passes it to
// workflows through their options.
package logger
