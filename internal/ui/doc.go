// Package ui provides semantic text formatting for CLI output.
//
// Formatters colorize content when the terminal supports it. When NO_COLOR
// is set or colors are unavailable, text decorations are used instead so the
// output stays readable in logs and pipes.
//
//	ui.Code.Sprint("quick-gist add-user")     // `quick-gist add-user`
//	ui.Path.Sprint("main.go")                 // main.go
//	ui.URL.Sprint("https://gist.github.com/") // <https://gist.github.com/>
//	ui.Highlight.Sprint("octocat")            // 'octocat'
//	ui.Muted.Sprint("encrypted")              // (encrypted)
//
// Failure and Done build the two-line result messages printed at the end of
// every command.
package ui
