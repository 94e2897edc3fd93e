// Package snippets turns command-line file arguments into gist files.
//
// An argument is a path, optionally followed by line ranges in brackets:
//
//	main.go            whole file
//	main.go[12]        line 12
//	main.go[1-5,20-25] lines 1-5 followed by 20-25
//
// Ranges are 1-based and inclusive, and are concatenated in the order
// given. Each file becomes one gist file named after its base name.
package snippets
