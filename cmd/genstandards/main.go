// Package main provides the entry point for the genstandards CLI.
//
// genstandards reads the W3C technical reports index and writes a markdown
// checklist of the standards of each family, plus the list of working
// groups that deliver them.
//
// Usage:
//
//	genstandards
//	genstandards --cache ./standards.html --checklist ../STANDARDS.md
//
// See --help for all available options.
package main

func main() {
	Execute()
}
