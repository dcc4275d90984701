// Package main provides the entry point for the promptbook CLI application.
// promptbook lists and prints reusable prompts kept in a categorized Markdown document.
package main

import cmd "github.com/toozej/promptbook/cmd/promptbook"

func main() {
	cmd.Execute()
}
