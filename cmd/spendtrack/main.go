// Package main provides the entry point for the spendtrack CLI application.
package main

import (
	"os"

	"spendtrack/cmd/accounts"
	"spendtrack/cmd/balance"
	"spendtrack/cmd/categorize"
	"spendtrack/cmd/importcsv"
	"spendtrack/cmd/report"
	"spendtrack/cmd/root"
	"spendtrack/cmd/rules"
)

func main() {
	root.Init()

	root.Cmd.AddCommand(accounts.Cmd)
	root.Cmd.AddCommand(rules.Cmd)
	root.Cmd.AddCommand(importcsv.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(balance.Cmd)
	root.Cmd.AddCommand(report.Cmd)

	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
