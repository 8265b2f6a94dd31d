package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like source
)

// Result Colors
var (
	ResultColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	PassColor   = color.New(color.FgGreen, color.Bold).SprintFunc()
	FailColor   = color.New(color.FgRed, color.Bold).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// List Colors
var (
	ListItemColor = color.New(color.FgCyan).SprintFunc()
)

// BoolColor renders a boolean outcome, green for true and red for false.
func BoolColor(b bool) string {
	if b {
		return PassColor("true")
	}
	return FailColor("false")
}
