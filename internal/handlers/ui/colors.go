package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	CodeColor    = color.New(color.FgWhite).SprintFunc()   // For command lines
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like source
)

// Bundle Specific Colors
var (
	BundleNameColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	MainClassColor  = color.New(color.FgBlue).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Label Colors
var (
	LabelColor = color.New(color.FgCyan).SprintFunc()
)
