// Package commands implements the passcheck terminal client.
package commands

type PassCheckCommand struct {
	Check    CheckCommand    `command:"check" description:"Score a password (argument or one line of stdin)"`
	Generate GenerateCommand `command:"generate" description:"Print secure random passwords" alias:"gen"`
}

var PassCheck PassCheckCommand
