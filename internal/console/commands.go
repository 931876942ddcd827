package console

import (
	"fmt"
	"strings"
)

// Built-in command names.
const (
	CommandHelp         = "help"
	CommandAbout        = "about"
	CommandExperience   = "experience"
	CommandEducation    = "education"
	CommandProjects     = "projects"
	CommandAchievements = "achievements"
	CommandContact      = "contact"
	CommandTop          = "top"
	CommandClear        = "clear"
)

// commandTable is ordered; completion and the help overlay list commands in
// this order.
var commandTable = []string{
	CommandHelp,
	CommandAbout,
	CommandExperience,
	CommandEducation,
	CommandProjects,
	CommandAchievements,
	CommandContact,
	CommandTop,
	CommandClear,
}

var sectionMap = map[string]string{
	CommandAbout:        "section-about",
	CommandExperience:   "section-experience",
	CommandEducation:    "section-education",
	CommandProjects:     "section-projects",
	CommandAchievements: "section-achievements",
	CommandContact:      "section-contact",
}

var commandDescriptions = map[string]string{
	CommandHelp:         "toggle this help panel",
	CommandAbout:        "jump to about",
	CommandExperience:   "jump to work experience",
	CommandEducation:    "jump to education",
	CommandProjects:     "jump to projects",
	CommandAchievements: "jump to achievements",
	CommandContact:      "jump to contact details",
	CommandTop:          "scroll back to the top",
	CommandClear:        "clear the prompt",
}

// DefaultCommands returns a copy of the built-in command table.
func DefaultCommands() []string {
	return append([]string(nil), commandTable...)
}

// DefaultSections returns a copy of the built-in command to section target
// mapping.
func DefaultSections() map[string]string {
	out := make(map[string]string, len(sectionMap))
	for k, v := range sectionMap {
		out[k] = v
	}
	return out
}

// Describe returns the one-line description of a built-in command, or "".
func Describe(command string) string {
	return commandDescriptions[command]
}

// Normalize trims surrounding whitespace and lowercases a raw command.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NotFoundMessage is the flash text shown for an unrecognized command.
func NotFoundMessage(command string) string {
	return fmt.Sprintf("Command not found: '%s'. Type 'help' for available commands.", command)
}

// validateSections checks that every section key is a known command.
func validateSections(commands []string, sections map[string]string) error {
	known := make(map[string]struct{}, len(commands))
	for _, c := range commands {
		known[c] = struct{}{}
	}
	for name := range sections {
		if _, ok := known[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSection, name)
		}
	}
	return nil
}
