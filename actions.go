package main

// ActionDefinition defines an action with its default keybindings and description
type ActionDefinition struct {
	Name        string
	Keys        []string
	Description string
}

// actionDefinitions contains all action definitions with default keybindings
var actionDefinitions = []ActionDefinition{
	{"exit", []string{"Escape", "KeyQ"}, "Quit application"},
	{"next", []string{"ArrowRight", "Space"}, "Next image"},
	{"previous", []string{"ArrowLeft", "Backspace"}, "Previous image"},
	{"info", []string{"KeyI"}, "Show/hide info display"},
}

// getDefaultKeybindings returns the default keybinding configuration
func getDefaultKeybindings() map[string][]string {
	keybindings := make(map[string][]string, len(actionDefinitions))
	for _, def := range actionDefinitions {
		keys := make([]string, len(def.Keys))
		copy(keys, def.Keys)
		keybindings[def.Name] = keys
	}
	return keybindings
}
