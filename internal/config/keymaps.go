package config

// KeyMappings defines all configurable dashboard key bindings
type KeyMappings struct {
	// Navigation
	PrevCategory string `yaml:"prev_category"`
	NextCategory string `yaml:"next_category"`
	PrevTask     string `yaml:"prev_task"`
	NextTask     string `yaml:"next_task"`

	// Tasks
	ViewTask    string `yaml:"view_task"`
	AddComment  string `yaml:"add_comment"`
	ToggleGroup string `yaml:"toggle_group"`

	// Forms
	SaveForm string `yaml:"save_form"`
	Cancel   string `yaml:"cancel"`

	// Other
	Refresh  string `yaml:"refresh"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevCategory: "left",
		NextCategory: "right",
		PrevTask:     "up",
		NextTask:     "down",

		ViewTask:    "enter",
		AddComment:  "c",
		ToggleGroup: "g",

		SaveForm: "ctrl+s",
		Cancel:   "esc",

		Refresh:  "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, value string) {
		if *dst == "" {
			*dst = value
		}
	}

	fill(&k.PrevCategory, defaults.PrevCategory)
	fill(&k.NextCategory, defaults.NextCategory)
	fill(&k.PrevTask, defaults.PrevTask)
	fill(&k.NextTask, defaults.NextTask)
	fill(&k.ViewTask, defaults.ViewTask)
	fill(&k.AddComment, defaults.AddComment)
	fill(&k.ToggleGroup, defaults.ToggleGroup)
	fill(&k.SaveForm, defaults.SaveForm)
	fill(&k.Cancel, defaults.Cancel)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
