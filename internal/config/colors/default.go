package colors

// Default returns the default color scheme
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Categories
		Ghosted:    "#FF5F5F",
		Postponed:  "#FFD75F",
		InProgress: "#5F87D7",
		Completed:  "#5FD75F",

		// UI elements
		Border:         "#585858",
		SelectedBorder: "#D75FD7",

		// Text
		Title:  "#D75FD7",
		Subtle: "#808080",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:    "#00AFFF",
		WarningFg: "#FFD700",
		ErrorFg:   "#FF0000",
	}
}
