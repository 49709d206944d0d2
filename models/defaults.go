package models

// DefaultCategories returns the categories a fresh installation starts with.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Daily", Color: "bg-blue-500"},
		{ID: "2", Name: "Dev Tools", Color: "bg-emerald-500"},
		{ID: "3", Name: "Design", Color: "bg-purple-500"},
		{ID: "4", Name: "Reading", Color: "bg-orange-500"},
	}
}

// DefaultBookmarks returns the bookmarks a fresh installation starts with.
func DefaultBookmarks() []Bookmark {
	return []Bookmark{
		{ID: "101", Title: "Gmail", URL: "https://mail.google.com", CategoryID: "1"},
		{ID: "102", Title: "Bilibili", URL: "https://www.bilibili.com", CategoryID: "1"},
		{ID: "201", Title: "GitHub", URL: "https://github.com", CategoryID: "2"},
		{ID: "202", Title: "Stack Overflow", URL: "https://stackoverflow.com", CategoryID: "2"},
		{ID: "203", Title: "ChatGPT", URL: "https://chat.openai.com", CategoryID: "2"},
		{ID: "301", Title: "Dribbble", URL: "https://dribbble.com", CategoryID: "3"},
		{ID: "302", Title: "Figma", URL: "https://figma.com", CategoryID: "3"},
		{ID: "401", Title: "sspai", URL: "https://sspai.com", CategoryID: "4"},
	}
}

// DefaultConfig returns the presentation settings of a fresh installation.
func DefaultConfig() DashboardConfig {
	return DashboardConfig{
		AppName:     "FlatNav",
		AppSubtitle: "your personal start page",
		AppFontSize: "text-4xl",
		Theme:       "light",
	}
}

// DefaultDashboard assembles the initial dashboard with the first category
// selected.
func DefaultDashboard() Dashboard {
	categories := DefaultCategories()
	return Dashboard{
		Bookmarks:        DefaultBookmarks(),
		Categories:       categories,
		Config:           DefaultConfig(),
		ActiveCategoryID: categories[0].ID,
	}
}
