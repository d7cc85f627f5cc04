package frontend_domain

type FeedPageData struct {
	Posts       []*Post
	CurrentPage int
	HasMore     bool
}

func (d FeedPageData) NextPage() int {
	return d.CurrentPage + 1
}

type SettingsPageData struct {
	// Username is what the input shows: the saved name, or what was typed
	// when the submission failed.
	Username   string
	FieldError string
}

type ErrorPageData struct {
	Title   string
	Message string
}
