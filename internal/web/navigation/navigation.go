// Package navigation provides utilities for managing navigation state.
package navigation

// Context represents the navigation context for a page.
type Context struct {
	ActivePage string
	PageTitle  string
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activePage string) *Context {
	return &Context{
		PageTitle:  pageTitle,
		ActivePage: activePage,
	}
}

// IsActive checks if the given page matches the current context.
func (c *Context) IsActive(page string) bool {
	return c.ActivePage == page
}
