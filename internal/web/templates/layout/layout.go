// Package layout holds the page shell shared by every storefront page.
package layout

import "github.com/mcoot/freeplay/internal/view"

// PageData holds common data for all pages
type PageData struct {
	Title  string
	Active view.Page
}

type navItem struct {
	page  view.Page
	href  string
	label string
}

var nav = []navItem{
	{view.PageHome, "/", "Главная"},
	{view.PageLibrary, "/library", "Библиотека"},
	{view.PageStore, "/store", "Магазин"},
}

func documentTitle(title string) string {
	if title == "" {
		return "freePlay"
	}
	return title + " · freePlay"
}
