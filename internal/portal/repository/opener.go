package repository

import "github.com/pkg/browser"

// BrowserOpener opens URLs in the default browser.
type BrowserOpener struct{}

func (BrowserOpener) Open(url string) error {
	return browser.OpenURL(url)
}
