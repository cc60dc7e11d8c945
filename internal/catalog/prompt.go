package catalog

import (
	"net/url"
	"strings"
)

// DefaultAssistantURL is the chat assistant prompts are sent to.
const DefaultAssistantURL = "https://chat.openai.com/"

// PromptURL builds the link a prompt opens: the assistant URL with the
// prompt title as its q query parameter. Other query parameters on the
// assistant URL are kept. An unparsable assistant URL falls back to
// DefaultAssistantURL.
func PromptURL(assistantURL, title string) string {
	u, err := url.Parse(strings.TrimSpace(assistantURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		u, _ = url.Parse(DefaultAssistantURL)
	}
	q := u.Query()
	q.Set("q", title)
	u.RawQuery = q.Encode()
	return u.String()
}
