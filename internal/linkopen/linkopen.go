// Package linkopen hands URLs to the platform: the system browser or the
// clipboard. Callers fire and forget; failures are logged and turned into
// a status line, never into an error the screens have to handle.
package linkopen

import (
	"io"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
	"go.uber.org/zap"

	"github.com/abordi-ai/abordi/internal/messages"
)

func init() {
	// The TUI owns the terminal; the launcher's own output would corrupt it.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Opener opens a URL outside the application.
type Opener interface {
	Open(url string) error
}

// Copier places text on a clipboard.
type Copier interface {
	Copy(text string) error
}

// Browser opens URLs in the system browser.
type Browser struct{}

func (Browser) Open(url string) error {
	return browser.OpenURL(url)
}

// Clipboard writes to the system clipboard.
type Clipboard struct{}

func (Clipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// OpenCmd opens url in the background and reports the outcome as a StatusMsg.
func OpenCmd(o Opener, logger *zap.Logger, url string) tea.Cmd {
	return func() tea.Msg {
		if err := o.Open(url); err != nil {
			logger.Warn("open url failed", zap.String("url", url), zap.Error(err))
			return messages.StatusMsg{Text: "Could not open " + url}
		}
		logger.Info("opened url", zap.String("url", url))
		return messages.StatusMsg{Text: "Opened " + url}
	}
}

// CopyCmd copies url in the background and reports the outcome as a StatusMsg.
func CopyCmd(c Copier, logger *zap.Logger, url string) tea.Cmd {
	return func() tea.Msg {
		if err := c.Copy(url); err != nil {
			logger.Warn("copy url failed", zap.String("url", url), zap.Error(err))
			return messages.StatusMsg{Text: "Clipboard unavailable"}
		}
		logger.Debug("copied url", zap.String("url", url))
		return messages.StatusMsg{Text: "Copied " + url}
	}
}
