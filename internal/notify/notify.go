// Package notify shows native dialogs: warnings for the user and the
// music file picker.
package notify

import (
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iburimskiy/heart-visualization/internal/audio"
)

// Notifier shows dialogs titled after the window.
type Notifier struct {
	Title string
	log   *zap.Logger
}

func New(log *zap.Logger, title string) *Notifier {
	return &Notifier{Title: title, log: log}
}

// Notice pops up a warning without blocking the caller.
func (n *Notifier) Notice(msg string) {
	go func() {
		err := zenity.Warning(msg, zenity.Title(n.Title))
		if err != nil && !errors.Is(err, zenity.ErrCanceled) {
			n.log.Warn("notice dialog", zap.String("message", msg), zap.Error(err))
		}
	}()
}

// ChooseMusic asks for an audio file. An empty path with a nil error means
// the user cancelled.
func (n *Notifier) ChooseMusic() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Choose Music"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: audio.Patterns,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", errors.Wrap(err, "select music")
	}
	return path, nil
}
