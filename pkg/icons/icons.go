// Package icons loads and validates the three images the search field
// paints: the search and close action icons and the loading indicator.
package icons

import (
	stderrors "errors"
	"image"

	"github.com/go-drift/searchfield/pkg/errors"
)

// ErrMissingIcon is wrapped by every error about an absent or unreadable icon.
var ErrMissingIcon = stderrors.New("icons: missing icon")

// Set is the immutable trio of icons owned by a field.
type Set struct {
	Search  image.Image
	Close   image.Image
	Loading image.Image
}

// Validate returns a KindResource error naming the first missing icon.
func (s Set) Validate() error {
	for _, icon := range []struct {
		name string
		img  image.Image
	}{
		{"search", s.Search},
		{"close", s.Close},
		{"loading", s.Loading},
	} {
		if icon.img == nil || icon.img.Bounds().Empty() {
			return &errors.WidgetError{
				Op:       "icons.Validate",
				Kind:     errors.KindResource,
				Resource: icon.name,
				Err:      ErrMissingIcon,
			}
		}
	}
	return nil
}
