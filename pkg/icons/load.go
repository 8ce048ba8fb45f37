package icons

import (
	"fmt"
	"image"
	"io/fs"
	"path"

	// Decoders for the formats icons may be stored in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/go-drift/searchfield/pkg/errors"
)

// Names are the file names of the icons inside a directory.
type Names struct {
	Search  string `yaml:"search" toml:"search"`
	Close   string `yaml:"close" toml:"close"`
	Loading string `yaml:"loading" toml:"loading"`
}

// DefaultNames are the file names used when none are configured.
var DefaultNames = Names{
	Search:  "search.png",
	Close:   "close.png",
	Loading: "loading.gif",
}

func (n Names) withDefaults() Names {
	if n.Search == "" {
		n.Search = DefaultNames.Search
	}
	if n.Close == "" {
		n.Close = DefaultNames.Close
	}
	if n.Loading == "" {
		n.Loading = DefaultNames.Loading
	}
	return n
}

// Load decodes the three icons from fsys. Empty names fall back to
// DefaultNames. Any missing or undecodable file fails the whole load with
// a KindResource error wrapping ErrMissingIcon.
func Load(fsys fs.FS, names Names) (Set, error) {
	names = names.withDefaults()
	var set Set
	var err error
	if set.Search, err = decode(fsys, names.Search); err != nil {
		return Set{}, err
	}
	if set.Close, err = decode(fsys, names.Close); err != nil {
		return Set{}, err
	}
	if set.Loading, err = decode(fsys, names.Loading); err != nil {
		return Set{}, err
	}
	return set, nil
}

func decode(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(path.Clean(name))
	if err != nil {
		return nil, resourceError(name, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, resourceError(name, err)
	}
	Logger().Debug("icon decoded", "name", name, "format", format, "bounds", img.Bounds())
	return img, nil
}

func resourceError(name string, err error) error {
	return &errors.WidgetError{
		Op:       "icons.Load",
		Kind:     errors.KindResource,
		Resource: name,
		Err:      fmt.Errorf("%w: %w", ErrMissingIcon, err),
	}
}
