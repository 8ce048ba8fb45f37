package searchfield

import stderrors "errors"

var errNoSurface = stderrors.New("searchfield: nil text surface")
