package system

import "github.com/spf13/afero"

// AppFs is the filesystem used for reading harness files. Tests swap it for an
// in-memory filesystem.
var AppFs = afero.NewOsFs()
