// Package fileutil provides file permission constants shared by the
// generator's output writer.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for temporary staging files
// before they are renamed into place (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the file permission mode for generated source code
// files intended to be read by build tools and other users.
const ReadableByAll os.FileMode = 0o644

// DirDefault is the permission mode used when creating output directories.
const DirDefault os.FileMode = 0o755
