package domain

import (
	"path"
	"sort"
	"strings"
)

// Vault folders under an owner prefix.
const (
	VaultFolderReports       = "reports"
	VaultFolderPrescriptions = "prescriptions"
	VaultFolderInsurance     = "insurance"
	VaultFolderBills         = "bills"
)

// VaultPath joins an owner prefix, folder and file name into an object path.
func VaultPath(ownerPrefix, folder, fileName string) string {
	return path.Join(ownerPrefix, folder, fileName)
}

// UnderPrefix reports whether objectPath is the prefix itself (a root marker
// object) or lives beneath it.
func UnderPrefix(objectPath, ownerPrefix string) bool {
	return objectPath == ownerPrefix || strings.HasPrefix(objectPath, ownerPrefix+"/")
}

// PathSet is a set of object paths.
type PathSet map[string]struct{}

// Add inserts paths into the set.
func (s PathSet) Add(paths ...string) {
	for _, p := range paths {
		s[p] = struct{}{}
	}
}

// Sorted returns the members in lexical order.
func (s PathSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// VaultEntry is one item returned by the object store's folder listing.
// Folders come back with a nil ID and no metadata.
type VaultEntry struct {
	Name     string
	ID       *string
	Metadata map[string]any
}
