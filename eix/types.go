package eix

// PackageVersion is one version entry of a package as reported by the
// index dump. Optional attributes keep their zero value when the dump
// omits them. List fields preserve document order and may repeat; nothing
// is sorted or deduplicated.
type PackageVersion struct {
	ID         string
	EAPI       string
	Repository string
	Virtual    bool
	Installed  bool
	SrcURI     string

	// IUseDefault holds the subset of IUse declared default-on.
	IUse        []string
	IUseDefault []string

	// Dependency expressions are carried verbatim, never validated.
	Depend      string
	RDepend     string
	BDepend     string
	PDepend     string
	IDepend     string
	RequiredUse string

	Masks       []string
	Unmasks     []string
	Properties  []string
	Restricts   []string
	UseEnabled  []string
	UseDisabled []string
}

// Package is a category/name pair with every version the index reports
// for it, in document order.
type Package struct {
	Category    string
	Name        string
	Description string
	Homepage    string
	Licenses    []string
	Versions    []PackageVersion
}

// FullName returns the category/name atom.
func (p Package) FullName() string {
	return p.Category + "/" + p.Name
}

// Installed reports whether any version of the package is installed.
func (p Package) Installed() bool {
	for _, v := range p.Versions {
		if v.Installed {
			return true
		}
	}
	return false
}

// InstalledVersion returns the first installed version in document order,
// or nil when none is installed.
func (p Package) InstalledVersion() *PackageVersion {
	for i := range p.Versions {
		if p.Versions[i].Installed {
			return &p.Versions[i]
		}
	}
	return nil
}
