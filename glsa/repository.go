package glsa

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	pb "github.com/cheggaaa/pb/v3"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

const filePattern = "glsa-*.xml"

// Repository reads advisory documents from a portage tree checkout
// (metadata/glsa in the main repository).
type Repository struct {
	AppFs afero.Fs
	Dir   string
}

func NewRepository(dir string) Repository {
	return Repository{
		AppFs: afero.NewOsFs(),
		Dir:   dir,
	}
}

// Load parses the advisories with the given ids, typically the list
// reported by the system advisory checker. Advisories whose file is
// missing or malformed are logged and skipped; one bad document never
// aborts its siblings.
func (r Repository) Load(ids []string) []SecurityAdvisory {
	var advisories []SecurityAdvisory
	for _, id := range ids {
		path := filepath.Join(r.Dir, fmt.Sprintf("glsa-%s.xml", id))
		adv, err := r.load(id, path)
		if err != nil {
			log.Printf("skipping advisory %s: %s", id, err)
			continue
		}
		advisories = append(advisories, *adv)
	}
	return advisories
}

// LoadAll parses every advisory in the repository directory.
func (r Repository) LoadAll() ([]SecurityAdvisory, error) {
	paths, err := afero.Glob(r.AppFs, filepath.Join(r.Dir, filePattern))
	if err != nil {
		return nil, xerrors.Errorf("failed to list advisory directory: %w", err)
	}

	var advisories []SecurityAdvisory
	bar := pb.StartNew(len(paths))
	for _, path := range paths {
		adv, err := r.load(idFromPath(path), path)
		if err != nil {
			log.Printf("skipping advisory file %s: %s", path, err)
			bar.Increment()
			continue
		}
		advisories = append(advisories, *adv)
		bar.Increment()
	}
	bar.Finish()

	return advisories, nil
}

func (r Repository) load(id, path string) (*SecurityAdvisory, error) {
	data, err := afero.ReadFile(r.AppFs, path)
	if err != nil {
		return nil, xerrors.Errorf("failed to read advisory file: %w", err)
	}
	return ParseAdvisory(id, data)
}

// idFromPath turns ".../glsa-200710-30.xml" into "200710-30".
func idFromPath(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), ".xml")
	return strings.TrimPrefix(base, "glsa-")
}
