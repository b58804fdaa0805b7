package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/xerrors"

	"github.com/portage-tools/portmeta/config"
	"github.com/portage-tools/portmeta/eix"
	"github.com/portage-tools/portmeta/glsa"
	"github.com/portage-tools/portmeta/utils"
)

var (
	target     = flag.String("target", "", "extraction target (packages, glsa)")
	input      = flag.String("input", "", "eix XML dump to read (defaults to stdin)")
	glsaDir    = flag.String("glsa-dir", "", "advisory directory (defaults to the configured repository path)")
	outDir     = flag.String("out", "out", "output directory for JSON records")
	configPath = flag.String("config", "", "configuration file (defaults to the per-user location)")
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	flag.Parse()
	appFs := afero.NewOsFs()

	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(appFs, cfgPath)
	if err != nil {
		return xerrors.Errorf("config error: %w", err)
	}

	switch *target {
	case "packages":
		data, err := readInput(*input)
		if err != nil {
			return xerrors.Errorf("failed to read index dump: %w", err)
		}
		packages := eix.ParsePackages(data)
		log.Printf("extracted %d packages", len(packages))
		for _, pkg := range packages {
			dir := filepath.Join(*outDir, "packages", pkg.Category)
			if err := utils.WriteJSON(appFs, dir, pkg.Name+".json", pkg); err != nil {
				return xerrors.Errorf("failed to write package record: %w", err)
			}
		}
	case "glsa":
		dir := *glsaDir
		if dir == "" {
			dir = cfg.GLSA.RepoPath
		}
		repo := glsa.NewRepository(dir)
		advisories, err := repo.LoadAll()
		if err != nil {
			return xerrors.Errorf("error in GLSA load: %w", err)
		}
		log.Printf("extracted %d advisories", len(advisories))
		for _, adv := range advisories {
			if err := utils.WriteJSON(appFs, filepath.Join(*outDir, "glsa"), adv.ID+".json", adv); err != nil {
				return xerrors.Errorf("failed to write advisory record: %w", err)
			}
		}
	default:
		flag.Usage()
		return xerrors.New("target must be one of: packages, glsa")
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
