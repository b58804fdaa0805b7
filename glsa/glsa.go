package glsa

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/samber/lo"
	"golang.org/x/xerrors"

	"github.com/portage-tools/portmeta/xmldoc"
)

// ErrMalformed reports a document from which no advisory could be
// extracted at all. Missing optional fields never trigger it; they degrade
// to their documented defaults instead.
var ErrMalformed = xerrors.New("malformed advisory document")

// ParseAdvisory extracts a security advisory from raw XML. advisoryID is
// the identifier the document was found under, typically derived from its
// filename.
func ParseAdvisory(advisoryID string, data []byte) (*SecurityAdvisory, error) {
	doc := xmldoc.Parse(data)
	if doc == nil {
		return nil, xerrors.Errorf("advisory %s: %w", advisoryID, ErrMalformed)
	}
	root := doc.Root()

	adv := &SecurityAdvisory{
		ID:               advisoryID,
		Title:            firstText(root, "title"),
		Synopsis:         firstText(root, "synopsis"),
		Product:          firstText(root, "product"),
		Announced:        firstText(root, "announced"),
		Revised:          firstText(root, "revised"),
		RevisionCount:    firstAttr(root, "revised", "count", "01"),
		Access:           firstText(root, "access"),
		Background:       firstText(root, "background/p"),
		Description:      firstText(root, "description/p"),
		Impact:           firstText(root, "impact/p"),
		ImpactType:       firstAttr(root, "impact", "type", "normal"),
		Workaround:       firstText(root, "workaround/p"),
		Resolutions:      parseResolutions(root),
		AffectedPackages: parseAffectedPackages(root),
	}

	bugs := lo.Map(root.SelectElements("bug"), func(el *etree.Element, _ int) string {
		return el.Text()
	})
	adv.Bugs = lo.Filter(bugs, func(b string, _ int) bool {
		return b != ""
	})

	for _, uri := range root.FindElements("references/uri") {
		ref := uri.SelectAttrValue("link", "")
		if ref == "" {
			ref = uri.Text()
		}
		if ref != "" {
			adv.References = append(adv.References, ref)
		}
	}

	return adv, nil
}

// firstText returns the trimmed string value of the first element at path,
// or "" when no element matches.
func firstText(root *etree.Element, path string) string {
	el := root.FindElement(path)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(xmldoc.Content(el))
}

func firstAttr(root *etree.Element, path, attr, dflt string) string {
	if el := root.FindElement(path); el != nil {
		return el.SelectAttrValue(attr, dflt)
	}
	return dflt
}

func parseAffectedPackages(root *etree.Element) []AffectedPackage {
	var packages []AffectedPackage
	for _, pkg := range root.FindElements("affected/package") {
		packages = append(packages, AffectedPackage{
			Name:       pkg.SelectAttrValue("name", ""),
			Auto:       pkg.SelectAttrValue("auto", "yes"),
			Arch:       pkg.SelectAttrValue("arch", "*"),
			Unaffected: rangeConditions(pkg, "unaffected"),
			Vulnerable: rangeConditions(pkg, "vulnerable"),
		})
	}
	return packages
}

func rangeConditions(pkg *etree.Element, tag string) []RangeCondition {
	var conds []RangeCondition
	for _, el := range pkg.SelectElements(tag) {
		conds = append(conds, RangeCondition{
			Range: el.SelectAttrValue("range", ""),
			Slot:  el.SelectAttrValue("slot", ""),
			Value: strings.TrimSpace(el.Text()),
		})
	}
	return conds
}
