package eix

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/portage-tools/portmeta/xmldoc"
)

// ParsePackages extracts every package record from an eix XML dump,
// preserving category and package document order. The dump is parsed
// leniently: fragments that cannot be recovered are dropped and the
// entries around them are still returned. Input from which no tree can be
// built yields an empty slice.
func ParsePackages(data []byte) []Package {
	doc := xmldoc.Parse(data)
	if doc == nil {
		return nil
	}

	var packages []Package
	for _, cat := range doc.FindElements("//category") {
		name := cat.SelectAttrValue("name", "")
		for _, pkg := range cat.SelectElements("package") {
			packages = append(packages, parsePackage(pkg, name))
		}
	}
	return packages
}

func parsePackage(el *etree.Element, category string) Package {
	pkg := Package{
		Category: category,
		Name:     el.SelectAttrValue("name", ""),
	}
	if desc := el.SelectElement("description"); desc != nil {
		pkg.Description = desc.Text()
	}
	if home := el.SelectElement("homepage"); home != nil {
		pkg.Homepage = home.Text()
	}
	if lic := el.SelectElement("licenses"); lic != nil {
		pkg.Licenses = strings.Fields(lic.Text())
	}
	for _, v := range el.SelectElements("version") {
		pkg.Versions = append(pkg.Versions, parseVersion(v))
	}
	return pkg
}

func parseVersion(el *etree.Element) PackageVersion {
	v := PackageVersion{
		ID:         el.SelectAttrValue("id", ""),
		EAPI:       el.SelectAttrValue("EAPI", ""),
		Repository: el.SelectAttrValue("repository", ""),
		Virtual:    el.SelectAttrValue("virtual", "") == "1",
		Installed:  el.SelectAttrValue("installed", "") == "1",
		SrcURI:     el.SelectAttrValue("srcURI", ""),
	}

	for _, iuse := range el.SelectElements("iuse") {
		flags := strings.Fields(iuse.Text())
		v.IUse = append(v.IUse, flags...)
		// default="1" marks every flag declared by that element.
		if iuse.SelectAttrValue("default", "") == "1" {
			v.IUseDefault = append(v.IUseDefault, flags...)
		}
	}

	v.Masks = attrList(el, "mask", "type")
	v.Unmasks = attrList(el, "unmask", "type")
	v.Properties = attrList(el, "properties", "flag")
	v.Restricts = attrList(el, "restrict", "flag")

	// eix emits at most one use element per state; only the first is
	// consulted either way.
	v.UseEnabled = useFlags(el, "1")
	v.UseDisabled = useFlags(el, "0")

	v.Depend = childText(el, "depend")
	v.RDepend = childText(el, "rdepend")
	v.BDepend = childText(el, "bdepend")
	v.PDepend = childText(el, "pdepend")
	v.IDepend = childText(el, "idepend")
	v.RequiredUse = childText(el, "required_use")

	return v
}

// attrList collects the given attribute across all matching child
// elements, skipping elements that lack it.
func attrList(el *etree.Element, tag, attr string) []string {
	var values []string
	for _, c := range el.SelectElements(tag) {
		if a := c.SelectAttr(attr); a != nil {
			values = append(values, a.Value)
		}
	}
	return values
}

func useFlags(el *etree.Element, state string) []string {
	for _, use := range el.SelectElements("use") {
		if use.SelectAttrValue("enabled", "") == state {
			return strings.Fields(use.Text())
		}
	}
	return nil
}

func childText(el *etree.Element, tag string) string {
	if c := el.SelectElement(tag); c != nil {
		return c.Text()
	}
	return ""
}
