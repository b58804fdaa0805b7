package glsa

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// RangeCondition is one version constraint of an affected-package entry.
// Range and Slot default to "" when the document omits the attribute.
type RangeCondition struct {
	Range string
	Slot  string
	Value string
}

// AffectedPackage describes one package an advisory applies to.
type AffectedPackage struct {
	Name       string
	Auto       string
	Arch       string
	Unaffected []RangeCondition
	Vulnerable []RangeCondition
}

// Resolution is one prose segment of an advisory's remediation
// instructions, optionally paired with the command block that follows it.
// Code is "" when the segment carries no commands.
type Resolution struct {
	Text string
	Code string
}

// SecurityAdvisory is a fully extracted advisory document. The ID is the
// external identifier the document was found under; whatever id the
// document itself claims is not trusted.
type SecurityAdvisory struct {
	ID               string
	Title            string
	Synopsis         string
	Product          string
	Announced        string
	Revised          string
	RevisionCount    string
	Bugs             []string
	Access           string
	Background       string
	Description      string
	Impact           string
	ImpactType       string
	Workaround       string
	Resolutions      []Resolution
	AffectedPackages []AffectedPackage
	References       []string
}

// AnnouncedTime parses the free-form announcement date.
func (a *SecurityAdvisory) AnnouncedTime() (time.Time, error) {
	return dateparse.ParseAny(a.Announced)
}

// RevisedTime parses the revision date. Revised carries the revision
// number after a colon ("May 22, 2006: 02"); only the date part is parsed.
func (a *SecurityAdvisory) RevisedTime() (time.Time, error) {
	date := strings.SplitN(a.Revised, ":", 2)[0]
	return dateparse.ParseAny(strings.TrimSpace(date))
}
