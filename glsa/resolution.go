package glsa

import (
	"strings"
	"unicode"

	"github.com/beevik/etree"

	"github.com/portage-tools/portmeta/xmldoc"
)

// parseResolutions segments the first resolution element's narrative into
// alternating prose/command pairs. Remediation sections interleave
// paragraphs with literal shell snippets; the walk keeps two accumulators
// and flushes them at every paragraph boundary, so a new paragraph always
// starts a fresh segment.
func parseResolutions(root *etree.Element) []Resolution {
	res := root.SelectElement("resolution")
	if res == nil {
		return nil
	}

	var (
		resolutions []Resolution
		textBuf     string
		codeBuf     string
	)
	flush := func() {
		if textBuf == "" && codeBuf == "" {
			return
		}
		r := Resolution{Text: strings.TrimSpace(textBuf)}
		if codeBuf != "" {
			r.Code = normalizeIndent(codeBuf)
		}
		resolutions = append(resolutions, r)
		textBuf = ""
		codeBuf = ""
	}

	xmldoc.Walk(res, func(el *etree.Element) {
		switch el.Tag {
		case "p":
			flush()
			textBuf = strings.TrimSpace(el.Text())
		case "code":
			codeBuf += el.Text()
		}
		if tail := strings.TrimSpace(xmldoc.Tail(el)); tail != "" {
			textBuf += " " + tail
		}
	})
	flush()

	return resolutions
}

// normalizeIndent strips the common leading-whitespace prefix shared by
// every non-blank line of a code block. Blank lines are left untouched,
// and input without a common indent comes back unchanged.
func normalizeIndent(code string) string {
	lines := strings.Split(code, "\n")

	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
		if minIndent < 0 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent <= 0 {
		return code
	}

	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = line[minIndent:]
		}
	}
	return strings.Join(lines, "\n")
}
