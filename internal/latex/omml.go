package latex

import (
	"encoding/xml"
	"regexp"
	"strings"
)

// ommlNode is a generic view over Office Math Markup XML. Only the local
// element names matter; namespace prefixes are ignored.
type ommlNode struct {
	XMLName  xml.Name
	Children []ommlNode `xml:",any"`
	Text     string     `xml:",chardata"`
}

// ConvertOMML translates an OMML fragment to a LaTeX expression. Structural
// elements (fractions, scripts, radicals) are mapped; anything unrecognized
// contributes its character data. Conversion never fails: unparseable input
// degrades to tag-stripped text with common math symbols translated.
func ConvertOMML(ommlXML string) string {
	var root ommlNode
	if err := xml.Unmarshal([]byte(ommlXML), &root); err != nil {
		return fallbackOMML(ommlXML)
	}
	result := strings.TrimSpace(renderOMML(&root))
	if result == "" {
		return fallbackOMML(ommlXML)
	}
	return mathSymbols.Replace(result)
}

func renderOMML(n *ommlNode) string {
	switch n.XMLName.Local {
	case "f":
		num, den := "", ""
		for i := range n.Children {
			switch n.Children[i].XMLName.Local {
			case "num":
				num = renderOMML(&n.Children[i])
			case "den":
				den = renderOMML(&n.Children[i])
			}
		}
		return `\frac{` + num + `}{` + den + `}`
	case "sSup":
		return renderScript(n, "^")
	case "sSub":
		return renderScript(n, "_")
	case "rad":
		deg, expr := "", ""
		for i := range n.Children {
			switch n.Children[i].XMLName.Local {
			case "deg":
				deg = renderOMML(&n.Children[i])
			case "e":
				expr = renderOMML(&n.Children[i])
			}
		}
		if deg != "" {
			return `\sqrt[` + deg + `]{` + expr + `}`
		}
		return `\sqrt{` + expr + `}`
	case "r":
		var b strings.Builder
		collectText(n, &b)
		return b.String()
	default:
		var b strings.Builder
		for i := range n.Children {
			b.WriteString(renderOMML(&n.Children[i]))
		}
		if len(n.Children) == 0 {
			b.WriteString(strings.TrimSpace(n.Text))
		}
		return b.String()
	}
}

// renderScript handles sSup/sSub nodes: base element "e", script element
// "sup" or "sub".
func renderScript(n *ommlNode, op string) string {
	base, script := "", ""
	for i := range n.Children {
		switch n.Children[i].XMLName.Local {
		case "e":
			base = renderOMML(&n.Children[i])
		case "sup", "sub":
			script = renderOMML(&n.Children[i])
		}
	}
	return base + op + "{" + script + "}"
}

func collectText(n *ommlNode, b *strings.Builder) {
	b.WriteString(strings.TrimSpace(n.Text))
	for i := range n.Children {
		collectText(&n.Children[i], b)
	}
}

var ommlTags = regexp.MustCompile(`<[^>]+>`)

// fallbackOMML strips markup and translates symbol characters when the
// fragment cannot be parsed as XML.
func fallbackOMML(ommlXML string) string {
	text := ommlTags.ReplaceAllString(ommlXML, " ")
	text = strings.Join(strings.Fields(text), " ")
	return mathSymbols.Replace(text)
}

// mathSymbols maps common Unicode math characters onto LaTeX commands.
var mathSymbols = strings.NewReplacer(
	"∑", `\sum`,
	"∫", `\int`,
	"∏", `\prod`,
	"√", `\sqrt`,
	"∞", `\infty`,
	"≤", `\leq`,
	"≥", `\geq`,
	"≠", `\neq`,
	"±", `\pm`,
	"×", `\times`,
	"÷", `\div`,
	"→", `\rightarrow`,
	"∈", `\in`,
	"∂", `\partial`,
	"α", `\alpha`,
	"β", `\beta`,
	"γ", `\gamma`,
	"δ", `\delta`,
	"ε", `\epsilon`,
	"θ", `\theta`,
	"λ", `\lambda`,
	"μ", `\mu`,
	"π", `\pi`,
	"σ", `\sigma`,
	"φ", `\phi`,
	"ω", `\omega`,
	"Δ", `\Delta`,
	"Σ", `\Sigma`,
	"Ω", `\Omega`,
)
