package latex

// ListEnvs names the LaTeX environments for the two list kinds.
type ListEnvs struct {
	Ordered   string
	Unordered string
}

// Config is the static per-template configuration. Configs are constructed
// once and never mutated; generators read but never write them.
type Config struct {
	DocumentClass  string
	Packages       []string
	TableStyle     string
	ListEnvs       ListEnvs
	AuthorFormat   string
	AbstractFormat string
	KeywordsFormat string
}

var ieeeConfig = Config{
	DocumentClass: `\documentclass[conference]{IEEEtran}`,
	Packages: []string{
		`\usepackage{array}`,
		`\usepackage{booktabs}`,
		`\usepackage{graphicx}`,
		`\usepackage{amsmath}`,
		`\usepackage{amssymb}`,
		`\usepackage{cite}`,
	},
	TableStyle:     "ieee",
	ListEnvs:       ListEnvs{Ordered: "enumerate", Unordered: "itemize"},
	AuthorFormat:   "ieee_blocks",
	AbstractFormat: "standard",
	KeywordsFormat: "IEEEkeywords",
}

var acmConfig = Config{
	DocumentClass: `\documentclass[acmtog]{acmart}`,
	Packages: []string{
		`\usepackage{booktabs}`,
		`\usepackage{graphicx}`,
		`\usepackage{amsmath}`,
		`\usepackage{amssymb}`,
	},
	TableStyle:     "acm",
	ListEnvs:       ListEnvs{Ordered: "enumerate", Unordered: "itemize"},
	AuthorFormat:   "acm_blocks",
	AbstractFormat: "before_maketitle",
	KeywordsFormat: "keywords",
}

var springerConfig = Config{
	DocumentClass: `\documentclass[pdflatex,sn-mathphys-num]{sn-jnl}`,
	Packages: []string{
		`\usepackage{graphicx}`,
		`\usepackage{multirow}`,
		`\usepackage{amsmath,amssymb,amsfonts}`,
		`\usepackage{amsthm}`,
		`\usepackage{mathrsfs}`,
		`\usepackage[title]{appendix}`,
		`\usepackage{xcolor}`,
		`\usepackage{textcomp}`,
		`\usepackage{manyfoot}`,
		`\usepackage{booktabs}`,
	},
	TableStyle:     "springer",
	ListEnvs:       ListEnvs{Ordered: "enumerate", Unordered: "itemize"},
	AuthorFormat:   "springer_blocks",
	AbstractFormat: "abstract_command",
	KeywordsFormat: "keywords",
}
