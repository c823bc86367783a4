package loading

// renderVariant returns the animation markup for the kind. Nothing is escaped,
// the values come from the project author.
func renderVariant(kind Kind, opts Options, graphic string) string {
	switch kind {
	case KindImg:
		return `<img src="` + opts.Src + `" alt="loading img">`
	case KindSvg:
		return graphic
	default:
		return ""
	}
}
