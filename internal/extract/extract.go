// Package extract strips comment delimiters from documentation comment
// blocks, producing the raw annotation body the converter consumes.
package extract

import "strings"

// Strip removes comment delimiters from a block-style or line-style
// documentation comment. Handled forms:
//
//   - /** … */ and /*! … */ blocks, including a leading " * " gutter
//   - /// and //! line comments
//
// Text that carries no recognized delimiters passes through unchanged.
// Strip is a pure string transform and never fails.
func Strip(source string) string {
	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")

		switch {
		case strings.HasPrefix(trimmed, "/**") || strings.HasPrefix(trimmed, "/*!"):
			trimmed = strings.TrimPrefix(trimmed[3:], " ")
			trimmed = trimTrailer(trimmed)
			if trimmed == "" {
				continue
			}
		case strings.HasPrefix(trimmed, "///") || strings.HasPrefix(trimmed, "//!"):
			trimmed = strings.TrimPrefix(trimmed[3:], " ")
		case strings.HasPrefix(trimmed, "*/"):
			continue
		case strings.HasPrefix(trimmed, "*"):
			trimmed = strings.TrimPrefix(trimmed[1:], " ")
			trimmed = trimTrailer(trimmed)
		default:
			trimmed = trimTrailer(line)
		}

		out = append(out, trimmed)
	}

	return strings.Join(out, "\n")
}

// trimTrailer drops a closing block-comment delimiter at the end of a line.
func trimTrailer(line string) string {
	if strings.HasSuffix(line, "*/") {
		return strings.TrimRight(strings.TrimSuffix(line, "*/"), " ")
	}
	return line
}
