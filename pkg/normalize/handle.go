package normalize

import "strings"

// Handle reduces a social-media handle in any of its pasted forms to the
// bare account name:
//
//	"@ferretpapa"                 -> "ferretpapa"
//	"instagram.com/ferretpapa/"   -> "ferretpapa"
//	"twitter.com/#!/ferretpapa"   -> "ferretpapa"
//	" @ ferretpapa "              -> "ferretpapa"
//
// URL-shaped values keep only the last path segment; a leading "@" or the
// legacy "#!" fragment marker is stripped; free-standing "@" tokens are
// removed and the remaining whitespace collapsed. A lone leading "/" with
// no host or further segments is not URL structure and is preserved
// ("/ferretpapa" stays "/ferretpapa"). Anything that matches none of these
// shapes passes through untouched apart from trimming, so values such as
// "_legal." are returned as-is.
func Handle(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	if strings.Contains(s, " ") {
		fields := strings.Fields(s)
		kept := make([]string, 0, len(fields))
		for _, f := range fields {
			if f == "@" {
				continue
			}
			kept = append(kept, f)
		}
		s = strings.Join(kept, " ")
	}

	// URL-shaped values: keep the trailing path segment. Index zero means
	// a lone leading slash, which is not URL structure and survives.
	if strings.Contains(s, "/") {
		trimmed := strings.TrimSuffix(s, "/")
		if idx := strings.LastIndex(trimmed, "/"); idx > 0 {
			s = trimmed[idx+1:]
		} else {
			s = trimmed
		}
	}

	s = strings.TrimPrefix(s, "#!")
	s = strings.TrimPrefix(s, "@")
	return s
}

// HandlePtr is Handle with nil passthrough for nullable columns.
func HandlePtr(s *string) *string {
	if s == nil {
		return nil
	}
	out := Handle(*s)
	return &out
}
