package workspace

import (
	"strings"
)

const (
	shortIDLen  = 8
	maxDescLen  = 50
	placeholder = "task"
)

// BranchName renders the configured branch pattern for a task. The
// pattern understands {task_id} (first 8 characters of the id) and
// {short_description} (slugified title capped at 50 characters).
func BranchName(pattern, taskID, title string) string {
	shortID := taskID
	if len(shortID) > shortIDLen {
		shortID = shortID[:shortIDLen]
	}
	desc := slugify(title)
	if desc == "" {
		desc = placeholder
	}
	name := strings.ReplaceAll(pattern, "{task_id}", shortID)
	name = strings.ReplaceAll(name, "{short_description}", desc)
	return name
}

// slugify lowercases, maps every non-alphanumeric run to a single
// hyphen, and trims to the length cap.
func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	if len(slug) > maxDescLen {
		slug = strings.Trim(slug[:maxDescLen], "-")
	}
	return slug
}
