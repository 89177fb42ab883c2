package services

// StrongResumeMessage is returned as the single suggestion when nothing is
// missing from any category.
const StrongResumeMessage = "No suggestions, resume is strong!"

// MissingItems returns the required items absent from found, preserving
// required's original order.
func MissingItems(found, required []string) []string {
	present := make(map[string]struct{}, len(found))
	for _, item := range found {
		present[item] = struct{}{}
	}

	var missing []string
	for _, item := range required {
		if _, ok := present[item]; !ok {
			missing = append(missing, item)
		}
	}
	return missing
}

// TopSuggestions concatenates the missing lists in priority order (skills,
// then tools, then certifications) and truncates to limit entries. When all
// three lists are empty it returns the strong-resume sentinel instead of an
// empty list.
func TopSuggestions(missingSkills, missingTools, missingCerts []string, limit int) []string {
	suggestions := make([]string, 0, len(missingSkills)+len(missingTools)+len(missingCerts))
	suggestions = append(suggestions, missingSkills...)
	suggestions = append(suggestions, missingTools...)
	suggestions = append(suggestions, missingCerts...)

	if len(suggestions) == 0 {
		return []string{StrongResumeMessage}
	}

	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
