package gmailsrc

import "strings"

// BuildQuery composes a mail search query from optional filters. Clauses
// appear in fixed order (date range, sender, subject); empty filters
// contribute nothing. Filter values are passed through unvalidated.
func BuildQuery(dateFrom, dateTo, from, subject string) string {
	var clauses []string
	if dateFrom != "" {
		clauses = append(clauses, "after:"+dateFrom)
	}
	if dateTo != "" {
		clauses = append(clauses, "before:"+dateTo)
	}
	if from != "" {
		clauses = append(clauses, "from:"+from)
	}
	if subject != "" {
		clauses = append(clauses, "subject:"+subject)
	}
	return strings.Join(clauses, " ")
}
