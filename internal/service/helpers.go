package service

import "strings"

// maskEmailAddress hides most of the local part so submitter addresses never
// appear verbatim in logs or published events.
func maskEmailAddress(email string) string {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return ""
	}
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***"
	}
	local := parts[0]
	domain := parts[1]
	switch {
	case local == "":
		local = "***"
	case len(local) <= 2:
		local = local[:1] + "***"
	default:
		local = local[:1] + "***" + local[len(local)-1:]
	}
	return local + "@" + domain
}
