package service

// optional normalizes an empty string to absent. Every write path funnels
// its nullable fields through here before they reach a repository.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
