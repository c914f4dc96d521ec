package event

import "strings"

// ParseAliases builds an AliasTable from a configuration string of the form
// "name=email, name=email". Entries missing an "=" or with an empty name or
// email are skipped silently; names are lowercased for case-insensitive
// lookup.
func ParseAliases(text string) AliasTable {
	table := AliasTable{}
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" || !strings.Contains(part, "=") {
			continue
		}
		name, email, _ := strings.Cut(part, "=")
		name = strings.ToLower(strings.TrimSpace(name))
		email = strings.TrimSpace(email)
		if name != "" && email != "" {
			table[name] = email
		}
	}
	return table
}
