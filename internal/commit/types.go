package commit

// Type is one of the Angular commit types offered to the user.
type Type struct {
	Tag         string
	Description string
}

// Types is the closed set of commit types, in display order.
var Types = [...]Type{
	{Tag: "feat", Description: "A new feature"},
	{Tag: "fix", Description: "A bug fix"},
	{Tag: "docs", Description: "Documentation only changes"},
	{Tag: "style", Description: "Changes that do not affect the meaning of the code"},
	{Tag: "refactor", Description: "A code change that neither fixes a bug nor adds a feature"},
	{Tag: "perf", Description: "A code change that improves performance"},
	{Tag: "test", Description: "Adding missing tests or correcting existing tests"},
	{Tag: "build", Description: "Changes that affect the build system or external dependencies"},
	{Tag: "ci", Description: "Changes to our CI configuration files and scripts"},
	{Tag: "chore", Description: "Other changes that don't modify src or test files"},
	{Tag: "revert", Description: "Reverts a previous commit"},
}

// LookupType returns the Type registered under tag.
func LookupType(tag string) (Type, bool) {
	for _, t := range Types {
		if t.Tag == tag {
			return t, true
		}
	}
	return Type{}, false
}
