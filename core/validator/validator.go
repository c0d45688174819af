// Package validator provides small composable validation rules for command
// types. Rules are applied in order and the first violated rule wins; there is
// no error accumulation.
package validator

// Rule pairs a predicate with the error reported when it fails.
type Rule struct {
	Check func() bool
	Err   error
}

// Apply runs the rules in order and returns the error of the first rule whose
// check fails, or nil when all rules hold.
func Apply(rules ...Rule) error {
	for _, rule := range rules {
		if !rule.Check() {
			return rule.Err
		}
	}
	return nil
}
