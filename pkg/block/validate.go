package block

import "regexp"

// Arg is one user-supplied argument declaration: a name plus an arbitrary
// spec (type constraint, default, etc.) this package does not interpret.
type Arg struct {
	Name string
	Spec any
}

// AssertNoReservedNames fails for the first argument whose name matches the
// reserved pattern. Block types call this so user-chosen argument names
// cannot collide with parameter names the block itself depends on.
func AssertNoReservedNames(args []Arg, reserved *regexp.Regexp) error {
	for _, arg := range args {
		if reserved.MatchString(arg.Name) {
			return NewDefinitionError(KindConfiguration, ErrIllegalArgumentName, "",
				"Illegal argument name %s", arg.Name)
		}
	}
	return nil
}
