package config

// Resolve picks one value from the three sources a setting can come from.
// Project file values win over command-line values, which win over the
// built-in default. Nil pointers mean "not set at this level".
func Resolve[T any](cfg *T, cli *T, def T) T {
	if cfg != nil {
		return *cfg
	}
	if cli != nil {
		return *cli
	}
	return def
}
