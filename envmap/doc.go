// Package envmap validates and narrows environment-variable maps.
//
// Every validator takes a raw Source, whose values may be unset or of the
// wrong type, and returns a fresh EnvMap in which every value is a defined
// string. Validation stops at the first invalid key and reports it as a
// *ValidationError; no partial result is ever returned.
//
// Static and Public are meant for call sites that name each variable
// explicitly, so build tooling can substitute literal lookups:
//
//	env, err := envmap.Static(envmap.Source{
//		"DB_HOST": envmap.Lookup("DB_HOST"),
//		"DB_NAME": envmap.Lookup("DB_NAME"),
//	})
//
// Dynamic narrows a larger source, usually the whole process environment:
//
//	env, err := envmap.Dynamic(envmap.Environ(), []string{"DB_HOST", "DB_NAME"})
package envmap
