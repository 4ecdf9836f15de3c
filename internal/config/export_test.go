package config

func GetEnvAsBool(key string, defaultValue bool) bool {
	return getEnvAsBool(key, defaultValue)
}

func AllNonEmpty(keyValues map[string]string) error {
	return allNonEmpty(keyValues)
}

func OneOf(key, value string, allowed []string) error {
	return oneOf(key, value, allowed)
}

func Load(lookup func(string) (string, bool)) (*Config, error) {
	return load(lookup)
}
