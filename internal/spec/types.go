package spec

// Manipulator is one decoded input specification. Zero values mean
// "absent" and are filled in by the resolver.
type Manipulator struct {
	Fields         []Field  `yaml:"fields" toml:"fields" json:"fields"`
	Class          string   `yaml:"class" toml:"class" json:"class"`
	Package        string   `yaml:"package" toml:"package" json:"package"`
	KeyClass       string   `yaml:"key-class" toml:"key-class" json:"key-class"`
	Imports        []string `yaml:"imports" toml:"imports" json:"imports"`
	PluginID       string   `yaml:"plugin-id" toml:"plugin-id" json:"plugin-id"`
	ContentVersion int      `yaml:"content-version" toml:"content-version" json:"content-version"`
}

// Field is one declared property of the generated data holder.
type Field struct {
	Name      string `yaml:"name" toml:"name" json:"name"`
	Type      string `yaml:"type" toml:"type" json:"type"`
	FullType  string `yaml:"full-type" toml:"full-type" json:"full-type"`
	Transient bool   `yaml:"transient" toml:"transient" json:"transient"`
	Optional  bool   `yaml:"optional" toml:"optional" json:"optional"`
	Default   string `yaml:"default" toml:"default" json:"default"`
	Key       Key    `yaml:"key" toml:"key" json:"key"`
}

// Key holds the user overrides for a field's key metadata.
type Key struct {
	Name        string `yaml:"name" toml:"name" json:"name"`
	DataQuery   string `yaml:"data-query" toml:"data-query" json:"data-query"`
	ID          string `yaml:"id" toml:"id" json:"id"`
	DisplayName string `yaml:"display-name" toml:"display-name" json:"display-name"`
}
