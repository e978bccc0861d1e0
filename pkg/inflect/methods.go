package inflect

// Transform methods on Inflector. Each transform has a ...For variant taking
// an explicit locale; the plain form uses the default locale.

// PluralizeFor returns the plural form of word under the named locale's rules
func (inf *Inflector) PluralizeFor(locale, word string) string {
	return pluralize(inf.Locale(locale), word)
}

// Pluralize returns the plural form of word
func (inf *Inflector) Pluralize(word string) string {
	return inf.PluralizeFor(inf.DefaultLocaleName(), word)
}

// SingularizeFor returns the singular form of word under the named locale's rules
func (inf *Inflector) SingularizeFor(locale, word string) string {
	return singularize(inf.Locale(locale), word)
}

// Singularize returns the singular form of word
func (inf *Inflector) Singularize(word string) string {
	return inf.SingularizeFor(inf.DefaultLocaleName(), word)
}

// CamelizeFor converts an underscored word to CamelCase under the named locale
func (inf *Inflector) CamelizeFor(locale, word string) string {
	return camelize(inf.Locale(locale), word, false)
}

// Camelize converts an underscored word to CamelCase
func (inf *Inflector) Camelize(word string) string {
	return inf.CamelizeFor(inf.DefaultLocaleName(), word)
}

// CamelizeLowerFor converts an underscored word to camelCase with a lowercase
// leading segment
func (inf *Inflector) CamelizeLowerFor(locale, word string) string {
	return camelize(inf.Locale(locale), word, true)
}

// CamelizeLower converts an underscored word to camelCase
func (inf *Inflector) CamelizeLower(word string) string {
	return inf.CamelizeLowerFor(inf.DefaultLocaleName(), word)
}

// UnderscoreFor converts a CamelCase word to snake_case under the named locale
func (inf *Inflector) UnderscoreFor(locale, word string) string {
	return underscore(inf.Locale(locale), word)
}

// Underscore converts a CamelCase word to snake_case
func (inf *Inflector) Underscore(word string) string {
	return inf.UnderscoreFor(inf.DefaultLocaleName(), word)
}

// HumanizeFor turns an attribute name into readable text under the named locale
func (inf *Inflector) HumanizeFor(locale, word string) string {
	return humanize(inf.Locale(locale), word)
}

// Humanize turns an attribute name into readable text
func (inf *Inflector) Humanize(word string) string {
	return inf.HumanizeFor(inf.DefaultLocaleName(), word)
}

// TitleizeFor capitalizes each word of the humanized form under the named locale
func (inf *Inflector) TitleizeFor(locale, word string) string {
	return titleize(inf.Locale(locale), word)
}

// Titleize capitalizes each word of the humanized form
func (inf *Inflector) Titleize(word string) string {
	return inf.TitleizeFor(inf.DefaultLocaleName(), word)
}

// TableizeFor derives a table name from a class name under the named locale
func (inf *Inflector) TableizeFor(locale, word string) string {
	return tableize(inf.Locale(locale), word)
}

// Tableize derives a table name from a class name
func (inf *Inflector) Tableize(word string) string {
	return inf.TableizeFor(inf.DefaultLocaleName(), word)
}

// ClassifyFor derives a class name from a table name under the named locale
func (inf *Inflector) ClassifyFor(locale, tableName string) string {
	return classify(inf.Locale(locale), tableName)
}

// Classify derives a class name from a table name
func (inf *Inflector) Classify(tableName string) string {
	return inf.ClassifyFor(inf.DefaultLocaleName(), tableName)
}

// ForeignKeyFor derives a foreign key column name from a class name under
// the named locale
func (inf *Inflector) ForeignKeyFor(locale, word string) string {
	return foreignKey(inf.Locale(locale), word)
}

// ForeignKey derives a foreign key column name from a class name
func (inf *Inflector) ForeignKey(word string) string {
	return inf.ForeignKeyFor(inf.DefaultLocaleName(), word)
}

// Dasherize replaces underscores with dashes
func (inf *Inflector) Dasherize(word string) string {
	return Dasherize(word)
}

// Demodulize strips everything up to and including the last "::" or "/"
func (inf *Inflector) Demodulize(path string) string {
	return Demodulize(path)
}

// Ordinal returns the ordinal suffix for n
func (inf *Inflector) Ordinal(n int) string {
	return Ordinal(n)
}

// Ordinalize returns n with its ordinal suffix appended
func (inf *Inflector) Ordinalize(n int) string {
	return Ordinalize(n)
}

// Package-level convenience functions bound to the Default Inflector.

// Pluralize returns the plural form of word
func Pluralize(word string) string { return Default.Pluralize(word) }

// Singularize returns the singular form of word
func Singularize(word string) string { return Default.Singularize(word) }

// Camelize converts an underscored word to CamelCase
func Camelize(word string) string { return Default.Camelize(word) }

// CamelizeLower converts an underscored word to camelCase
func CamelizeLower(word string) string { return Default.CamelizeLower(word) }

// Underscore converts a CamelCase word to snake_case
func Underscore(word string) string { return Default.Underscore(word) }

// Humanize turns an attribute name into readable text
func Humanize(word string) string { return Default.Humanize(word) }

// Titleize capitalizes each word of the humanized form
func Titleize(word string) string { return Default.Titleize(word) }

// Tableize derives a table name from a class name
func Tableize(word string) string { return Default.Tableize(word) }

// Classify derives a class name from a table name
func Classify(tableName string) string { return Default.Classify(tableName) }

// ForeignKey derives a foreign key column name from a class name
func ForeignKey(word string) string { return Default.ForeignKey(word) }
