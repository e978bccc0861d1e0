package flexion

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "An English inflection toolkit"
	MsgRootLong = `flexion converts words between singular and plural forms and between
naming conventions (CamelCase, snake_case, human readable), driven by an
ordered rule engine you can extend with your own rules.`

	MsgPluralizeShort   = "Print the plural form of each word"
	MsgSingularizeShort = "Print the singular form of each word"
	MsgCamelizeShort    = "Convert snake_case words to CamelCase"
	MsgUnderscoreShort  = "Convert CamelCase words to snake_case"
	MsgHumanizeShort    = "Turn attribute names into readable text"
	MsgTitleizeShort    = "Capitalize each word of the humanized form"
	MsgOrdinalizeShort  = "Append ordinal suffixes to numbers"
	MsgTableizeShort    = "Derive table names from class names"
	MsgClassifyShort    = "Derive class names from table names"
	MsgDasherizeShort   = "Replace underscores with dashes"
	MsgRulesShort       = "Show the rule chains for a locale"
	MsgRulesLong        = "Show a locale's rule chains, uncountable words and acronyms, highest precedence first."
	MsgCheckShort       = "Report how a word is classified"
	MsgGenConfigShort   = "Write a starter rules file"
	MsgExplainShort     = "Show documentation on a topic"
	MsgCompletionShort  = "Generate shell completion script"
	MsgVersionShort     = "Print version information"

	// Status messages
	MsgConfigWritten  = "Wrote starter rules file to %s"
	MsgAvailableTopic = "Available topics:"

	// Error messages
	MsgErrNoCommand    = "no command specified"
	MsgErrBadNumber    = "not a number: %q"
	MsgErrUnknownTopic = "unknown topic %q"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagLocale  = "Locale whose rules to use"
	MsgFlagRules   = "Path to a rules file (overrides XDG discovery)"
	MsgFlagLower   = "Lowercase the leading segment (camelCase)"
	MsgFlagFormat  = "Output format: table, plain, json or yaml"
	MsgFlagOutput  = "Write to this path instead of the default"
)

// MsgUsageTemplate is the custom usage template with formatted sections
const MsgUsageTemplate = `{{boldUpper "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "Available Commands:"}}{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{boldUpper .Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

{{boldUpper "Additional Commands:"}}{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
