// Package locale provides the namespaced message lookup used to render
// user-facing text, including dispatch diagnoses. Bundles are plain maps;
// unknown locales and keys fall back to English, then to "".
package locale

type bundle map[string]map[string]string

var bundles = map[string]bundle{
	"en": {
		"command": {
			"missing_args":       "Missing arguments",
			"parse_failed":       "Failed to parse argument",
			"unknown_subcommand": "Unknown subcommand. Check the command usage with the help command.",
			"guild_only":         "This command only works inside a server.",
			"dm_only":            "This command only works in a direct message.",
			"admin_only":         "You need the Administrator permission to use this command.",
			"owner_only":         "This command is reserved for the bot owner.",
			"handler_failed":     "Something went wrong while running that command.",
		},
		"core": {
			"pong":           "Pong!",
			"prefix_set":     "Command prefix updated.",
			"config_set":     "Setting updated.",
			"config_reset":   "Setting reset to its default.",
			"config_unknown": "No such setting.",
		},
	},
}

// Locale resolves messages for one language.
type Locale struct {
	lang string
}

// New returns a Locale for lang, falling back to English for unknown languages.
func New(lang string) *Locale {
	if _, ok := bundles[lang]; !ok {
		lang = "en"
	}
	return &Locale{lang: lang}
}

// Translate implements command.Translator.
func (l *Locale) Translate(namespace, key string) string {
	if b, ok := bundles[l.lang]; ok {
		if s := b[namespace][key]; s != "" {
			return s
		}
	}
	if l.lang != "en" {
		return bundles["en"][namespace][key]
	}
	return ""
}

// RegisterBundle adds or extends a language bundle. Intended for plugins
// that ship their own message namespaces.
func RegisterBundle(lang, namespace string, messages map[string]string) {
	b, ok := bundles[lang]
	if !ok {
		b = bundle{}
		bundles[lang] = b
	}
	ns, ok := b[namespace]
	if !ok {
		ns = map[string]string{}
		b[namespace] = ns
	}
	for k, v := range messages {
		ns[k] = v
	}
}
