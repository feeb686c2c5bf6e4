package validate

// TranslateFunc passes a human-readable validation message through an
// external localization layer. The identity function is used when no
// translator is configured.
type TranslateFunc func(message string) string

// NoopTranslate returns the message unchanged.
func NoopTranslate(message string) string { return message }
