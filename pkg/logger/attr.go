package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Input records the (possibly masked) classified value under "input".
func Input(value string) slog.Attr {
	return slog.String("input", value)
}

// Category records the classifier family under "category".
func Category(name string) slog.Attr {
	return slog.String("category", name)
}

// Brand records the detected brand under "brand".
// An empty name means nothing matched and yields an empty Attr.
func Brand(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("brand", name)
}

// Valid records the classification verdict under "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// Command records the CLI subcommand under "command".
func Command(name string) slog.Attr {
	return slog.String("command", name)
}
