// Package dataset loads the static interpretation dataset merged verbatim
// into chart responses. The blob is opaque to the service.
package dataset

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
)

// Empty is the dataset served when no file is configured or loading fails.
var Empty = json.RawMessage(`{}`)

// Load reads the dataset file at path. A missing path, unreadable file or
// invalid JSON degrades to Empty; a broken dataset must never fail chart
// requests.
func Load(ctx context.Context, path string) json.RawMessage {
	if path == "" {
		return Empty
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.WarnContext(ctx, "dataset load failed, serving empty dataset", "path", path, "error", err)
		return Empty
	}

	if !json.Valid(data) {
		slog.WarnContext(ctx, "dataset file is not valid json, serving empty dataset", "path", path)
		return Empty
	}

	slog.InfoContext(ctx, "dataset loaded", "path", path, "bytes", len(data))
	return json.RawMessage(data)
}
