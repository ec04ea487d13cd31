package pipeline

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"go-activity-stats/internal/model"
)

const utf8BOM = "\ufeff"

// TransformRecords normalizes ingested rows in place: header names lose any
// byte order mark, quotes and surrounding whitespace, and values are trimmed.
// The row as read stays in Raw for duplicate detection.
func TransformRecords(ctx context.Context, rows []model.SourceRow) []model.SourceRow {
	changed := 0
	for i := range rows {
		if rows[i].Raw == nil {
			rows[i].Raw = rows[i].Record
		}
		normalized, touched := normalizeRecord(rows[i].Record)
		rows[i].Record = normalized
		if touched {
			changed++
		}
	}
	zerolog.Ctx(ctx).Debug().Int("rows", len(rows)).Int("normalized", changed).Msg("🔄 transformation done")
	return rows
}

func normalizeRecord(rec model.GenericRecord) (model.GenericRecord, bool) {
	out := make(model.GenericRecord, len(rec))
	touched := false
	for k, v := range rec {
		ck := cleanHeader(k)
		cv := strings.TrimSpace(v)
		if ck != k || cv != v {
			touched = true
		}
		out[ck] = cv
	}
	return out, touched
}

func cleanHeader(h string) string {
	h = strings.TrimPrefix(h, utf8BOM)
	h = strings.TrimSpace(h)
	return strings.ReplaceAll(h, `"`, "")
}
