package pipeline

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"go-activity-stats/internal/model"
	"go-activity-stats/pkg/utils"
)

// Column names of the cardio activities export
const (
	FieldDate     = "Date"
	FieldType     = "Type"
	FieldDistance = "Distance (mi)"
	FieldDuration = "Duration"
	FieldPace     = "Average Pace"
	FieldClimb    = "Climb (ft)"
	FieldCalories = "Calories Burned"
	FieldGPXFile  = "GPX File"
)

// DateLayout is the timestamp format of the Date column.
const DateLayout = "2006-01-02 15:04:05"

// ValidateRecords maps every row onto a typed Activity. The first row that
// violates the export's contract aborts the run.
func ValidateRecords(ctx context.Context, rows []model.SourceRow) ([]model.Activity, error) {
	logger := zerolog.Ctx(ctx)

	activities := make([]model.Activity, 0, len(rows))
	for _, row := range rows {
		a, err := ToActivity(row)
		if err != nil {
			logger.Error().Err(err).Int("line", row.Line).Msg("❌ invalid record")
			return nil, err
		}
		activities = append(activities, a)
	}

	logger.Info().Int("activities", len(activities)).Msg("✅ validation done")
	return activities, nil
}

// ToActivity is the field-mapping step from a raw row to an Activity.
func ToActivity(row model.SourceRow) (model.Activity, error) {
	rec := row.Record
	a := model.Activity{Line: row.Line, Raw: row.Original()}

	date, err := required(row, FieldDate)
	if err != nil {
		return model.Activity{}, err
	}
	if a.Date, err = time.Parse(DateLayout, date); err != nil {
		return model.Activity{}, missing(row, FieldDate)
	}

	if _, ok := rec[FieldType]; !ok {
		return model.Activity{}, missing(row, FieldType)
	}
	a.Type = rec[FieldType]

	if a.Distance, err = requiredDecimal(row, FieldDistance); err != nil {
		return model.Activity{}, err
	}
	if a.Calories, err = requiredDecimal(row, FieldCalories); err != nil {
		return model.Activity{}, err
	}

	duration, ok := rec[FieldDuration]
	if !ok {
		return model.Activity{}, missing(row, FieldDuration)
	}
	if a.Duration, err = ParseClock(duration); err != nil {
		return model.Activity{}, &model.FieldError{Line: row.Line, Field: FieldDuration, Value: duration, Err: err}
	}

	// An empty pace means none was recorded; it never reaches the parser.
	if pace := rec[FieldPace]; pace != "" {
		v, err := ParseClock(pace)
		if err != nil {
			return model.Activity{}, &model.FieldError{Line: row.Line, Field: FieldPace, Value: pace, Err: err}
		}
		a.Pace = model.Pace{Value: v, Valid: true}
	}

	if climb := rec[FieldClimb]; climb != "" {
		v, err := utils.ParseDecimal(climb)
		if err != nil {
			return model.Activity{}, missing(row, FieldClimb)
		}
		a.Climb = decimal.NewNullDecimal(v)
	}

	a.GPXFile = rec[FieldGPXFile]
	return a, nil
}

func required(row model.SourceRow, field string) (string, error) {
	v, ok := row.Record[field]
	if !ok || v == "" {
		return "", missing(row, field)
	}
	return v, nil
}

func requiredDecimal(row model.SourceRow, field string) (decimal.Decimal, error) {
	v, err := required(row, field)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := utils.ParseDecimal(v)
	if err != nil {
		return decimal.Decimal{}, missing(row, field)
	}
	return d, nil
}

func missing(row model.SourceRow, field string) error {
	return &model.FieldError{Line: row.Line, Field: field, Value: row.Record[field], Err: model.ErrMissingField}
}
