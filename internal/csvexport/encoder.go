// Package csvexport renders generated records as the dataset CSV.
package csvexport

import (
	"fmt"
	"strconv"
	"strings"

	"WeightLossDataGenerator/internal/generator"
)

// Columns is the fixed column order of every dataset file.
var Columns = []string{
	"age",
	"sex",
	"height_cm",
	"start_weight_kg",
	"target_weight_kg",
	"duration_weeks",
	"start_bmi",
	"target_bmi",
	"avg_calorie_intake",
	"avg_calorie_burn",
	"main_exercise",
}

// Header is the first line of every dataset file.
var Header = strings.Join(Columns, ",")

// ContentType is what HTTP sinks advertise for the encoded bytes.
const ContentType = "text/csv"

// Filename is the suggested name for a dataset of n rows.
func Filename(n int) string {
	return fmt.Sprintf("weight_loss_dataset_%d_rows.csv", n)
}

// Encode renders the header and one line per record, joined by "\n" with no
// trailing newline. Values are numbers or single-word labels, so no field
// is quoted.
func Encode(records []generator.Record) []byte {
	var b strings.Builder
	// rows are roughly 70 bytes each
	b.Grow(len(Header) + len(records)*72)
	b.WriteString(Header)
	for _, r := range records {
		b.WriteByte('\n')
		writeRow(&b, r)
	}
	return []byte(b.String())
}

// Row renders a single record as CSV fields in column order.
func Row(r generator.Record) []string {
	return []string{
		strconv.Itoa(r.Age),
		string(r.Sex),
		decimal(r.HeightCm),
		decimal(r.StartWeightKg),
		decimal(r.TargetWeightKg),
		decimal(r.DurationWeeks),
		decimal(r.StartBMI),
		decimal(r.TargetBMI),
		strconv.Itoa(r.AvgCalorieIntake),
		strconv.Itoa(r.AvgCalorieBurn),
		r.MainExercise,
	}
}

func writeRow(b *strings.Builder, r generator.Record) {
	for i, field := range Row(r) {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(field)
	}
}

func decimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
