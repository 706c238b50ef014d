package csvexport

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"WeightLossDataGenerator/internal/generator"
)

const wantHeader = "age,sex,height_cm,start_weight_kg,target_weight_kg,duration_weeks,start_bmi,target_bmi,avg_calorie_intake,avg_calorie_burn,main_exercise"

func TestHeader(t *testing.T) {
	assert.Equal(t, wantHeader, Header)
	assert.Len(t, Columns, 11)
}

func TestEncodeKnownRecord(t *testing.T) {
	out := Encode([]generator.Record{{
		Age:              34,
		Sex:              generator.Male,
		HeightCm:         180,
		StartWeightKg:    92.34,
		TargetWeightKg:   80.06,
		DurationWeeks:    30.24,
		StartBMI:         28.5,
		TargetBMI:        24.7,
		AvgCalorieIntake: 2410,
		AvgCalorieBurn:   512,
		MainExercise:     "Cycling 4x/week",
	}})

	assert.Equal(t, wantHeader+"\n34,Male,180.0,92.3,80.1,30.2,28.5,24.7,2410,512,Cycling 4x/week", string(out))
}

func TestEncodeLineCount(t *testing.T) {
	for _, n := range []int{1, 2, 17, 1000} {
		out := Encode(generator.NewSeeded(int64(n)).Generate(n))
		lines := strings.Split(string(out), "\n")
		require.Len(t, lines, n+1, "n=%d", n)
		assert.Equal(t, wantHeader, lines[0])
		assert.False(t, bytes.HasSuffix(out, []byte("\n")))
	}
}

func TestEncodeSingleRow(t *testing.T) {
	out := Encode(generator.NewSeeded(9).Generate(1))
	lines := strings.Split(string(out), "\n")
	require.Len(t, lines, 2)
	assert.Len(t, strings.Split(lines[1], ","), 11)
}

func TestEncodeZeroRequestedRowsStillHasData(t *testing.T) {
	out := Encode(generator.NewSeeded(3).Generate(0))
	assert.Len(t, strings.Split(string(out), "\n"), 2)
}

func TestEncodeIsIdempotent(t *testing.T) {
	records := generator.NewSeeded(11).Generate(250)
	assert.Equal(t, Encode(records), Encode(records))
}

func TestEncodeSameSeedSameBytes(t *testing.T) {
	a := Encode(generator.NewSeeded(77).Generate(300))
	b := Encode(generator.NewSeeded(77).Generate(300))
	assert.Equal(t, a, b)
}

func TestEncodeIsValidCSV(t *testing.T) {
	out := Encode(generator.NewSeeded(5).Generate(50))
	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 51)
	assert.Equal(t, Columns, rows[0])
	for _, row := range rows[1:] {
		assert.Len(t, row, 11)
		assert.Contains(t, []string{"Male", "Female"}, row[1])
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "weight_loss_dataset_5000_rows.csv", Filename(5000))
	assert.Equal(t, "weight_loss_dataset_1_rows.csv", Filename(1))
}
