package generator

// Sex of a synthetic individual. The string value is what ends up in the CSV.
type Sex string

const (
	Male   Sex = "Male"
	Female Sex = "Female"
)

// Record is one synthesized row: a hypothetical individual's weight-loss profile.
type Record struct {
	Age              int     `json:"age"`
	Sex              Sex     `json:"sex"`
	HeightCm         float64 `json:"height_cm"`
	StartWeightKg    float64 `json:"start_weight_kg"`
	TargetWeightKg   float64 `json:"target_weight_kg"`
	DurationWeeks    float64 `json:"duration_weeks"`
	StartBMI         float64 `json:"start_bmi"`
	TargetBMI        float64 `json:"target_bmi"`
	AvgCalorieIntake int     `json:"avg_calorie_intake"`
	AvgCalorieBurn   int     `json:"avg_calorie_burn"`
	MainExercise     string  `json:"main_exercise"`
}
