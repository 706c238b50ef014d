package generator

// ExerciseProgram is an entry of the fixed main_exercise catalog.
type ExerciseProgram struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Order matters: the generator indexes into this slice with a uniform draw,
// so reordering changes seeded output.
var exercisePrograms = []ExerciseProgram{
	{
		Label:       "Gym 3x/week",
		Description: "Resistance and machine training three times a week.",
	},
	{
		Label:       "Cycling 4x/week",
		Description: "Outdoor or stationary cycling four times a week.",
	},
	{
		Label:       "Running 3x/week",
		Description: "Steady-state running three times a week.",
	},
	{
		Label:       "Swimming 2x/week",
		Description: "Lap swimming twice a week.",
	},
	{
		Label:       "HIIT 3x/week",
		Description: "High-intensity interval sessions three times a week.",
	},
}

// ExercisePrograms returns a copy of the catalog in draw order.
func ExercisePrograms() []ExerciseProgram {
	out := make([]ExerciseProgram, len(exercisePrograms))
	copy(out, exercisePrograms)
	return out
}

// GetExerciseProgram looks a program up by its label.
func GetExerciseProgram(label string) (ExerciseProgram, bool) {
	for _, p := range exercisePrograms {
		if p.Label == label {
			return p, true
		}
	}
	return ExerciseProgram{}, false
}
