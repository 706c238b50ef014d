/**
* Name:        generator.go
* Description: Synthetic weight-loss row generator
* Workflow:    demographics -> height -> weights/BMI -> duration -> calories -> exercise
 */
package generator

import (
	"math"
	"math/rand/v2"
)

const (
	minAge = 18
	maxAge = 70

	minHeightCm    = 150.0
	maxHeightCm    = 200.0
	maleHeightCm   = 175.0
	femaleHeightCm = 163.0
	heightSpread   = 8.0
	heightScale    = 1.5

	minStartBMI   = 22.0
	startBMIRange = 13.0 // 22-35

	minLossFraction   = 0.05
	lossFractionRange = 0.15 // 5-20% of body weight

	minWeeksPerKg   = 1.5
	weeksPerKgRange = 2.0 // 1.5-3.5 weeks per kg

	activityFactor = 1.5
	minDeficit     = 300.0
	deficitRange   = 400.0

	minBurn   = 150.0
	burnRange = 500.0

	// maxPrealloc bounds the up-front allocation; larger datasets grow by append.
	maxPrealloc = 1 << 16
)

// Source is the random stream the generator draws from. Every draw is a
// uniform float in [0, 1). *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// Generator produces independent Records from a single Source.
// It is not safe for concurrent use; give each goroutine its own.
type Generator struct {
	src Source
}

// New builds a Generator over src.
func New(src Source) *Generator {
	return &Generator{src: src}
}

// NewSeeded builds a Generator over a PCG stream derived from seed.
// Equal seeds produce identical record sequences.
func NewSeeded(seed int64) *Generator {
	return New(rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)))
}

// RandomSeed returns a non-negative seed from the process-wide generator.
func RandomSeed() int64 {
	return rand.Int64()
}

// Generate returns n records. n below 1 is treated as 1.
func (g *Generator) Generate(n int) []Record {
	n = NormalizeRowCount(n)
	records := make([]Record, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		records = append(records, g.Next())
	}
	return records
}

// Next draws a single record.
func (g *Generator) Next() Record {
	age := int(math.Floor(g.src.Float64()*float64(maxAge-minAge+1))) + minAge

	sex := Female
	if g.src.Float64() > 0.5 {
		sex = Male
	}

	heightMean := femaleHeightCm
	if sex == Male {
		heightMean = maleHeightCm
	}
	height := clamp(heightMean+(g.src.Float64()-0.5)*2*heightSpread*heightScale, minHeightCm, maxHeightCm)
	heightM := height / 100

	baseBMI := minStartBMI + g.src.Float64()*startBMIRange
	startWeight := baseBMI * heightM * heightM

	lossFraction := minLossFraction + g.src.Float64()*lossFractionRange
	targetWeight := startWeight * (1 - lossFraction)

	startBMI := BMI(startWeight, height)
	targetBMI := BMI(targetWeight, height)

	weeksPerKg := minWeeksPerKg + g.src.Float64()*weeksPerKgRange
	duration := (startWeight - targetWeight) * weeksPerKg

	maintenance := BMR(sex, startWeight, height, age) * activityFactor
	deficit := minDeficit + g.src.Float64()*deficitRange
	intake := math.Round(maintenance - deficit)

	burn := math.Round(minBurn + g.src.Float64()*burnRange)

	exercise := exercisePrograms[int(math.Floor(g.src.Float64()*float64(len(exercisePrograms))))]

	return Record{
		Age:              age,
		Sex:              sex,
		HeightCm:         round1(height),
		StartWeightKg:    round1(startWeight),
		TargetWeightKg:   round1(targetWeight),
		DurationWeeks:    round1(duration),
		StartBMI:         round1(startBMI),
		TargetBMI:        round1(targetBMI),
		AvgCalorieIntake: int(intake),
		AvgCalorieBurn:   int(burn),
		MainExercise:     exercise.Label,
	}
}

// BMI is weight over height in metres squared.
func BMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100
	return weightKg / (h * h)
}

// BMR estimates basal metabolic rate with the revised Harris-Benedict equations.
func BMR(sex Sex, weightKg, heightCm float64, age int) float64 {
	if sex == Male {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
