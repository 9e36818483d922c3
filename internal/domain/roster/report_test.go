package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fill наполняет журнал записями с оценками; пустой слайс оценок оставляет
// студента без оценок.
func fill(t *testing.T, grades map[string][]Grade, order []string) *Roster {
	t.Helper()

	r := NewRoster()
	for _, name := range order {
		_, err := r.AddStudent(name)
		require.NoError(t, err)
		for _, g := range grades[name] {
			require.NoError(t, r.AddGrade(name, g))
		}
	}
	return r
}

func TestRoundAverage(t *testing.T) {
	assert.InDelta(t, 95.0, RoundAverage(95.0), 1e-9)
	assert.InDelta(t, 93.3, RoundAverage(280.0/3.0), 1e-9)
	assert.InDelta(t, 66.7, RoundAverage(200.0/3.0), 1e-9)
}

func TestRoundAverage_HalfToEven(t *testing.T) {
	// Ровно половина уходит к чётному соседу, не от нуля.
	assert.InDelta(t, 84.2, RoundAverage(337.0/4.0), 1e-9) // 84.25 -> 84.2
	assert.InDelta(t, 84.8, RoundAverage(339.0/4.0), 1e-9) // 84.75 -> 84.8
	assert.InDelta(t, 95.0, RoundAverage(94.95), 1e-9)     // двоичное 94.95 чуть выше половины
}

func TestBuildReport(t *testing.T) {
	r := fill(t, map[string][]Grade{
		"Anna":  {90, 100},
		"Bo":    {70, 75, 80},
		"Clara": {},
	}, []string{"Anna", "Bo", "Clara"})

	report := BuildReport(r)

	require.Len(t, report.Lines, 3)
	assert.Equal(t, ReportLine{Name: "Anna", Average: 95.0, HasGrades: true}, report.Lines[0])
	assert.Equal(t, ReportLine{Name: "Bo", Average: 75.0, HasGrades: true}, report.Lines[1])
	assert.Equal(t, ReportLine{Name: "Clara"}, report.Lines[2])

	require.NotNil(t, report.Summary)
	assert.InDelta(t, 95.0, report.Summary.Max, 1e-9)
	assert.InDelta(t, 75.0, report.Summary.Min, 1e-9)
	assert.InDelta(t, 85.0, report.Summary.Overall, 1e-9)
}

func TestBuildReport_SummaryUsesRoundedAverages(t *testing.T) {
	// Средние 93.3 и 66.7 после округления; Overall = round((93.3+66.7)/2) = 80.0.
	r := fill(t, map[string][]Grade{
		"Anna": {93, 93, 94},
		"Bo":   {66, 67, 67},
	}, []string{"Anna", "Bo"})

	report := BuildReport(r)

	require.NotNil(t, report.Summary)
	assert.InDelta(t, 93.3, report.Summary.Max, 1e-9)
	assert.InDelta(t, 66.7, report.Summary.Min, 1e-9)
	assert.InDelta(t, 80.0, report.Summary.Overall, 1e-9)
}

func TestBuildReport_QuarterAverageRoundsDown(t *testing.T) {
	// Среднее 337/4 = 84.25 лежит ровно на половине и уходит к чётному 84.2.
	r := fill(t, map[string][]Grade{
		"Anna": {84, 84, 85, 84},
	}, []string{"Anna"})

	report := BuildReport(r)

	require.Len(t, report.Lines, 1)
	assert.InDelta(t, 84.2, report.Lines[0].Average, 1e-9)

	require.NotNil(t, report.Summary)
	assert.InDelta(t, 84.2, report.Summary.Max, 1e-9)
	assert.InDelta(t, 84.2, report.Summary.Min, 1e-9)
	assert.InDelta(t, 84.2, report.Summary.Overall, 1e-9)
}

func TestBuildReport_NoGrades(t *testing.T) {
	r := fill(t, map[string][]Grade{"Anna": {}, "Bo": {}}, []string{"Anna", "Bo"})

	report := BuildReport(r)

	require.Len(t, report.Lines, 2)
	assert.False(t, report.Lines[0].HasGrades)
	assert.False(t, report.Lines[1].HasGrades)
	assert.Nil(t, report.Summary)
}

func TestBuildReport_EmptyRoster(t *testing.T) {
	report := BuildReport(NewRoster())

	assert.Empty(t, report.Lines)
	assert.Nil(t, report.Summary)
}

func TestTopPerformer(t *testing.T) {
	r := fill(t, map[string][]Grade{
		"Ann": {90, 100},
		"Bo":  {95},
	}, []string{"Ann", "Bo"})

	top, avg, ok := TopPerformer(r)
	require.True(t, ok)
	assert.Equal(t, "Ann", top.Name)
	assert.InDelta(t, 95.0, avg, 1e-9)
}

func TestTopPerformer_TieBreaksByInsertionOrder(t *testing.T) {
	// Обе средние равны 95.0; побеждает добавленный раньше.
	r := fill(t, map[string][]Grade{
		"Ann": {90, 100},
		"Bo":  {95, 95},
	}, []string{"Ann", "Bo"})

	top, avg, ok := TopPerformer(r)
	require.True(t, ok)
	assert.Equal(t, "Ann", top.Name)
	assert.InDelta(t, 95.0, avg, 1e-9)
}

func TestTopPerformer_SkipsStudentsWithoutGrades(t *testing.T) {
	r := fill(t, map[string][]Grade{
		"Ann": {},
		"Bo":  {42},
	}, []string{"Ann", "Bo"})

	top, avg, ok := TopPerformer(r)
	require.True(t, ok)
	assert.Equal(t, "Bo", top.Name)
	assert.InDelta(t, 42.0, avg, 1e-9)
}

func TestTopPerformer_Unavailable(t *testing.T) {
	// Пустой журнал.
	_, _, ok := TopPerformer(NewRoster())
	assert.False(t, ok)

	// Студенты есть, оценок нет.
	r := fill(t, map[string][]Grade{"Ann": {}}, []string{"Ann"})
	_, _, ok = TopPerformer(r)
	assert.False(t, ok)
}
