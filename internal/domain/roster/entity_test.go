package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoster_AddStudent(t *testing.T) {
	r := NewRoster()

	record, err := r.AddStudent("Anna Karen")
	require.NoError(t, err)
	assert.Equal(t, "Anna Karen", record.Name)
	assert.Empty(t, record.Grades)
	assert.Equal(t, 1, r.Len())
}

func TestRoster_AddStudent_Duplicate(t *testing.T) {
	r := NewRoster()

	_, err := r.AddStudent("Anna")
	require.NoError(t, err)

	// Любой вариант регистра и пробелов нормализуется в то же имя.
	name, err := ParseName("  ANNA ")
	require.NoError(t, err)

	_, err = r.AddStudent(name)
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, 1, r.Len())
}

func TestRoster_AddStudent_InvalidName(t *testing.T) {
	r := NewRoster()

	_, err := r.AddStudent("")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = r.AddStudent("Anna42")
	assert.ErrorIs(t, err, ErrInvalidName)

	assert.True(t, r.IsEmpty())
}

func TestRoster_Find(t *testing.T) {
	r := NewRoster()
	_, err := r.AddStudent("Anna")
	require.NoError(t, err)

	record, ok := r.Find("Anna")
	assert.True(t, ok)
	assert.Equal(t, "Anna", record.Name)

	_, ok = r.Find("Bo")
	assert.False(t, ok)
}

func TestRoster_AddGrade(t *testing.T) {
	r := NewRoster()
	_, err := r.AddStudent("Anna")
	require.NoError(t, err)

	require.NoError(t, r.AddGrade("Anna", 90))
	require.NoError(t, r.AddGrade("Anna", 100))

	record, ok := r.Find("Anna")
	require.True(t, ok)
	assert.Equal(t, []Grade{90, 100}, record.Grades)
}

func TestRoster_AddGrade_StudentNotFound(t *testing.T) {
	r := NewRoster()

	err := r.AddGrade("Ghost", 50)
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestRoster_AddGrade_OutOfRange(t *testing.T) {
	r := NewRoster()
	_, err := r.AddStudent("Anna")
	require.NoError(t, err)

	assert.ErrorIs(t, r.AddGrade("Anna", 101), ErrInvalidGrade)
	assert.ErrorIs(t, r.AddGrade("Anna", -1), ErrInvalidGrade)

	record, _ := r.Find("Anna")
	assert.Empty(t, record.Grades)
}

func TestRoster_InsertionOrderPreserved(t *testing.T) {
	r := NewRoster()
	for _, name := range []string{"Anna", "Bo", "Clara"} {
		_, err := r.AddStudent(name)
		require.NoError(t, err)
	}

	records := r.Records()
	require.Len(t, records, 3)
	assert.Equal(t, "Anna", records[0].Name)
	assert.Equal(t, "Bo", records[1].Name)
	assert.Equal(t, "Clara", records[2].Name)
}

func TestStudentRecord_Average(t *testing.T) {
	record := &StudentRecord{Name: "Anna", Grades: []Grade{90, 100}}

	avg, ok := record.Average()
	assert.True(t, ok)
	assert.InDelta(t, 95.0, avg, 1e-9)

	empty := &StudentRecord{Name: "Bo"}
	_, ok = empty.Average()
	assert.False(t, ok)
}
