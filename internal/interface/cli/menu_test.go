package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runScript feeds the menu a scripted session and returns everything it
// printed. Each element of input is one line the "user" types.
func runScript(t *testing.T, input ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	menu := NewMenu(Config{
		In:  strings.NewReader(strings.Join(input, "\n") + "\n"),
		Out: &out,
	})
	err := menu.Run()
	return out.String(), err
}

const menuBanner = "-----Student Grade Analyzer------\n" +
	"1. Add a new student\n" +
	"2. Add a grades for a student\n" +
	"3. Show report (all students)\n" +
	"4. Find top performer\n" +
	"5. Exit\n"

func TestMenu_ExitImmediately(t *testing.T) {
	out, err := runScript(t, "5")

	require.NoError(t, err)
	assert.Equal(t, menuBanner+"Enter your choice: Exiting program\n", out)
}

func TestMenu_InvalidChoicesRedisplayMenu(t *testing.T) {
	out, err := runScript(t, "6", "0", "abc", "5")

	require.NoError(t, err)
	// Three invalid selections, three range-error lines, four menu banners.
	assert.Equal(t, 3, strings.Count(out, "Enter number from 1 to 5: \n"))
	assert.Equal(t, 4, strings.Count(out, menuBanner))
	assert.True(t, strings.HasSuffix(out, "Exiting program\n"))
}

func TestMenu_OversizedLineIsInvalidInput(t *testing.T) {
	// Строка длиннее буфера bufio по умолчанию не роняет цикл,
	// а переспрашивается как обычный неверный выбор.
	huge := strings.Repeat("7", 128*1024)
	out, err := runScript(t, huge, "5")

	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "Enter number from 1 to 5: \n"))
	assert.True(t, strings.HasSuffix(out, "Exiting program\n"))
}

func TestMenu_InvalidChoiceLeavesRosterUnchanged(t *testing.T) {
	var out bytes.Buffer
	menu := NewMenu(Config{
		In:  strings.NewReader("6\n0\nabc\n5\n"),
		Out: &out,
	})

	require.NoError(t, menu.Run())
	assert.True(t, menu.Roster().IsEmpty())
}

func TestMenu_AddStudentAndReport(t *testing.T) {
	out, err := runScript(t,
		"1", "  anna  karen ", // normalized to "Anna Karen"
		"2", "ANNA KAREN", "90", "100", "done",
		"3",
		"5",
	)

	require.NoError(t, err)
	assert.Contains(t, out, "-----Student Report-----\n")
	assert.Contains(t, out, "Anna Karen's average grade is 95.0.\n")
	assert.Contains(t, out, "Max average: 95.0\n")
	assert.Contains(t, out, "Min average: 95.0\n")
	assert.Contains(t, out, "Overall average: 95.0\n")
}

func TestMenu_AddStudent_InvalidThenValid(t *testing.T) {
	out, err := runScript(t, "1", "anna42", "anna", "5")

	require.NoError(t, err)
	assert.Contains(t, out, "Enter valid student name! \n")
	assert.Equal(t, 2, strings.Count(out, "Enter student name: "))
}

func TestMenu_AddStudent_Duplicate(t *testing.T) {
	out, err := runScript(t, "1", "anna", "1", "  ANNA ", "bo", "5")

	require.NoError(t, err)
	assert.Contains(t, out, "The name Anna already exists.\n")

	// Exactly two records despite the duplicate attempt.
	var buf bytes.Buffer
	menu := NewMenu(Config{In: strings.NewReader("1\nanna\n1\nANNA\nbo\n5\n"), Out: &buf})
	require.NoError(t, menu.Run())
	assert.Equal(t, 2, menu.Roster().Len())
}

func TestMenu_AddGrades_UnknownStudentReturnsToMenu(t *testing.T) {
	out, err := runScript(t, "2", "ghost", "5")

	require.NoError(t, err)
	assert.Contains(t, out, "The student 'Ghost' is not found.\n")
	// No grade prompt: control returns straight to the main menu.
	assert.NotContains(t, out, "Enter a grade(or 'done' to finish): ")
}

func TestMenu_AddGrades_InvalidGradesReprompt(t *testing.T) {
	out, err := runScript(t,
		"1", "anna",
		"2", "anna", "101", "-1", "abc", "100", "0", "Done",
		"3",
		"5",
	)

	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "Invalid input. Please enter a number (or 'done'): \n"))
	assert.Contains(t, out, "Anna's average grade is 50.0.\n")
}

func TestMenu_Report_EmptyRoster(t *testing.T) {
	out, err := runScript(t, "3", "5")

	require.NoError(t, err)
	assert.Contains(t, out, "No students available.\n")
	assert.NotContains(t, out, "-----Student Report-----")
}

func TestMenu_Report_NoGrades(t *testing.T) {
	out, err := runScript(t, "1", "anna", "3", "5")

	require.NoError(t, err)
	assert.Contains(t, out, "Anna's average grade is N/A.\n")
	assert.Contains(t, out, "No grades available for summary.\n")
	assert.NotContains(t, out, "Max average:")
}

func TestMenu_TopPerformer(t *testing.T) {
	out, err := runScript(t,
		"1", "ann",
		"1", "bo",
		"2", "ann", "90", "100", "done",
		"2", "bo", "95", "95", "done",
		"4",
		"5",
	)

	require.NoError(t, err)
	// Equal averages: the first-inserted student wins.
	assert.Contains(t, out, "The student with the highest average is Ann with a grade of 95.0\n")
}

func TestMenu_TopPerformer_Unavailable(t *testing.T) {
	out, err := runScript(t, "4", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "No students available.\n")

	out, err = runScript(t, "1", "anna", "4", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "No grades available\n")
}

func TestMenu_EOFBeforeExit(t *testing.T) {
	var out bytes.Buffer
	menu := NewMenu(Config{In: strings.NewReader("1\n"), Out: &out})

	err := menu.Run()
	assert.ErrorIs(t, err, io.EOF)
}
