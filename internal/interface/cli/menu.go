// Package cli implements the interactive console interface of the grade
// analyzer. The menu loop owns the roster for the lifetime of the process
// and dispatches user choices to the domain operations.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alem-hub/alem-classroom/internal/domain/roster"
)

// ══════════════════════════════════════════════════════════════════════════════
// CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// Config contains menu loop configuration.
type Config struct {
	// In - source of user input (default: os.Stdin).
	In io.Reader

	// Out - destination for prompts and reports (default: os.Stdout).
	Out io.Writer

	// Logger - structured logger for operation tracing. The logger never
	// writes to Out: the console output is the user interface itself.
	Logger *slog.Logger
}

// DefaultConfig returns default menu configuration bound to the process
// standard streams.
func DefaultConfig() Config {
	return Config{
		In:     os.Stdin,
		Out:    os.Stdout,
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// MENU STATE MACHINE
// ══════════════════════════════════════════════════════════════════════════════

// state is the menu loop state. The loop starts in stateAwaitingChoice,
// moves to stateDispatching on a parsed choice in [1,5], returns to
// stateAwaitingChoice after every operation except exit, which moves to
// stateTerminated - the only terminal state.
type state int

const (
	stateAwaitingChoice state = iota
	stateDispatching
	stateTerminated
)

// Menu choices.
const (
	choiceAddStudent = iota + 1
	choiceAddGrades
	choiceShowReport
	choiceTopPerformer
	choiceExit
)

// optionLabels are the five fixed menu options, in choice order.
var optionLabels = []string{
	"Add a new student",
	"Add a grades for a student",
	"Show report (all students)",
	"Find top performer",
	"Exit",
}

// ══════════════════════════════════════════════════════════════════════════════
// MENU LOOP
// ══════════════════════════════════════════════════════════════════════════════

// Menu is the interactive menu loop over a single roster.
type Menu struct {
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger

	roster *roster.Roster
	state  state
}

// NewMenu creates a menu loop owning a fresh empty roster.
func NewMenu(cfg Config) *Menu {
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Menu{
		in:     bufio.NewReader(cfg.In),
		out:    cfg.Out,
		logger: cfg.Logger,
		roster: roster.NewRoster(),
		state:  stateAwaitingChoice,
	}
}

// Roster exposes the roster for inspection. The menu loop remains the
// only writer.
func (m *Menu) Roster() *roster.Roster {
	return m.roster
}

// Run executes the menu loop until the user selects the exit option.
// The returned error is non-nil only when the input stream ends before
// an explicit exit: no amount of malformed input is fatal.
func (m *Menu) Run() error {
	for m.state != stateTerminated {
		m.printMenu()

		choice, err := m.readChoice()
		if errors.Is(err, roster.ErrInvalidMenuChoice) {
			fmt.Fprintln(m.out, "Enter number from 1 to 5: ")
			continue
		}
		if err != nil {
			return err
		}

		m.state = stateDispatching
		if err := m.dispatch(choice); err != nil {
			return err
		}

		if choice == choiceExit {
			m.state = stateTerminated
		} else {
			m.state = stateAwaitingChoice
		}
	}

	return nil
}

// printMenu prints the banner and the five numbered options.
func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "-----Student Grade Analyzer------")
	for i, option := range optionLabels {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, option)
	}
}

// readChoice reads one menu selection. Non-numeric input and numbers
// outside [1,5] yield roster.ErrInvalidMenuChoice and leave the roster
// untouched.
func (m *Menu) readChoice() (int, error) {
	line, err := m.readLine("Enter your choice: ")
	if err != nil {
		return 0, err
	}

	choice, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil || choice < 1 || choice > 5 {
		return 0, roster.ErrInvalidMenuChoice
	}

	return choice, nil
}

// dispatch executes the operation for a valid choice.
func (m *Menu) dispatch(choice int) error {
	switch choice {
	case choiceAddStudent:
		return m.addStudent()
	case choiceAddGrades:
		return m.addGrades()
	case choiceShowReport:
		m.showReport()
	case choiceTopPerformer:
		m.findTopPerformer()
	case choiceExit:
		fmt.Fprintln(m.out, "Exiting program")
	}
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// OPERATIONS
// ══════════════════════════════════════════════════════════════════════════════

// addStudent prompts for a name until a valid, non-duplicate one is
// accepted. There is no retry limit.
func (m *Menu) addStudent() error {
	for {
		name, err := m.promptName()
		if err != nil {
			return err
		}
		if name == "" {
			continue
		}

		if _, err := m.roster.AddStudent(name); err != nil {
			// Only a duplicate can get this far: the name is validated above.
			fmt.Fprintf(m.out, "The name %s already exists.\n", name)
			continue
		}

		m.logger.Debug("student added", "name", name)
		return nil
	}
}

// addGrades prompts for a student name once it parses; an unknown student
// returns to the main menu without looping. Grades are then read until the
// sentinel token.
func (m *Menu) addGrades() error {
	for {
		name, err := m.promptName()
		if err != nil {
			return err
		}
		if name == "" {
			continue
		}

		if _, ok := m.roster.Find(name); !ok {
			fmt.Fprintf(m.out, "The student '%s' is not found.\n", name)
			return nil
		}

		for {
			line, err := m.readLine("Enter a grade(or 'done' to finish): ")
			if err != nil {
				return err
			}

			switch in := roster.ParseGradeInput(line); in.Kind {
			case roster.GradeInputSentinel:
				m.logger.Debug("grade entry finished", "name", name)
				return nil
			case roster.GradeInputValue:
				if err := m.roster.AddGrade(name, in.Value); err != nil {
					return err
				}
			case roster.GradeInputInvalid:
				fmt.Fprintln(m.out, "Invalid input. Please enter a number (or 'done'): ")
			}
		}
	}
}

// showReport prints every student's average in insertion order, then the
// aggregates over students that have at least one grade.
func (m *Menu) showReport() {
	if m.roster.IsEmpty() {
		fmt.Fprintln(m.out, "No students available.")
		return
	}

	fmt.Fprintln(m.out, "-----Student Report-----")

	report := roster.BuildReport(m.roster)
	for _, line := range report.Lines {
		if line.HasGrades {
			fmt.Fprintf(m.out, "%s's average grade is %s.\n", line.Name, formatAverage(line.Average))
		} else {
			fmt.Fprintf(m.out, "%s's average grade is N/A.\n", line.Name)
		}
	}

	if report.Summary == nil {
		fmt.Fprintln(m.out, "No grades available for summary.")
		return
	}

	fmt.Fprintln(m.out, "-------------------------")
	fmt.Fprintf(m.out, "Max average: %s\n", formatAverage(report.Summary.Max))
	fmt.Fprintf(m.out, "Min average: %s\n", formatAverage(report.Summary.Min))
	fmt.Fprintf(m.out, "Overall average: %s\n", formatAverage(report.Summary.Overall))
}

// findTopPerformer prints the student with the highest average. The empty
// roster and the no-grades roster are distinct unavailable outcomes.
func (m *Menu) findTopPerformer() {
	if m.roster.IsEmpty() {
		fmt.Fprintln(m.out, "No students available.")
		return
	}

	top, avg, ok := roster.TopPerformer(m.roster)
	if !ok {
		fmt.Fprintln(m.out, "No grades available")
		return
	}

	fmt.Fprintf(m.out, "The student with the highest average is %s with a grade of %s\n",
		top.Name, formatAverage(avg))
}

// ══════════════════════════════════════════════════════════════════════════════
// INPUT HELPERS
// ══════════════════════════════════════════════════════════════════════════════

// promptName asks for a student name and normalizes it. An invalid name
// prints the validation message and returns ""; the caller re-prompts.
func (m *Menu) promptName() (string, error) {
	line, err := m.readLine("Enter student name: ")
	if err != nil {
		return "", err
	}

	name, parseErr := roster.ParseName(line)
	if parseErr != nil {
		fmt.Fprintln(m.out, "Enter valid student name! ")
		return "", nil
	}

	return name, nil
}

// readLine prints a prompt without a trailing newline and reads one input
// line of any length. Returns io.EOF only when the input stream is
// exhausted with nothing left to read.
func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)

	line, err := m.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		// The last line may arrive without a trailing newline.
		if line == "" {
			return "", io.EOF
		}
	}

	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

// formatAverage renders a rounded average with exactly one decimal place.
func formatAverage(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
