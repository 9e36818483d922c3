// Package roster содержит доменную модель журнала оценок Alem Classroom.
// Это ядро бизнес-логики - здесь нет внешних зависимостей.
package roster

import (
	"errors"
	"fmt"
	"time"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// Grade представляет одну оценку студента по шкале 0-100.
type Grade int

// Границы допустимых оценок.
const (
	MinGrade Grade = 0
	MaxGrade Grade = 100
)

// IsValid проверяет, что оценка находится в диапазоне [0, 100].
func (g Grade) IsValid() bool {
	return g >= MinGrade && g <= MaxGrade
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrInvalidName - имя студента пустое или содержит недопустимые символы.
	ErrInvalidName = errors.New("invalid student name")

	// ErrDuplicateName - студент с таким нормализованным именем уже есть в журнале.
	ErrDuplicateName = errors.New("student name already exists")

	// ErrInvalidGrade - оценка вне диапазона [0, 100] или не является числом.
	ErrInvalidGrade = errors.New("invalid grade: must be an integer between 0 and 100")

	// ErrStudentNotFound - студент не найден в журнале.
	ErrStudentNotFound = errors.New("student not found")

	// ErrInvalidMenuChoice - пункт меню вне диапазона [1, 5].
	ErrInvalidMenuChoice = errors.New("invalid menu choice: must be between 1 and 5")
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT RECORD
// ══════════════════════════════════════════════════════════════════════════════

// StudentRecord - запись студента в журнале оценок.
// Имя нормализовано и неизменяемо после создания; список оценок append-only.
type StudentRecord struct {
	// Name - нормализованное отображаемое имя (уникально в пределах журнала).
	Name string

	// Grades - упорядоченная последовательность оценок. Может быть пустой.
	Grades []Grade

	// CreatedAt - время добавления записи в журнал.
	CreatedAt time.Time
}

// HasGrades возвращает true, если у студента есть хотя бы одна оценка.
func (s *StudentRecord) HasGrades() bool {
	return len(s.Grades) > 0
}

// Average возвращает среднее арифметическое оценок студента без округления.
// Второе значение false означает состояние "N/A" - оценок ещё нет.
// Это не ошибка, а отображаемое состояние записи.
func (s *StudentRecord) Average() (float64, bool) {
	if len(s.Grades) == 0 {
		return 0, false
	}

	sum := 0
	for _, g := range s.Grades {
		sum += int(g)
	}
	return float64(sum) / float64(len(s.Grades)), true
}

// String возвращает строковое представление записи для логирования.
func (s *StudentRecord) String() string {
	return fmt.Sprintf("StudentRecord{Name: %s, Grades: %d}", s.Name, len(s.Grades))
}

// ══════════════════════════════════════════════════════════════════════════════
// ROSTER
// ══════════════════════════════════════════════════════════════════════════════

// Roster - упорядоченная коллекция записей студентов одного запуска программы.
// Порядок вставки сохраняется, имена уникальны после нормализации.
// Журнал живёт только в памяти процесса и изменяется двумя операциями:
// AddStudent и AddGrade. Отчёты журнал не изменяют.
type Roster struct {
	records []*StudentRecord
}

// NewRoster создаёт пустой журнал.
func NewRoster() *Roster {
	return &Roster{records: make([]*StudentRecord, 0)}
}

// Len возвращает количество записей в журнале.
func (r *Roster) Len() int {
	return len(r.records)
}

// IsEmpty возвращает true, если в журнале нет ни одной записи.
func (r *Roster) IsEmpty() bool {
	return len(r.records) == 0
}

// Find ищет запись по нормализованному имени линейным проходом.
// Возвращает nil и false, если студент не найден. Побочных эффектов нет.
func (r *Roster) Find(name string) (*StudentRecord, bool) {
	for _, record := range r.records {
		if record.Name == name {
			return record, true
		}
	}
	return nil, false
}

// AddStudent добавляет нового студента с пустым списком оценок в конец журнала.
// Имя должно быть уже нормализовано (см. NormalizeName). Возвращает
// ErrInvalidName для невалидного имени и ErrDuplicateName, если запись
// с таким именем уже существует.
func (r *Roster) AddStudent(name string) (*StudentRecord, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	if _, ok := r.Find(name); ok {
		return nil, ErrDuplicateName
	}

	record := &StudentRecord{
		Name:      name,
		Grades:    make([]Grade, 0),
		CreatedAt: time.Now().UTC(),
	}
	r.records = append(r.records, record)

	return record, nil
}

// AddGrade добавляет оценку существующему студенту.
// Возвращает ErrStudentNotFound, если записи нет, и ErrInvalidGrade,
// если оценка вне диапазона [0, 100].
func (r *Roster) AddGrade(name string, grade Grade) error {
	record, ok := r.Find(name)
	if !ok {
		return ErrStudentNotFound
	}

	if !grade.IsValid() {
		return ErrInvalidGrade
	}

	record.Grades = append(record.Grades, grade)
	return nil
}

// Records возвращает записи журнала в порядке вставки.
// Слайс копируется, чтобы вызывающий код не мог изменить порядок записей.
func (r *Roster) Records() []*StudentRecord {
	out := make([]*StudentRecord, len(r.records))
	copy(out, r.records)
	return out
}
