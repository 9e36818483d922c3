// Package profile содержит доменную модель профиля пользователя -
// упражнение с определением жизненного этапа по возрасту.
// Внешних зависимостей нет.
package profile

import "errors"

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// LifeStage - жизненный этап пользователя, вычисляемый из возраста.
type LifeStage string

const (
	// StageChild - от 0 до 12 лет включительно.
	StageChild LifeStage = "Child"
	// StageTeenager - от 13 до 19 лет включительно.
	StageTeenager LifeStage = "Teenager"
	// StageAdult - от 20 лет.
	StageAdult LifeStage = "Adult"
)

// ErrNegativeAge - возраст получился отрицательным (год рождения в будущем).
var ErrNegativeAge = errors.New("age cannot be negative")

// StageForAge вычисляет жизненный этап по возрасту.
func StageForAge(age int) (LifeStage, error) {
	switch {
	case age < 0:
		return "", ErrNegativeAge
	case age <= 12:
		return StageChild, nil
	case age <= 19:
		return StageTeenager, nil
	default:
		return StageAdult, nil
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// PROFILE
// ══════════════════════════════════════════════════════════════════════════════

// Profile - профиль пользователя, собранный из ответов на вопросы.
type Profile struct {
	// Name - полное имя как его ввёл пользователь.
	Name string

	// Age - возраст, вычисленный из года рождения.
	Age int

	// Stage - жизненный этап.
	Stage LifeStage

	// Hobbies - любимые хобби в порядке ввода. Может быть пустым.
	Hobbies []string
}

// New собирает профиль, вычисляя возраст из года рождения и текущего года.
func New(name string, birthYear, currentYear int, hobbies []string) (*Profile, error) {
	age := currentYear - birthYear

	stage, err := StageForAge(age)
	if err != nil {
		return nil, err
	}

	return &Profile{
		Name:    name,
		Age:     age,
		Stage:   stage,
		Hobbies: hobbies,
	}, nil
}
