package roster

import (
	"strconv"
	"strings"
	"unicode"
)

// ══════════════════════════════════════════════════════════════════════════════
// NAME VALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// NormalizeName приводит сырой пользовательский ввод к каноничному виду:
// пробельные последовательности схлопываются в один пробел, края обрезаются,
// каждое слово получает заглавную первую букву. Буква, идущая после любого
// небуквенного символа (пробел, дефис, апостроф), тоже становится заглавной:
// "  o'neill-smith " -> "O'Neill-Smith".
func NormalizeName(raw string) string {
	collapsed := strings.Join(strings.Fields(raw), " ")

	var b strings.Builder
	b.Grow(len(collapsed))

	prevLetter := false
	for _, r := range collapsed {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}

	return b.String()
}

// ValidateName проверяет нормализованное имя: оно должно быть непустым
// и состоять только из букв, пробелов, дефисов и апострофов.
// Любое другое содержимое - ErrInvalidName.
func ValidateName(name string) error {
	if name == "" {
		return ErrInvalidName
	}

	for _, r := range name {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return ErrInvalidName
	}

	return nil
}

// ParseName нормализует и валидирует сырой ввод за один шаг.
func ParseName(raw string) (string, error) {
	name := NormalizeName(raw)
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return name, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// GRADE INPUT
// ══════════════════════════════════════════════════════════════════════════════

// SentinelToken - токен завершения ввода оценок (сравнение без учёта регистра).
const SentinelToken = "done"

// GradeInputKind классифицирует сырой ввод оценки.
type GradeInputKind int

const (
	// GradeInputInvalid - ввод не является ни числом в диапазоне, ни токеном завершения.
	GradeInputInvalid GradeInputKind = iota

	// GradeInputSentinel - пользователь завершил ввод оценок ("done").
	GradeInputSentinel

	// GradeInputValue - корректная оценка в диапазоне [0, 100].
	GradeInputValue
)

// GradeInput - размеченный результат разбора ввода оценки.
// Value имеет смысл только при Kind == GradeInputValue.
type GradeInput struct {
	Kind  GradeInputKind
	Value Grade
}

// ParseGradeInput классифицирует сырой ввод: токен завершения, валидная
// оценка или мусор. Вызывающий код при GradeInputInvalid переспрашивает
// без ограничения попыток.
func ParseGradeInput(raw string) GradeInput {
	if strings.ToLower(raw) == SentinelToken {
		return GradeInput{Kind: GradeInputSentinel}
	}

	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return GradeInput{Kind: GradeInputInvalid}
	}

	grade := Grade(value)
	if !grade.IsValid() {
		return GradeInput{Kind: GradeInputInvalid}
	}

	return GradeInput{Kind: GradeInputValue, Value: grade}
}
