// Package roster содержит доменную модель журнала оценок Alem Classroom.
//
// Это ядро консольного анализатора оценок. Пакет определяет:
//
//   - Сущности: StudentRecord, Roster
//   - Value Objects: Grade, GradeInput
//   - Валидацию: NormalizeName, ValidateName, ParseGradeInput
//   - Отчёты: BuildReport, TopPerformer
//
// # Архитектурные принципы
//
//  1. Нулевые внешние зависимости - только стандартная библиотека Go
//  2. Журнал - явное значение, которым владеет цикл меню; глобального
//     состояния нет
//  3. Отчёты - чистые функции, журнал изменяют только AddStudent и AddGrade
//
// # Пример использования
//
//	r := roster.NewRoster()
//
//	name, err := roster.ParseName("  anna  KAREN ")
//	if err != nil {
//	    // переспросить пользователя
//	}
//	record, err := r.AddStudent(name) // "Anna Karen"
//
//	switch in := roster.ParseGradeInput("95"); in.Kind {
//	case roster.GradeInputValue:
//	    _ = r.AddGrade(name, in.Value)
//	case roster.GradeInputSentinel:
//	    // завершить ввод оценок
//	case roster.GradeInputInvalid:
//	    // переспросить
//	}
//
//	report := roster.BuildReport(r)
//	top, avg, ok := roster.TopPerformer(r)
//
// Все ошибки пакета - сентинельные значения (ErrInvalidName, ErrDuplicateName,
// ErrInvalidGrade, ErrStudentNotFound) и восстанавливаются локально повторным
// запросом ввода; ни одна из них не фатальна.
package roster
