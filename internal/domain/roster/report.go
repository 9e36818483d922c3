package roster

import "strconv"

// ══════════════════════════════════════════════════════════════════════════════
// REPORTING ENGINE
// Отчёты - чистые функции над журналом: они никогда его не изменяют.
// ══════════════════════════════════════════════════════════════════════════════

// RoundAverage округляет среднюю оценку до одного знака после запятой.
// Округление идёт по точному десятичному значению числа, ровно половина
// уходит к чётному соседу: 84.25 -> 84.2, 84.75 -> 84.8.
func RoundAverage(v float64) float64 {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return rounded
}

// ReportLine - строка отчёта для одного студента в порядке вставки.
type ReportLine struct {
	// Name - нормализованное имя студента.
	Name string

	// Average - средняя оценка, округлённая до одного знака.
	// Имеет смысл только при HasGrades == true.
	Average float64

	// HasGrades - false означает состояние "N/A": оценок ещё нет.
	HasGrades bool
}

// Summary - агрегаты по студентам, у которых есть хотя бы одна оценка.
// Max, Min и Overall считаются по уже округлённым средним каждого студента.
type Summary struct {
	Max     float64
	Min     float64
	Overall float64
}

// Report - полный отчёт по журналу: построчные средние и агрегаты.
// Summary == nil, когда ни у одного студента нет оценок.
type Report struct {
	Lines   []ReportLine
	Summary *Summary
}

// BuildReport строит отчёт по всем записям журнала в порядке вставки.
// Студенты без оценок попадают в отчёт со строкой "N/A" и не участвуют
// в агрегатах; обработка остальных записей при этом продолжается.
func BuildReport(r *Roster) Report {
	report := Report{Lines: make([]ReportLine, 0, r.Len())}

	var averages []float64
	for _, record := range r.Records() {
		avg, ok := record.Average()
		if !ok {
			report.Lines = append(report.Lines, ReportLine{Name: record.Name})
			continue
		}

		rounded := RoundAverage(avg)
		report.Lines = append(report.Lines, ReportLine{
			Name:      record.Name,
			Average:   rounded,
			HasGrades: true,
		})
		averages = append(averages, rounded)
	}

	if len(averages) == 0 {
		return report
	}

	summary := Summary{Max: averages[0], Min: averages[0]}
	sum := 0.0
	for _, avg := range averages {
		if avg > summary.Max {
			summary.Max = avg
		}
		if avg < summary.Min {
			summary.Min = avg
		}
		sum += avg
	}
	summary.Overall = RoundAverage(sum / float64(len(averages)))
	report.Summary = &summary

	return report
}

// TopPerformer возвращает студента со строго наибольшей средней оценкой
// среди тех, у кого есть хотя бы одна оценка, и его округлённое среднее.
// При равных средних побеждает добавленный раньше (стабильный максимум).
// Возвращает false, если ни у одного студента нет оценок (включая пустой
// журнал) - вызывающий код различает эти случаи через Roster.IsEmpty.
func TopPerformer(r *Roster) (*StudentRecord, float64, bool) {
	var top *StudentRecord
	var topAvg float64

	for _, record := range r.Records() {
		avg, ok := record.Average()
		if !ok {
			continue
		}
		if top == nil || avg > topAvg {
			top = record
			topAvg = avg
		}
	}

	if top == nil {
		return nil, 0, false
	}
	return top, RoundAverage(topAvg), true
}
