// Package main - точка входа консольного генератора профиля пользователя.
//
// Пошаговый опрос: имя, год рождения, хобби до слова "stop", затем
// сводка профиля с жизненным этапом. Доменная логика -
// в internal/domain/profile.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alem-hub/alem-classroom/internal/domain/profile"
)

// currentYear - год, относительно которого считается возраст.
const currentYear = 2025

// stopWord завершает ввод хобби.
const stopWord = "stop"

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	name, err := prompt(scanner, out, "Hello User! Enter your full name, please?")
	if err != nil {
		return err
	}

	birthYearStr, err := prompt(scanner, out, "What is your date of birth?")
	if err != nil {
		return err
	}

	birthYear, err := strconv.Atoi(strings.TrimSpace(birthYearStr))
	if err != nil {
		return fmt.Errorf("birth year must be a number: %w", err)
	}

	hobbies, err := collectHobbies(scanner, out)
	if err != nil {
		return err
	}

	p, err := profile.New(name, birthYear, currentYear, hobbies)
	if err != nil {
		return fmt.Errorf("build profile: %w", err)
	}

	printSummary(out, p)
	return nil
}

// prompt выводит вопрос и читает одну строку ответа.
func prompt(scanner *bufio.Scanner, out io.Writer, question string) (string, error) {
	fmt.Fprint(out, question)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return scanner.Text(), nil
}

// collectHobbies читает хобби по одному до стоп-слова.
func collectHobbies(scanner *bufio.Scanner, out io.Writer) ([]string, error) {
	var hobbies []string

	for {
		hobby, err := prompt(scanner, out, "Enter a favorite hobby or type 'stop' to finish")
		if err != nil {
			return nil, err
		}
		if hobby == stopWord {
			return hobbies, nil
		}
		hobbies = append(hobbies, hobby)
	}
}

// printSummary печатает сводку профиля в формате оригинального упражнения.
func printSummary(out io.Writer, p *profile.Profile) {
	fmt.Fprintf(out, "Profile Summary: \nName: %s \nCurrent age: %d \nLife stage: %s\n",
		p.Name, p.Age, p.Stage)

	if len(p.Hobbies) > 0 {
		fmt.Fprintf(out, "Favorite Hobbies (%d): \n", len(p.Hobbies))
	} else {
		fmt.Fprintln(out, "You didn't mention any hobbies.")
	}

	for _, hobby := range p.Hobbies {
		fmt.Fprintf(out, "• %s\n", hobby)
	}
}
