package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/frontandrew/mechanicshop/internal/domain"
)

// ErrInputClosed - стандартный ввод закончился (EOF)
var ErrInputClosed = errors.New("input closed")

// Prompter читает ответы построчно из одного входного потока
// и печатает приглашения в вывод меню. Длина строки не ограничена.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter создает Prompter; один на все время работы меню
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Line печатает приглашение и читает одну строку как есть
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		// последняя строка без перевода строки все еще ответ
		if line == "" {
			return "", ErrInputClosed
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Form печатает приглашения по порядку и читает ответ на каждое.
// Разбор полей выполняется вызывающим уже после того, как вся форма прочитана,
// чтобы ошибка в одном поле не сдвигала остальные ответы в меню.
func (p *Prompter) Form(prompts ...string) ([]string, error) {
	answers := make([]string, 0, len(prompts))
	for _, prompt := range prompts {
		line, err := p.Line(prompt)
		if err != nil {
			return nil, err
		}
		answers = append(answers, line)
	}
	return answers, nil
}

// Printf печатает в вывод меню
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Writer возвращает вывод меню
func (p *Prompter) Writer() io.Writer {
	return p.out
}

// parseInt разбирает числовое поле формы
func parseInt(field, line string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("invalid number %q for %s: %w", line, field, err)
	}
	return n, nil
}

// parseDate разбирает поле формы в формате yyyy-mm-dd
func parseDate(field, line string) (time.Time, error) {
	date, err := time.Parse(domain.DateLayout, strings.TrimSpace(line))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q for %s: %w", line, field, err)
	}
	return date, nil
}
