// Package guard проверяет предусловия операции по декларативной таблице правил
package guard

import (
	"context"
	"fmt"
)

// Rule - одно предусловие: Check отвечает на вопрос "выполнено ли условие",
// Err возвращается, если нет
type Rule struct {
	Name  string
	Check func(ctx context.Context) (bool, error)
	Err   error
}

// Violation - нарушенное правило. errors.Is видит Err правила.
type Violation struct {
	Rule string
	Err  error
}

func (v *Violation) Error() string {
	return fmt.Sprintf("precondition %s: %v", v.Rule, v.Err)
}

func (v *Violation) Unwrap() error {
	return v.Err
}

// Run проверяет правила по порядку и возвращает первое нарушение как *Violation.
// Ошибка самой проверки (например, обрыв соединения) оборачивается именем правила.
func Run(ctx context.Context, rules ...Rule) error {
	for _, rule := range rules {
		ok, err := rule.Check(ctx)
		if err != nil {
			return fmt.Errorf("check %s: %w", rule.Name, err)
		}
		if !ok {
			return &Violation{Rule: rule.Name, Err: rule.Err}
		}
	}
	return nil
}

// Exists - правило "сущность должна существовать"
func Exists(name string, exists func(ctx context.Context) (bool, error), err error) Rule {
	return Rule{Name: name, Check: exists, Err: err}
}

// Absent - правило "сущности быть не должно"
func Absent(name string, exists func(ctx context.Context) (bool, error), err error) Rule {
	return Rule{
		Name: name,
		Check: func(ctx context.Context) (bool, error) {
			found, checkErr := exists(ctx)
			return !found, checkErr
		},
		Err: err,
	}
}
