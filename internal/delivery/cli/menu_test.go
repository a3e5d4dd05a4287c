package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/frontandrew/mechanicshop/internal/domain"
	"github.com/frontandrew/mechanicshop/internal/pkg/logger"
	"github.com/frontandrew/mechanicshop/internal/usecase/guard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type menuHarness struct {
	out   bytes.Buffer
	logs  bytes.Buffer
	calls []string
}

func (h *menuHarness) run(t *testing.T, input string, ops ...Operation) {
	t.Helper()
	prompter := NewPrompter(strings.NewReader(input), &h.out)
	menu := NewMenu(prompter, logger.NewWriter(&h.logs, "debug"), ops...)
	require.NoError(t, menu.Run(context.Background()))
}

func (h *menuHarness) op(title string, err error) Operation {
	return Operation{
		Title: title,
		Run: func(ctx context.Context, log logger.Logger) error {
			h.calls = append(h.calls, title)
			return err
		},
	}
}

func TestMenu_Run(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCalls []string
		check     func(t *testing.T, out string)
	}{
		{
			name:  "выход сразу",
			input: "3\n",
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "MAIN MENU\n---------\n1. First\n2. Second\n3. < EXIT\n")
				assert.Equal(t, 1, strings.Count(out, "MAIN MENU"))
			},
		},
		{
			name:  "нечисловой ввод переспрашивает без показа меню",
			input: "abc\n\n3\n",
			check: func(t *testing.T, out string) {
				assert.Equal(t, 2, strings.Count(out, "Your input is invalid!"))
				assert.Equal(t, 3, strings.Count(out, "Please make your choice: "))
				assert.Equal(t, 1, strings.Count(out, "MAIN MENU"))
			},
		},
		{
			name:  "номер вне диапазона показывает меню снова",
			input: "0\n42\n-1\n3\n",
			check: func(t *testing.T, out string) {
				assert.Equal(t, 4, strings.Count(out, "MAIN MENU"))
			},
		},
		{
			name:      "операции выполняются по номеру",
			input:     "2\n1\n 2 \n3\n",
			wantCalls: []string{"Second", "First", "Second"},
		},
		{
			name:      "конец ввода завершает цикл",
			input:     "1\n",
			wantCalls: []string{"First"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &menuHarness{}
			h.run(t, tt.input, h.op("First", nil), h.op("Second", nil))

			assert.Equal(t, tt.wantCalls, h.calls)
			if tt.check != nil {
				tt.check(t, h.out.String())
			}
		})
	}
}

func TestMenu_Diagnostics(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{domain.ErrCustomerNotFound, "\tError (customer_id)\n"},
		{domain.ErrCarNotFound, "\tError (car_vin)\n"},
		{domain.ErrServiceRequestNotFound, "\tError (service_request doesn't exist)\n"},
		{domain.ErrServiceRequestClosed, "\tError (service_request was already closed)\n"},
		{domain.ErrMechanicNotFound, "\tError (mechanic doesn't exist)\n"},
		{domain.ErrInvalidLimit, "\tError (k must be positive)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h := &menuHarness{}
			h.run(t, "1\n2\n", h.op("Failing", tt.err))

			assert.Contains(t, h.out.String(), tt.want)
			assert.NotContains(t, h.logs.String(), `"level":"error"`)
		})
	}
}

func TestMenu_OperationErrorIsLoggedAndLoopContinues(t *testing.T) {
	h := &menuHarness{}
	h.run(t, "1\n2\n3\n",
		h.op("Broken", errors.New("duplicate key value violates unique constraint")),
		h.op("Working", nil),
	)

	assert.Equal(t, []string{"Broken", "Working"}, h.calls)
	assert.NotContains(t, h.out.String(), "duplicate key")
	assert.Contains(t, h.logs.String(), "duplicate key value violates unique constraint")
	assert.Contains(t, h.logs.String(), `"operation":"Broken"`)
	assert.Contains(t, h.logs.String(), `"operation_id"`)
}

func TestMenu_LogsFailedRule(t *testing.T) {
	h := &menuHarness{}
	violation := &guard.Violation{Rule: "mechanic_id", Err: domain.ErrMechanicNotFound}
	h.run(t, "1\n2\n", h.op("Close", violation))

	assert.Contains(t, h.out.String(), "\tError (mechanic doesn't exist)\n")
	assert.Contains(t, h.logs.String(), `"rule":"mechanic_id"`)
}

func TestMenu_OverlongChoiceIsInvalid(t *testing.T) {
	h := &menuHarness{}
	h.run(t, strings.Repeat("9", 100*1024)+"\n1\n2\n", h.op("First", nil))

	assert.Contains(t, h.out.String(), "Your input is invalid!")
	assert.Equal(t, []string{"First"}, h.calls)
}

func TestDiagnostic_Wrapped(t *testing.T) {
	text, ok := Diagnostic(errors.Join(errors.New("tx"), domain.ErrCarNotFound))
	assert.True(t, ok)
	assert.Equal(t, "Error (car_vin)", text)

	_, ok = Diagnostic(errors.New("other"))
	assert.False(t, ok)
}
