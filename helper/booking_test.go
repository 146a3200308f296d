package helper

import (
	"errors"
	"testing"

	"planetarium_api/model"
)

func TestValidateTicket(t *testing.T) {
	dome := model.PlanetariumDome{Rows: 10, SeatsInRow: 15}

	cases := []struct {
		name        string
		row, seat   int
		wantField   string
		wantMessage string
	}{
		{name: "valid corner min", row: 1, seat: 1},
		{name: "valid corner max", row: 10, seat: 15},
		{
			name: "row zero", row: 0, seat: 5,
			wantField:   "row",
			wantMessage: "row number must be in available range: (1, rows): (1, 10)",
		},
		{
			name: "row too large", row: 11, seat: 5,
			wantField:   "row",
			wantMessage: "row number must be in available range: (1, rows): (1, 10)",
		},
		{
			name: "seat zero", row: 3, seat: 0,
			wantField:   "seat",
			wantMessage: "seat number must be in available range: (1, seats): (1, 15)",
		},
		{
			name: "seat too large", row: 3, seat: 16,
			wantField:   "seat",
			wantMessage: "seat number must be in available range: (1, seats): (1, 15)",
		},
		{
			name: "negative row", row: -1, seat: 5,
			wantField:   "row",
			wantMessage: "row number must be in available range: (1, rows): (1, 10)",
		},
		{
			name: "both invalid reports row first", row: 0, seat: 0,
			wantField:   "row",
			wantMessage: "row number must be in available range: (1, rows): (1, 10)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTicket(tc.row, tc.seat, dome)
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("expected FieldError, got %v", err)
			}
			if fieldErr.Field != tc.wantField {
				t.Errorf("field = %q, want %q", fieldErr.Field, tc.wantField)
			}
			if fieldErr.Message != tc.wantMessage {
				t.Errorf("message = %q, want %q", fieldErr.Message, tc.wantMessage)
			}
		})
	}
}
