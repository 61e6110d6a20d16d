package infection

import (
	apperrors "github.com/matzehuels/infection/pkg/errors"
)

// Mode names an infection strategy.
type Mode string

const (
	ModeTotal   Mode = "total"
	ModeLimited Mode = "limited"
)

// ParseMode returns the Mode for s, or an INVALID_INPUT error.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeTotal, ModeLimited:
		return m, nil
	}
	return "", apperrors.New(apperrors.ErrCodeInvalidInput, "unknown mode %q (want total or limited)", s)
}
