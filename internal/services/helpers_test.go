package services

import (
	"errors"
	"testing"

	"github.com/joshua-takyi/sociogram/internal/errs"
)

func asCoded(err error, target **errs.Error) bool {
	return errors.As(err, target)
}

func assertCoded(t *testing.T, err error, status int, message string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var coded *errs.Error
	if !errors.As(err, &coded) {
		t.Fatalf("expected a status-coded error, got %v", err)
	}
	if coded.Status != status {
		t.Errorf("expected status %d, got %d", status, coded.Status)
	}
	if coded.Message != message {
		t.Errorf("expected message %q, got %q", message, coded.Message)
	}
}
