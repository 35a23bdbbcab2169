package usecase

import (
	"fmt"
	"log"
	"strings"
	"time"

	"bahia_gestao/internal/domain/entities"
)

var (
	ErrInvalidID           = fmt.Errorf("%w: invalid id", entities.ErrValidation)
	ErrOperationInProgress = fmt.Errorf("%w: operation already in progress", entities.ErrConflict)
)

// clock is swapped in tests.
var clock = func() time.Time { return time.Now().UTC() }

func today() string {
	return clock().Format("2006-01-02")
}

func requireID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidID
	}
	return id, nil
}

func validDate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// logPersistence logs data-access failures at the call site before they are
// surfaced to the caller.
func logPersistence(area, op string, err error) error {
	if err != nil {
		log.Printf("[%s][usecase] %s failed err=%v", area, op, err)
	}
	return err
}
