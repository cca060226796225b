package mysql

import (
	"errors"
	"fmt"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/errorpool/domain"
)

// MySQL server error numbers that mean "another writer got there first"
const (
	erDupEntry        = 1062
	erLockWaitTimeout = 1205
	erLockDeadlock    = 1213
)

// translateError maps gorm and MySQL errors onto domain errors.
// Unknown errors are wrapped so callers still see the cause.
func translateError(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s: %v", domain.ErrConflict, op, err)
	}

	var myErr *mysqlDriver.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case erDupEntry, erLockWaitTimeout, erLockDeadlock:
			return fmt.Errorf("%w: %s: %v", domain.ErrConflict, op, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
