package memory

import (
	"errors"

	"github.com/justplus-adrian/Priority-Interview-main/internal/domain"
)

func isNotFound(err error) bool { return errors.Is(err, domain.ErrNotFound) }
