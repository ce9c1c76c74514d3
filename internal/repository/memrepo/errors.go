package memrepo

import (
	"fmt"
)

func repoErr(err error, msg string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("[repository/%s] %w", fmt.Sprintf(msg, args...), err)
}
