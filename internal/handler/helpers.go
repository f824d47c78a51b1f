package handler

import "fmt"

func errMissingField(name string) error {
	return fmt.Errorf("missing required field '%s'", name)
}

func errInvalidField(name string) error {
	return fmt.Errorf("invalid value for field '%s'", name)
}
