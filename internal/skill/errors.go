package skill

import "fmt"

type UnsupportedIntentError struct {
	Name string
}

func (e *UnsupportedIntentError) Error() string {
	return fmt.Sprintf("skill: unsupported intent %q", e.Name)
}

type UnsupportedRequestTypeError struct {
	Type string
}

func (e *UnsupportedRequestTypeError) Error() string {
	return fmt.Sprintf("skill: unsupported request type %q", e.Type)
}
