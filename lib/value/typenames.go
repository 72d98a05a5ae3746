package value

import "fmt"

// Type tags a Value's variant. It only shows up in type mismatch errors.
type Type uint8

type _types struct {
	Number   Type
	String   Type
	Boolean  Type
	List     Type
	Function Type
	Nil      Type
}

var Types = _types{
	Number:   1,
	String:   2,
	Boolean:  3,
	List:     4,
	Function: 5,
	Nil:      6,
}

func (t Type) String() string {
	switch t {
	case Types.Number:
		return "Number"
	case Types.String:
		return "String"
	case Types.Boolean:
		return "Boolean"
	case Types.List:
		return "List"
	case Types.Function:
		return "Function"
	case Types.Nil:
		return "Nil"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}
