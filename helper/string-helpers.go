package helper

import (
	"fmt"
	"strconv"
)

// InterfaceToString converts a slice of interface{} values to their string form.
// Floats that hold whole numbers are rendered without a decimal point so CSV
// output matches what the warehouse shows for NUMBER columns.
func InterfaceToString(src []interface{}) []string {
	retval := make([]string, len(src), len(src))
	for i, v := range src {
		switch x := v.(type) {
		case nil:
			retval[i] = ""
		case float64:
			xInt := int(x)
			xFloat := float64(xInt) // truncate the float.
			if x == xFloat {        // if we can treat this as an integer...
				retval[i] = fmt.Sprint(xInt)
			} else { // else we have an exponent...
				retval[i] = strconv.FormatFloat(x, 'g', -1, 64)
			}
		case []uint8: // some drivers return rows of type []interface{}, containing []uint8 bytes essentially.
			retval[i] = string(x)
		default:
			retval[i] = fmt.Sprint(v)
		}
	}
	return retval
}
