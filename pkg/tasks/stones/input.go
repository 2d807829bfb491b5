package stones

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a whitespace-separated list of stone values.
func Parse(input string) ([]int64, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, fmt.Errorf("no stone values in input")
	}

	values := make([]int64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid stone value %q: %w", field, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("negative stone value %d", v)
		}
		values = append(values, v)
	}
	return values, nil
}
