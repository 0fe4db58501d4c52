package worker

import (
	"strconv"
	"strings"
)

// parsePlaceCommand recognizes the single built-in command this server
// supports: "place <i32>". Anything else is silently
// ignored, matching the built-in command graph's own scope.
func parsePlaceCommand(line string) (stateID int32, ok bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 || fields[0] != "place" {
		return 0, false
	}
	v, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}
