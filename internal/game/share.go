package game

import "fmt"

// ShareText returns the message offered by the share action.
func ShareText(score int) string {
	return fmt.Sprintf("I just scored %d points in Catchverse! Think you can beat me?", score)
}
