package longdiv

import "fmt"

func introText(dividend, divisor int) string {
	return fmt.Sprintf("Let's work out %d ÷ %d.", dividend, divisor)
}

func promptText(current, divisor int) string {
	return fmt.Sprintf("How many %ds fit in %d?", divisor, current)
}

func correctText(digit, divisor int) string {
	return fmt.Sprintf("Right! What is %d × %d?", digit, divisor)
}

func subtractText(current, product int) string {
	return fmt.Sprintf("Now subtract: %d − %d = ?", current, product)
}

func tooBigText(current int) string {
	return fmt.Sprintf("Too big! The product would be bigger than %d.", current)
}

func tooSmallText(divisor int) string {
	return fmt.Sprintf("Too small! The remainder would be bigger than %d.", divisor)
}

func carryDownText(digit, current, divisor int) string {
	return fmt.Sprintf("Bring down %d. Now work out %d ÷ %d.", digit, current, divisor)
}

func completeText(dividend, divisor, quotient int) string {
	return fmt.Sprintf("All done! %d ÷ %d = %d. Press N for a new problem.", dividend, divisor, quotient)
}

func quotientHintText(current, divisor int) string {
	return fmt.Sprintf("Try it: how many %ds fit in %d?", divisor, current)
}

const genericHintText = "Keep going! Work it out and fill it in."
